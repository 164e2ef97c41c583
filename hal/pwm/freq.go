package pwm

import (
	"periph.io/x/conn/v3/physic"

	"avrgpio/x/mathx"
)

// CPUFrequency is the system clock the timers count from.
const CPUFrequency = 16 * physic.MegaHertz

// Clock select divisors. 0 marks "stopped" and the external clock inputs.
var (
	divisors01 = [8]uint32{0, 1, 8, 64, 256, 1024, 0, 0}
	divisors2  = [8]uint32{0, 1, 8, 32, 64, 128, 256, 1024}
)

// Divisor returns the clock divisor a prescaler selector picks on t, or 0
// when the selector stops the timer or selects an external clock.
func Divisor(t Timer, prescaler uint8) uint32 {
	prescaler &= CS
	switch t {
	case Timer0, Timer1:
		return divisors01[prescaler]
	case Timer2:
		return divisors2[prescaler]
	}
	return 0
}

func top(t Timer) uint32 {
	if t == Timer1 {
		return 0xFFFF
	}
	return 0xFF
}

// Frequency is the fast PWM output frequency for t with the given prescaler.
func Frequency(t Timer, prescaler uint8) physic.Frequency {
	d := Divisor(t, prescaler)
	if d == 0 {
		return 0
	}
	return CPUFrequency / physic.Frequency(d*(top(t)+1))
}

// Prescaler picks the internal-clock selector whose PWM frequency on t is
// closest to f.
func Prescaler(t Timer, f physic.Frequency) uint8 {
	best, bestDiff := uint8(0), physic.Frequency(-1)
	for sel := uint8(1); sel <= CS; sel++ {
		got := Frequency(t, sel)
		if got == 0 {
			continue
		}
		diff := mathx.AbsDiff(got, f)
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = sel, diff
		}
	}
	return best
}
