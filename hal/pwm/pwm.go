// Package pwm configures the ATmega328P timer/counter units for fast PWM on
// their output-compare pins.
//
// Configure only ever ORs mode bits into the control registers. Bits left
// over from an earlier configuration stay set; clear the unit with Reset
// first when a deterministic starting point is needed.
package pwm

import (
	"avrgpio/errcode"
	"avrgpio/hal/reg"
	"avrgpio/x/conv"
	"avrgpio/x/mathx"
)

// Timer selects a timer/counter unit.
type Timer uint8

const (
	Timer0 Timer = 0 // 8-bit
	Timer1 Timer = 1 // 16-bit
	Timer2 Timer = 2 // 8-bit, asynchronous capable
)

// Channel selects one of the two output-compare channels of a unit.
type Channel byte

const (
	A Channel = 'A'
	B Channel = 'B'
)

func (c Channel) Valid() bool { return c == A || c == B }

// TCCRnA / TCCRnB bit positions, shared by all three units.
const (
	WGMn0 = 1 << 0
	WGMn1 = 1 << 1
	COMB1 = 1 << 5
	COMA1 = 1 << 7

	WGMn2 = 1 << 3
	WGM13 = 1 << 4
	CS    = 0x07 // clock select field
)

// Compare is an output-compare (or input-capture) register. Hi is nil for
// 8-bit units.
type Compare struct {
	Hi, Lo reg.Register8
}

func (c Compare) Set(v uint16) {
	if c.Hi != nil {
		reg.Set16(c.Hi, c.Lo, v)
		return
	}
	c.Lo.Set(uint8(v))
}

func (c Compare) Get() uint16 {
	if c.Hi != nil {
		return reg.Get16(c.Hi, c.Lo)
	}
	return uint16(c.Lo.Get())
}

// Unit is the register layout of one timer/counter.
type Unit struct {
	Timer Timer
	Bits  uint8 // 8 or 16

	TCCRA, TCCRB reg.Register8
	OCRA, OCRB   Compare
	ICR          Compare // 16-bit units only
}

// Top is the counter value a fast PWM period ends on.
func (u *Unit) Top() uint16 {
	if u.Bits == 16 {
		return 0xFFFF
	}
	return 0xFF
}

// Bank resolves a Timer to its Unit.
type Bank interface {
	Unit(t Timer) (*Unit, bool)
}

// Default is the platform timer bank: hardware on AVR, Sim elsewhere.
var Default Bank = platformBank()

// Configure puts timer t into fast PWM mode with a non-inverting output on
// channel ch, loads the compare value and starts the clock with the given
// 3-bit prescaler selector.
//
// 8-bit units use mode 3 (TOP = 0xFF) and clamp duty to 0..255. The 16-bit
// unit uses mode 14 with ICR1 = 0xFFFF so the full duty range applies.
// An unknown timer or channel is reported as errcode.InvalidPWMSelector and
// leaves every register untouched.
func Configure(b Bank, t Timer, duty uint16, ch Channel, prescaler uint8) error {
	u, ok := b.Unit(t)
	if !ok {
		return errcode.New(errcode.InvalidPWMSelector, "pwm.Configure", "timer "+conv.Dec(uint64(t)))
	}
	if !ch.Valid() {
		return errcode.New(errcode.InvalidPWMSelector, "pwm.Configure", "channel "+string(rune(ch)))
	}

	com, ocr := uint8(COMA1), u.OCRA
	if ch == B {
		com, ocr = COMB1, u.OCRB
	}
	cs := prescaler & CS

	if u.Bits == 16 {
		u.TCCRA.SetBits(WGMn1 | com)
		u.ICR.Set(u.Top())
		ocr.Set(duty)
		u.TCCRB.SetBits(WGM13 | WGMn2 | cs)
		return nil
	}
	u.TCCRA.SetBits(WGMn1 | WGMn0 | com)
	ocr.Set(mathx.Clamp(duty, 0, u.Top()))
	u.TCCRB.SetBits(cs)
	return nil
}

// SetDuty rewrites only the compare value of a running channel.
func SetDuty(b Bank, t Timer, ch Channel, duty uint16) error {
	u, ok := b.Unit(t)
	if !ok || !ch.Valid() {
		return errcode.New(errcode.InvalidPWMSelector, "pwm.SetDuty", "")
	}
	ocr := u.OCRA
	if ch == B {
		ocr = u.OCRB
	}
	ocr.Set(mathx.Clamp(duty, 0, u.Top()))
	return nil
}

// Disconnect clears the compare-output bits of a channel, returning the pin
// to plain GPIO control. The timer keeps running.
func Disconnect(b Bank, t Timer, ch Channel) error {
	u, ok := b.Unit(t)
	if !ok || !ch.Valid() {
		return errcode.New(errcode.InvalidPWMSelector, "pwm.Disconnect", "")
	}
	if ch == B {
		u.TCCRA.ClearBits(COMB1)
	} else {
		u.TCCRA.ClearBits(COMA1)
	}
	return nil
}

// SetPrescaler replaces the clock select field of t with prescaler and
// leaves the other TCCRnB bits alone. 0 stops the clock.
func SetPrescaler(b Bank, t Timer, prescaler uint8) error {
	u, ok := b.Unit(t)
	if !ok {
		return errcode.New(errcode.InvalidPWMSelector, "pwm.SetPrescaler", "timer "+conv.Dec(uint64(t)))
	}
	u.TCCRB.Set(u.TCCRB.Get()&^CS | prescaler&CS)
	return nil
}

// Reset zeroes both control registers of t, stopping the clock.
func Reset(b Bank, t Timer) error {
	u, ok := b.Unit(t)
	if !ok {
		return errcode.New(errcode.InvalidPWMSelector, "pwm.Reset", "")
	}
	u.TCCRB.Set(0)
	u.TCCRA.Set(0)
	return nil
}
