// cmd/blink/main.go
package main

import (
	"periph.io/x/conn/v3/physic"

	"avrgpio/boards"
	"avrgpio/hal/gpio"
	"avrgpio/hal/pwm"
)

// ---------- Configuration ----------

const (
	holdMs     = 1000
	blinkCount = 10

	// Fading is only possible when the LED sits on a compare output.
	fadeSteps  = 32
	fadeStepMs = 20
	fadeFreq   = 1 * physic.KiloHertz
)

func main() {
	b := boards.Selected
	led := gpio.Must(b.LED.Port, b.LED.Index)
	println("blink on", b.Name, b.LED.String())

	led.SetDirection(false)
	led.Write(true)
	gpio.DefaultDelay.Delay(holdMs)
	led.Toggle()
	gpio.DefaultDelay.Delay(holdMs)
	led.Blink(b.BlinkMs, blinkCount)

	t, ch, ok := pwm.ChannelFor(b.LED.Port, b.LED.Index)
	if !ok {
		println(b.LED.String(), "has no PWM output, done")
		return
	}
	u, ok := led.Timers().Unit(t)
	if !ok {
		println("timer", uint8(t), "not present")
		return
	}
	top := uint32(u.Top())
	cs := pwm.Prescaler(t, fadeFreq)
	for i := uint32(0); i <= fadeSteps; i++ {
		duty := uint16(top * i / fadeSteps)
		if err := led.ConfigurePWM(uint8(t), duty, byte(ch), cs); err != nil {
			println("pwm:", err.Error())
			return
		}
		gpio.DefaultDelay.Delay(fadeStepMs)
	}
	println("done")
}
