package main

import (
	"avrgpio/boards"
	"avrgpio/hal/gpio"
)

// The status LED follows the user button. The button pulls its pin to ground,
// so a settled low means pressed; a bouncing contact reads as released.
func main() {
	b := boards.Selected
	led := gpio.Must(b.LED.Port, b.LED.Index)
	button := gpio.Must(b.Button.Port, b.Button.Index)

	led.Configure(gpio.ModeOutput)
	button.Configure(gpio.ModeInputPullup)

	println("boot", b.Name, "led", b.LED.String(), "button", b.Button.String())

	pressed := false
	for {
		now := !button.Debounce()
		led.Write(now)
		if now != pressed {
			pressed = now
			if pressed {
				println("button down")
			} else {
				println("button up")
			}
		}
	}
}
