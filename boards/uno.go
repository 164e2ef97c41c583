//go:build board_uno

package boards

import "avrgpio/hal/port"

// Arduino Uno: onboard LED "L" is PB5 (D13), button on PD2 (D2, INT0).
var Selected = Descriptor{
	Name:    "uno",
	LED:     Ref{Port: port.B, Index: 5},
	Button:  Ref{Port: port.D, Index: 2},
	BlinkMs: 500,
}
