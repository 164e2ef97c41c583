//go:build !board_uno

package boards

import "avrgpio/hal/port"

// Breadboard prototype: LED on PB0, push button to ground on PD7.
var Selected = Descriptor{
	Name:    "proto",
	LED:     Ref{Port: port.B, Index: 0},
	Button:  Ref{Port: port.D, Index: 7},
	BlinkMs: 500,
}
