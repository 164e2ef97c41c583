// Package boards holds the compiled-in wiring of the supported boards. The
// descriptor is picked by build tag; see proto.go and uno.go.
package boards

import "avrgpio/hal/port"

// Ref names one pin of a port group.
type Ref struct {
	Port  port.ID
	Index uint8
}

func (r Ref) String() string { return port.Name(r.Port, r.Index) }

// Valid reports whether r points at an existing pin.
func (r Ref) Valid() bool { return r.Port.Valid() && r.Index < port.Width }

// Descriptor says where the status LED and the user button are wired.
// It must not include operating parameters beyond the default blink period.
type Descriptor struct {
	Name    string
	LED     Ref
	Button  Ref // active low, needs the internal pull-up
	BlinkMs uint16
}
