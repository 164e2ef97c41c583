package port

import "avrgpio/hal/reg"

// Bank is an in-memory register file for the three port groups. Tests build
// their own with NewBank and drive PIN bytes directly to simulate inputs.
type Bank struct {
	DDR  [3]reg.Mem8
	PORT [3]reg.Mem8
	PIN  [3]reg.Mem8
}

// NewBank returns a bank in the reset state (all inputs, no pull-ups).
func NewBank() *Bank { return &Bank{} }

func (b *Bank) Resolve(id ID) (Registers, error) {
	i, ok := index(id)
	if !ok {
		return Registers{}, invalid("port.Bank.Resolve", id)
	}
	return Registers{DDR: &b.DDR[i], PORT: &b.PORT[i], PIN: &b.PIN[i]}, nil
}

// Input drives the simulated level of one pin.
func (b *Bank) Input(id ID, pin uint8, high bool) {
	i, ok := index(id)
	if !ok {
		return
	}
	reg.Assign(&b.PIN[i], 1<<pin, high)
}

// Regs returns the raw DDR, PORT and PIN bytes of a port group.
func (b *Bank) Regs(id ID) (ddr, port, pin uint8) {
	i, ok := index(id)
	if !ok {
		return 0, 0, 0
	}
	return b.DDR[i].V, b.PORT[i].V, b.PIN[i].V
}

// Reset clears every register and removes installed hooks.
func (b *Bank) Reset() {
	*b = Bank{}
}

func index(id ID) (int, bool) {
	switch id {
	case B:
		return 0, true
	case C:
		return 1, true
	case D:
		return 2, true
	}
	return 0, false
}
