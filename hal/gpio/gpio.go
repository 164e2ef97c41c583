// Package gpio drives single AVR port pins through their DDR, PORT and PIN
// registers.
//
// A pin is bound to its port group and bit once, at construction. Every
// operation is a single read-modify-write of one cached register that
// touches only the pin's own bit. Nothing here disables interrupts: an
// interrupt handler writing the same register between the read and the
// write loses its change. Callers that share a port with interrupt code
// wrap calls in irq.Critical.
package gpio

import (
	"avrgpio/errcode"
	"avrgpio/hal/port"
	"avrgpio/hal/reg"
	"avrgpio/x/conv"
)

// GPIO is the capability every pin offers.
type GPIO interface {
	// SetDirection makes the pin an input (true) or an output (false).
	SetDirection(input bool)
	// Write drives the output level. On an input pin it switches the
	// pull-up instead; the hardware uses one register for both.
	Write(high bool)
	// Read samples the physical level, whatever the direction.
	Read() bool
}

// PortPin is the register-backed GPIO. The zero value has no registers and
// panics on use.
type PortPin struct {
	id    port.ID
	index uint8
	regs  port.Registers
	mask  uint8
}

var _ GPIO = (*PortPin)(nil)

// NewPortPin resolves id through r and binds bit index of that port group.
func NewPortPin(r port.Resolver, id port.ID, index uint8) (*PortPin, error) {
	pp, err := bind(r, id, index, "gpio.NewPortPin")
	if err != nil {
		return nil, err
	}
	return &pp, nil
}

func bind(r port.Resolver, id port.ID, index uint8, op string) (PortPin, error) {
	if index >= port.Width {
		return PortPin{}, errcode.New(errcode.InvalidPin, op, "index "+conv.Dec(uint64(index)))
	}
	regs, err := r.Resolve(id)
	if err != nil {
		return PortPin{}, err
	}
	return PortPin{id: id, index: index, regs: regs, mask: 1 << index}, nil
}

func (p *PortPin) SetDirection(input bool) {
	if input {
		p.regs.DDR.ClearBits(p.mask)
	} else {
		p.regs.DDR.SetBits(p.mask)
	}
}

func (p *PortPin) Write(high bool) {
	reg.Assign(p.regs.PORT, p.mask, high)
}

func (p *PortPin) Read() bool {
	return p.regs.PIN.HasBits(p.mask)
}

// IsOutput reports the DDR bit.
func (p *PortPin) IsOutput() bool { return p.regs.DDR.HasBits(p.mask) }

// Driven reports the PORT bit: the driven level for an output, pull-up
// enable for an input.
func (p *PortPin) Driven() bool { return p.regs.PORT.HasBits(p.mask) }

func (p *PortPin) Port() port.ID { return p.id }
func (p *PortPin) Index() uint8  { return p.index }
func (p *PortPin) Mask() uint8   { return p.mask }
func (p *PortPin) Name() string  { return port.Name(p.id, p.index) }
