package periphpin

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"

	halgpio "avrgpio/hal/gpio"
	"avrgpio/hal/irq"
	"avrgpio/hal/port"
)

// Group is one port group as a gpio.Group. Bit n of a value is pin n.
type Group struct {
	id   port.ID
	regs port.Registers
	pins [port.Width]*Pin
}

var _ gpio.Group = (*Group)(nil)

// NewGroup binds all eight pins of id using the collaborators in params.
func NewGroup(id port.ID, params halgpio.Params) (*Group, error) {
	if params.Resolver == nil {
		params.Resolver = port.Default
	}
	regs, err := params.Resolver.Resolve(id)
	if err != nil {
		return nil, err
	}
	g := &Group{id: id, regs: regs}
	for i := range g.pins {
		hp, err := halgpio.NewPin(id, uint8(i), params)
		if err != nil {
			return nil, err
		}
		g.pins[i] = New(hp)
	}
	return g, nil
}

func (g *Group) String() string { return g.id.String() }
func (g *Group) Halt() error {
	for _, p := range g.pins {
		if err := p.Halt(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Group) Pins() []pin.Pin {
	out := make([]pin.Pin, len(g.pins))
	for i, p := range g.pins {
		out[i] = p
	}
	return out
}

// Pin returns the typed pin at offset, or nil.
func (g *Group) Pin(offset int) *Pin {
	if offset < 0 || offset >= len(g.pins) {
		return nil
	}
	return g.pins[offset]
}

func (g *Group) ByOffset(offset int) pin.Pin {
	if p := g.Pin(offset); p != nil {
		return p
	}
	return nil
}

func (g *Group) ByName(name string) pin.Pin {
	id, index, err := port.ParsePin(name)
	if err != nil || id != g.id {
		return nil
	}
	return g.pins[index]
}

func (g *Group) ByNumber(number int) pin.Pin {
	for _, p := range g.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// Out makes the masked pins outputs and drives them to value in a single
// PORT write, with interrupts masked across the read-modify-write. Masked
// pins running PWM are disconnected from their timer first.
func (g *Group) Out(value, mask gpio.GPIOValue) error {
	m := uint8(mask)
	v := uint8(value)
	for i, p := range g.pins {
		if m&(1<<i) == 0 {
			continue
		}
		if err := p.stopPWM(); err != nil {
			return err
		}
	}
	irq.Critical(func() {
		g.regs.PORT.Set(g.regs.PORT.Get()&^m | v&m)
		g.regs.DDR.SetBits(m)
	})
	return nil
}

func (g *Group) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	return gpio.GPIOValue(g.regs.PIN.Get()) & mask, nil
}

func (g *Group) WaitForEdge(time.Duration) (int, gpio.Edge, error) {
	return 0, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}
