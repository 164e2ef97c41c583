package gpio

import (
	"avrgpio/hal/port"
	"avrgpio/hal/pwm"
	"avrgpio/hal/reg"
)

// Params overrides the collaborators a Pin is built with. Zero fields fall
// back to the platform defaults.
type Params struct {
	Resolver port.Resolver
	Delay    Delayer
	Timers   pwm.Bank
}

// Pin adds pull-up, toggle, blink, debounce and PWM setup to a PortPin.
type Pin struct {
	PortPin
	delay  Delayer
	timers pwm.Bank
}

// New binds a pin using the platform register table, delay and timers.
func New(id port.ID, index uint8) (*Pin, error) {
	return NewPin(id, index, Params{})
}

// NewPin binds a pin with injected collaborators.
// It fails with errcode.InvalidPort or errcode.InvalidPin and never returns
// a usable pin alongside an error.
func NewPin(id port.ID, index uint8, p Params) (*Pin, error) {
	if p.Resolver == nil {
		p.Resolver = port.Default
	}
	if p.Delay == nil {
		p.Delay = DefaultDelay
	}
	if p.Timers == nil {
		p.Timers = pwm.Default
	}
	pp, err := bind(p.Resolver, id, index, "gpio.New")
	if err != nil {
		return nil, err
	}
	return &Pin{PortPin: pp, delay: p.Delay, timers: p.Timers}, nil
}

// Must is New for pins fixed at compile time. A bad port or index panics, so
// a miswired program stops at start-up instead of writing stray registers.
func Must(id port.ID, index uint8) *Pin {
	p, err := New(id, index)
	if err != nil {
		panic(err)
	}
	return p
}

// Timers returns the timer bank ConfigurePWM writes to.
func (p *Pin) Timers() pwm.Bank { return p.timers }

// Mode is a direction plus pull-up setting applied in one call.
type Mode uint8

const (
	ModeOutput Mode = iota
	ModeInput
	ModeInputPullup
)

// Configure sets direction and pull-up for m.
func (p *Pin) Configure(m Mode) {
	switch m {
	case ModeOutput:
		p.SetDirection(false)
	case ModeInput:
		p.SetDirection(true)
		p.SetPullUp(false)
	case ModeInputPullup:
		p.SetDirection(true)
		p.SetPullUp(true)
	}
}

// SetPullUp has the same register effect as Write. Only meaningful on an
// input pin.
func (p *Pin) SetPullUp(enable bool) {
	reg.Assign(p.regs.PORT, p.mask, enable)
}

// Toggle flips the PORT bit. It works on the driven state, so on an input
// pin it flips the pull-up rather than following the sensed level.
func (p *Pin) Toggle() {
	reg.Xor(p.regs.PORT, p.mask)
}

// Blink drives the pin high then low count times, holding each level for
// intervalMs. It blocks for 2*intervalMs*count.
func (p *Pin) Blink(intervalMs uint16, count uint8) {
	Blink(&p.PortPin, p.delay, intervalMs, count)
}

// Debounce reports a level only when two samples DebounceSettleMs apart
// agree; a changing input reads as false.
func (p *Pin) Debounce() bool {
	return Debounce(&p.PortPin, p.delay)
}

// ConfigurePWM sets up fast PWM on a timer channel. Which channel drives
// this pin is the caller's choice; see pwm.ChannelFor. An unknown timer or
// channel returns errcode.InvalidPWMSelector and changes nothing.
func (p *Pin) ConfigurePWM(timer uint8, duty uint16, channel byte, prescaler uint8) error {
	return pwm.Configure(p.timers, pwm.Timer(timer), duty, pwm.Channel(channel), prescaler)
}
