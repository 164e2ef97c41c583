// Package periphpin exposes AVR port pins through the periph.io GPIO
// interfaces, so drivers written against periph.io/x/conn/v3/gpio can run on
// them.
package periphpin

import (
	"time"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioutil"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"

	"avrgpio/errcode"
	halgpio "avrgpio/hal/gpio"
	"avrgpio/hal/port"
	"avrgpio/hal/pwm"
	"avrgpio/x/mathx"
)

// DefaultFrequency is used when PWM is called with a zero frequency.
const DefaultFrequency = 1 * physic.KiloHertz

// Pin implements gpio.PinIO on top of a hal/gpio Pin.
type Pin struct {
	p *halgpio.Pin

	pwmOn bool
	timer pwm.Timer
	ch    pwm.Channel
}

var (
	_ gpio.PinIO  = (*Pin)(nil)
	_ pin.PinFunc = (*Pin)(nil)
)

func New(p *halgpio.Pin) *Pin {
	return &Pin{p: p}
}

// HAL returns the wrapped pin.
func (p *Pin) HAL() *halgpio.Pin { return p.p }

func (p *Pin) String() string { return p.p.Name() }
func (p *Pin) Name() string   { return p.p.Name() }
func (p *Pin) Number() int    { return port.Number(p.p.Port(), p.p.Index()) }

// Halt disconnects a running PWM output. Direction and level are left alone.
func (p *Pin) Halt() error {
	return p.stopPWM()
}

// Function implements pin.Pin.
func (p *Pin) Function() string { return string(p.Func()) }

func (p *Pin) Func() pin.Func {
	switch {
	case p.pwmOn:
		return gpio.PWM
	case p.p.IsOutput():
		return gpio.OUT
	}
	return gpio.IN
}

func (p *Pin) SupportedFuncs() []pin.Func {
	if _, _, ok := pwm.ChannelFor(p.p.Port(), p.p.Index()); ok {
		return []pin.Func{gpio.IN, gpio.OUT, gpio.PWM}
	}
	return []pin.Func{gpio.IN, gpio.OUT}
}

func (p *Pin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.IN:
		return p.In(gpio.PullNoChange, gpio.NoEdge)
	case gpio.OUT:
		return p.Out(gpio.Level(p.p.Driven()))
	case gpio.PWM:
		return p.PWM(gpio.DutyHalf, 0)
	}
	return errors.Wrapf(errcode.Unsupported, "%s: function %q", p.Name(), f)
}

// In makes the pin an input. AVR has pull-ups only and no edge detection;
// wrap the pin with Polled to get WaitForEdge.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	if edge != gpio.NoEdge {
		return errors.Wrapf(errcode.Unsupported, "%s: edge %s", p.Name(), edge)
	}
	if pull == gpio.PullDown {
		return errors.Wrapf(errcode.Unsupported, "%s: %s", p.Name(), pull)
	}
	if err := p.stopPWM(); err != nil {
		return err
	}
	p.p.SetDirection(true)
	switch pull {
	case gpio.PullUp:
		p.p.SetPullUp(true)
	case gpio.Float:
		p.p.SetPullUp(false)
	}
	return nil
}

func (p *Pin) Read() gpio.Level { return gpio.Level(p.p.Read()) }

// WaitForEdge always reports no edge; see Polled.
func (p *Pin) WaitForEdge(time.Duration) bool { return false }

func (p *Pin) Pull() gpio.Pull {
	if p.p.IsOutput() {
		return gpio.PullNoChange
	}
	if p.p.Driven() {
		return gpio.PullUp
	}
	return gpio.Float
}

func (p *Pin) DefaultPull() gpio.Pull { return gpio.Float }

func (p *Pin) Out(l gpio.Level) error {
	if err := p.stopPWM(); err != nil {
		return err
	}
	p.p.SetDirection(false)
	p.p.Write(bool(l))
	return nil
}

// PWM drives the pin from the timer channel wired to it. The prescaler whose
// frequency is closest to f is selected; 0 means DefaultFrequency. duty is
// scaled to the timer's resolution. The two channels of a timer share its
// prescaler, so the last call sets the frequency of both.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	if !duty.Valid() {
		return errors.Errorf("%s: duty %d out of range", p.Name(), int32(duty))
	}
	t, ch, ok := pwm.ChannelFor(p.p.Port(), p.p.Index())
	if !ok {
		return errors.Wrapf(errcode.Unsupported, "%s: no PWM output", p.Name())
	}
	if f == 0 {
		f = DefaultFrequency
	}
	u, ok := p.p.Timers().Unit(t)
	if !ok {
		return errors.Wrapf(errcode.InvalidPWMSelector, "%s: timer %d", p.Name(), t)
	}
	value := uint16(mathx.RoundDiv(uint64(duty)*uint64(u.Top()), uint64(gpio.DutyMax)))

	// ConfigurePWM only ORs the clock select in, so drop the previous one.
	if err := pwm.SetPrescaler(p.p.Timers(), t, 0); err != nil {
		return errors.Wrapf(err, "%s: clear prescaler", p.Name())
	}
	p.p.SetDirection(false)
	if err := p.p.ConfigurePWM(uint8(t), value, byte(ch), pwm.Prescaler(t, f)); err != nil {
		return errors.Wrapf(err, "%s: configure PWM", p.Name())
	}
	p.pwmOn, p.timer, p.ch = true, t, ch
	return nil
}

func (p *Pin) stopPWM() error {
	if !p.pwmOn {
		return nil
	}
	if err := pwm.Disconnect(p.p.Timers(), p.timer, p.ch); err != nil {
		return errors.Wrapf(err, "%s: disconnect PWM", p.Name())
	}
	p.pwmOn = false
	return nil
}

// Polled adds WaitForEdge support by sampling the pin at freq.
func Polled(p *Pin, freq physic.Frequency) gpio.PinIO {
	return gpioutil.PollEdge(p, freq)
}
