package pwm

import "avrgpio/hal/port"

type ocPin struct {
	port  port.ID
	index uint8
	timer Timer
	ch    Channel
}

var ocPins = [...]ocPin{
	{port.D, 6, Timer0, A},
	{port.D, 5, Timer0, B},
	{port.B, 1, Timer1, A},
	{port.B, 2, Timer1, B},
	{port.B, 3, Timer2, A},
	{port.D, 3, Timer2, B},
}

// ChannelFor returns the timer channel whose compare output is wired to the
// given pin.
func ChannelFor(id port.ID, index uint8) (Timer, Channel, bool) {
	for _, p := range ocPins {
		if p.port == id && p.index == index {
			return p.timer, p.ch, true
		}
	}
	return 0, 0, false
}
