package gpio

// Delayer blocks the calling goroutine for at least ms milliseconds.
type Delayer interface {
	Delay(ms uint16)
}

// DelayFunc adapts a function to Delayer.
type DelayFunc func(ms uint16)

func (f DelayFunc) Delay(ms uint16) { f(ms) }

// DefaultDelay is used by pins built without an explicit Delayer.
var DefaultDelay Delayer = platformDelay()
