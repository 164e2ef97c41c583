//go:build !tinygo

package gpio

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ClockDelay sleeps on a clockwork clock; tests pass a fake one.
type ClockDelay struct {
	Clock clockwork.Clock
}

func (c ClockDelay) Delay(ms uint16) {
	c.Clock.Sleep(time.Duration(ms) * time.Millisecond)
}

func platformDelay() Delayer {
	return ClockDelay{Clock: clockwork.NewRealClock()}
}
