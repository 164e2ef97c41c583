//go:build tinygo

package gpio

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

// BusyWait spins for the requested time. delay.Sleep hands durations above
// a few milliseconds to the scheduler.
type BusyWait struct{}

func (BusyWait) Delay(ms uint16) {
	delay.Sleep(time.Duration(ms) * time.Millisecond)
}

func platformDelay() Delayer { return BusyWait{} }
