//go:build tinygo

package irq

import "runtime/interrupt"

func disable() interrupt.State {
	return interrupt.Disable()
}

func restore(s interrupt.State) {
	interrupt.Restore(s)
}
