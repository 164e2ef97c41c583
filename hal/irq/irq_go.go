//go:build !tinygo

package irq

// state is a placeholder for interrupt state on regular Go.
type state uintptr

// disable is a no-op on regular Go (for testing).
func disable() state {
	return 0
}

// restore is a no-op on regular Go (for testing).
func restore(state) {}
