// Package irq runs code with interrupts masked.
//
// The gpio package never masks interrupts on its own. A caller that shares
// a port register with an interrupt handler wraps the read-modify-write in
// Critical.
package irq

// depth counts nested Critical calls; only touched with interrupts off.
var depth uint8

// Critical runs fn with interrupts disabled and restores the previous state
// afterwards. Calls may nest.
func Critical(fn func()) {
	s := disable()
	depth++
	defer func() {
		depth--
		restore(s)
	}()
	fn()
}

// Masked reports whether the caller is inside Critical.
func Masked() bool {
	return depth > 0
}
