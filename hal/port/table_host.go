//go:build !avr

package port

// Sim is the register bank hosted builds resolve against.
var Sim = NewBank()

func platformTable() Resolver { return Sim }
