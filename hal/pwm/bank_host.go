//go:build !avr

package pwm

// Sim is the timer bank hosted builds configure.
var Sim = NewSimBank()

func platformBank() Bank { return Sim }
