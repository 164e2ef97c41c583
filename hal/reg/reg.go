// Package reg describes the byte-wide memory-mapped register the HAL
// operates on.
//
// On AVR targets *volatile.Register8 from TinyGo's runtime satisfies
// Register8 directly. Hosted builds and tests use Mem8 instead.
package reg

// Register8 is a mutable 8-bit hardware register.
//
// SetBits and ClearBits are read-modify-write: they read the current byte,
// apply the mask and write the whole byte back. They are not atomic with
// respect to interrupt handlers.
type Register8 interface {
	Get() uint8
	Set(value uint8)
	SetBits(mask uint8)
	ClearBits(mask uint8)
	HasBits(mask uint8) bool
}

// Xor flips the masked bits of r with a single read and a single write.
func Xor(r Register8, mask uint8) {
	r.Set(r.Get() ^ mask)
}

// Assign sets the masked bits of r when on is true and clears them otherwise.
func Assign(r Register8, mask uint8, on bool) {
	if on {
		r.SetBits(mask)
	} else {
		r.ClearBits(mask)
	}
}

// Set16 writes a 16-bit value through a high/low register pair.
// AVR latches 16-bit timer registers through a shared TEMP byte, so the high
// byte must go first.
func Set16(hi, lo Register8, value uint16) {
	hi.Set(uint8(value >> 8))
	lo.Set(uint8(value))
}

// Get16 reads a 16-bit value through a high/low register pair, low byte first.
func Get16(hi, lo Register8) uint16 {
	l := lo.Get()
	return uint16(hi.Get())<<8 | uint16(l)
}
