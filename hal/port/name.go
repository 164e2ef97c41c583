package port

import (
	"avrgpio/errcode"
	"avrgpio/x/conv"
	"avrgpio/x/mathx"
)

// Name returns the datasheet name of a pin, e.g. "PB5". It does not check
// that pin is below Width.
func Name(id ID, pin uint8) string {
	return "P" + string(rune(id)) + conv.Dec(uint64(pin))
}

// ParsePin accepts "PB5", "B5" and lower-case forms.
func ParsePin(s string) (ID, uint8, error) {
	if len(s) == 3 && (s[0] == 'P' || s[0] == 'p') {
		s = s[1:]
	}
	if len(s) != 2 {
		return 0, 0, errcode.New(errcode.InvalidPinName, "port.ParsePin", s)
	}
	id := ID(upper(s[0]))
	if !id.Valid() {
		return 0, 0, invalid("port.ParsePin", id)
	}
	if !mathx.Between(s[1], '0', '0'+Width-1) {
		return 0, 0, errcode.New(errcode.InvalidPin, "port.ParsePin", s)
	}
	return id, s[1] - '0', nil
}

// Number maps a pin to a flat index: PB0..PB7 are 0..7, PC 8..15, PD 16..23.
// Unsupported ports return -1.
func Number(id ID, pin uint8) int {
	i, ok := index(id)
	if !ok {
		return -1
	}
	return i*Width + int(pin)
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
