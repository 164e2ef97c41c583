// Package port resolves a port group letter to the three registers that
// control its pins.
package port

import (
	"avrgpio/errcode"
	"avrgpio/hal/reg"
	"avrgpio/x/conv"
)

// Width is the number of pins in a port group.
const Width = 8

// ID names a port group by its datasheet letter.
type ID byte

const (
	B ID = 'B'
	C ID = 'C'
	D ID = 'D'
)

var ids = [...]ID{B, C, D}

// IDs lists the supported port groups in register order.
func IDs() []ID { return ids[:] }

// Valid reports whether id is one of the supported port groups.
func (id ID) Valid() bool {
	return id == B || id == C || id == D
}

func (id ID) String() string {
	if id.Valid() {
		return "PORT" + string(rune(id))
	}
	return "PORT(" + quote(byte(id)) + ")"
}

// Registers is the register triple governing one port group.
//
// PORT has two meanings: for an output pin it is the driven level, for an
// input pin it enables the internal pull-up.
type Registers struct {
	DDR  reg.Register8 // 1 = output
	PORT reg.Register8 // output level or pull-up enable
	PIN  reg.Register8 // sampled level, read-only from software
}

// Resolver maps a port group to its registers.
type Resolver interface {
	Resolve(id ID) (Registers, error)
}

// Table is a fixed Resolver indexed in IDs() order.
type Table [3]Registers

func (t *Table) Resolve(id ID) (Registers, error) {
	switch id {
	case B:
		return t[0], nil
	case C:
		return t[1], nil
	case D:
		return t[2], nil
	}
	return Registers{}, invalid("port.Resolve", id)
}

// Default is the platform register table: hardware registers on AVR, the
// simulated bank Sim elsewhere.
var Default Resolver = platformTable()

// Resolve looks id up in Default.
func Resolve(id ID) (Registers, error) {
	return Default.Resolve(id)
}

func invalid(op string, id ID) error {
	return errcode.New(errcode.InvalidPort, op, quote(byte(id)))
}

func quote(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return "'" + string(rune(b)) + "'"
	}
	return conv.Hex8(b)
}
