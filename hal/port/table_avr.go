//go:build avr

package port

import "device/avr"

func platformTable() Resolver {
	return &Table{
		{DDR: avr.DDRB, PORT: avr.PORTB, PIN: avr.PINB},
		{DDR: avr.DDRC, PORT: avr.PORTC, PIN: avr.PINC},
		{DDR: avr.DDRD, PORT: avr.PORTD, PIN: avr.PIND},
	}
}
