//go:build avr

package pwm

import "device/avr"

type hardwareBank [3]Unit

func (h *hardwareBank) Unit(t Timer) (*Unit, bool) {
	if int(t) >= len(h) {
		return nil, false
	}
	return &h[t], true
}

func platformBank() Bank {
	return &hardwareBank{
		{
			Timer: Timer0, Bits: 8,
			TCCRA: avr.TCCR0A, TCCRB: avr.TCCR0B,
			OCRA: Compare{Lo: avr.OCR0A}, OCRB: Compare{Lo: avr.OCR0B},
		},
		{
			Timer: Timer1, Bits: 16,
			TCCRA: avr.TCCR1A, TCCRB: avr.TCCR1B,
			OCRA: Compare{Hi: avr.OCR1AH, Lo: avr.OCR1AL},
			OCRB: Compare{Hi: avr.OCR1BH, Lo: avr.OCR1BL},
			ICR:  Compare{Hi: avr.ICR1H, Lo: avr.ICR1L},
		},
		{
			Timer: Timer2, Bits: 8,
			TCCRA: avr.TCCR2A, TCCRB: avr.TCCR2B,
			OCRA: Compare{Lo: avr.OCR2A}, OCRB: Compare{Lo: avr.OCR2B},
		},
	}
}
