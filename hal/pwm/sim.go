package pwm

import "avrgpio/hal/reg"

// SimBank is an in-memory copy of the three timer units' registers.
type SimBank struct {
	TCCRA, TCCRB [3]reg.Mem8
	OCRA, OCRB   [3][2]reg.Mem8 // [lo, hi]; hi only used by Timer1
	ICR          [2]reg.Mem8

	units [3]Unit
}

func NewSimBank() *SimBank {
	s := &SimBank{}
	for i := range s.units {
		u := Unit{
			Timer: Timer(i),
			Bits:  8,
			TCCRA: &s.TCCRA[i],
			TCCRB: &s.TCCRB[i],
			OCRA:  Compare{Lo: &s.OCRA[i][0]},
			OCRB:  Compare{Lo: &s.OCRB[i][0]},
		}
		if Timer(i) == Timer1 {
			u.Bits = 16
			u.OCRA.Hi = &s.OCRA[i][1]
			u.OCRB.Hi = &s.OCRB[i][1]
			u.ICR = Compare{Hi: &s.ICR[1], Lo: &s.ICR[0]}
		}
		s.units[i] = u
	}
	return s
}

func (s *SimBank) Unit(t Timer) (*Unit, bool) {
	if int(t) >= len(s.units) {
		return nil, false
	}
	return &s.units[t], true
}

// Snapshot returns the control bytes and compare values of one unit.
func (s *SimBank) Snapshot(t Timer) (tccra, tccrb uint8, ocra, ocrb uint16) {
	u, ok := s.Unit(t)
	if !ok {
		return
	}
	return s.TCCRA[t].V, s.TCCRB[t].V, u.OCRA.Get(), u.OCRB.Get()
}
