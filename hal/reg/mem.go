package reg

// Mem8 is an in-memory Register8. The zero value is a register reading 0.
//
// OnGet and OnSet, when non-nil, observe every access. OnGet may return a
// replacement value to simulate hardware that changes under software
// (an input latch, a status flag).
type Mem8 struct {
	V     uint8
	OnGet func(v uint8) uint8
	OnSet func(old, v uint8)
}

func (m *Mem8) Get() uint8 {
	if m.OnGet != nil {
		m.V = m.OnGet(m.V)
	}
	return m.V
}

func (m *Mem8) Set(v uint8) {
	old := m.V
	m.V = v
	if m.OnSet != nil {
		m.OnSet(old, v)
	}
}

func (m *Mem8) SetBits(mask uint8)      { m.Set(m.Get() | mask) }
func (m *Mem8) ClearBits(mask uint8)    { m.Set(m.Get() &^ mask) }
func (m *Mem8) HasBits(mask uint8) bool { return m.Get()&mask != 0 }

// Recorder collects the values written to the Mem8s it is attached to.
type Recorder struct {
	Writes []uint8
}

// Attach hooks rec into m, chaining any OnSet already installed.
func (rec *Recorder) Attach(m *Mem8) {
	prev := m.OnSet
	m.OnSet = func(old, v uint8) {
		rec.Writes = append(rec.Writes, v)
		if prev != nil {
			prev(old, v)
		}
	}
}
