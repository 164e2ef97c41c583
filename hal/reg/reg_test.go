package reg

import "testing"

func TestMem8ReadModifyWrite(t *testing.T) {
	m := &Mem8{V: 0b1010_0000}
	m.SetBits(0b0000_0001)
	if m.V != 0b1010_0001 {
		t.Fatalf("SetBits: got %08b", m.V)
	}
	m.ClearBits(0b1000_0000)
	if m.V != 0b0010_0001 {
		t.Fatalf("ClearBits: got %08b", m.V)
	}
	if !m.HasBits(0b0010_0000) || m.HasBits(0b0100_0000) {
		t.Fatalf("HasBits wrong for %08b", m.V)
	}
	Xor(m, 0b0000_0011)
	if m.V != 0b0010_0010 {
		t.Fatalf("Xor: got %08b", m.V)
	}
}

func TestAssign(t *testing.T) {
	m := &Mem8{}
	Assign(m, 0x10, true)
	Assign(m, 0x01, true)
	Assign(m, 0x10, false)
	if m.V != 0x01 {
		t.Fatalf("Assign: got %#x", m.V)
	}
}

func TestOnGetSimulatesHardware(t *testing.T) {
	samples := []uint8{0x01, 0x00}
	m := &Mem8{OnGet: func(uint8) uint8 {
		v := samples[0]
		samples = samples[1:]
		return v
	}}
	if !m.HasBits(0x01) {
		t.Fatal("first sample should be high")
	}
	if m.HasBits(0x01) {
		t.Fatal("second sample should be low")
	}
}

func TestRecorderChainsHooks(t *testing.T) {
	m := &Mem8{}
	var seen int
	m.OnSet = func(_, _ uint8) { seen++ }
	var rec Recorder
	rec.Attach(m)
	m.Set(3)
	m.SetBits(4)
	if len(rec.Writes) != 2 || rec.Writes[0] != 3 || rec.Writes[1] != 7 {
		t.Fatalf("writes = %v", rec.Writes)
	}
	if seen != 2 {
		t.Fatalf("previous hook called %d times, want 2", seen)
	}
}

func Test16BitPairOrder(t *testing.T) {
	var order []string
	hi := &Mem8{OnSet: func(_, _ uint8) { order = append(order, "hi") }}
	lo := &Mem8{OnSet: func(_, _ uint8) { order = append(order, "lo") }}
	Set16(hi, lo, 0xBEEF)
	if hi.V != 0xBE || lo.V != 0xEF {
		t.Fatalf("Set16 wrote hi=%#x lo=%#x", hi.V, lo.V)
	}
	if len(order) != 2 || order[0] != "hi" {
		t.Fatalf("high byte must be written first, got %v", order)
	}
	if Get16(hi, lo) != 0xBEEF {
		t.Fatalf("Get16 = %#x", Get16(hi, lo))
	}
}
