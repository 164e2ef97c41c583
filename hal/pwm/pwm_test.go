package pwm

import (
	"testing"

	"periph.io/x/conn/v3/physic"

	"avrgpio/errcode"
	"avrgpio/hal/port"
	"avrgpio/hal/reg"
)

func TestConfigureTimer0ChannelA(t *testing.T) {
	s := NewSimBank()
	if err := Configure(s, Timer0, 128, A, 3); err != nil {
		t.Fatal(err)
	}
	a, b, ocra, ocrb := s.Snapshot(Timer0)
	if a != COMA1|WGMn1|WGMn0 {
		t.Fatalf("TCCR0A = %08b", a)
	}
	if b != 3 {
		t.Fatalf("TCCR0B = %08b", b)
	}
	if ocra != 128 || ocrb != 0 {
		t.Fatalf("OCR0A=%d OCR0B=%d", ocra, ocrb)
	}
}

func TestConfigureTimer2ChannelBClampsDuty(t *testing.T) {
	s := NewSimBank()
	if err := Configure(s, Timer2, 1000, B, 7); err != nil {
		t.Fatal(err)
	}
	a, b, _, ocrb := s.Snapshot(Timer2)
	if a != COMB1|WGMn1|WGMn0 || b != 7 {
		t.Fatalf("TCCR2A=%08b TCCR2B=%08b", a, b)
	}
	if ocrb != 0xFF {
		t.Fatalf("OCR2B = %d, want clamp to 255", ocrb)
	}
}

func TestConfigureTimer1Uses16BitCompare(t *testing.T) {
	s := NewSimBank()
	var hiFirst []string
	s.OCRA[1][1].OnSet = func(_, _ uint8) { hiFirst = append(hiFirst, "hi") }
	s.OCRA[1][0].OnSet = func(_, _ uint8) { hiFirst = append(hiFirst, "lo") }

	if err := Configure(s, Timer1, 0x1234, A, 1); err != nil {
		t.Fatal(err)
	}
	a, b, ocra, _ := s.Snapshot(Timer1)
	if a != COMA1|WGMn1 {
		t.Fatalf("TCCR1A = %08b", a)
	}
	if b != WGM13|WGMn2|1 {
		t.Fatalf("TCCR1B = %08b", b)
	}
	if ocra != 0x1234 {
		t.Fatalf("OCR1A = %#x", ocra)
	}
	if icr := reg.Get16(&s.ICR[1], &s.ICR[0]); icr != 0xFFFF {
		t.Fatalf("ICR1 = %#x", icr)
	}
	if len(hiFirst) != 2 || hiFirst[0] != "hi" {
		t.Fatalf("OCR1A write order %v", hiFirst)
	}
}

func TestConfigureMasksPrescaler(t *testing.T) {
	s := NewSimBank()
	if err := Configure(s, Timer0, 1, B, 0xFA); err != nil {
		t.Fatal(err)
	}
	if _, b, _, _ := s.Snapshot(Timer0); b != 0x02 {
		t.Fatalf("TCCR0B = %08b, want only the low three bits", b)
	}
}

func TestConfigureIsOROnly(t *testing.T) {
	s := NewSimBank()
	s.TCCRA[0].V = 1 << 6 // COM0A0 left over from earlier setup
	s.TCCRB[0].V = 0x04
	if err := Configure(s, Timer0, 10, B, 1); err != nil {
		t.Fatal(err)
	}
	a, b, _, _ := s.Snapshot(Timer0)
	if a != 1<<6|COMB1|WGMn1|WGMn0 {
		t.Fatalf("TCCR0A = %08b, earlier bits must persist", a)
	}
	if b != 0x05 {
		t.Fatalf("TCCR0B = %08b, prescaler bits are OR-ed", b)
	}

	if err := Reset(s, Timer0); err != nil {
		t.Fatal(err)
	}
	if a, b, _, _ := s.Snapshot(Timer0); a != 0 || b != 0 {
		t.Fatalf("Reset left %08b %08b", a, b)
	}
}

func TestInvalidSelectorIsReportedAndHarmless(t *testing.T) {
	s := NewSimBank()
	var rec reg.Recorder
	for i := range s.TCCRA {
		rec.Attach(&s.TCCRA[i])
		rec.Attach(&s.TCCRB[i])
		rec.Attach(&s.OCRA[i][0])
		rec.Attach(&s.OCRB[i][0])
	}
	cases := []struct {
		timer Timer
		ch    Channel
	}{
		{3, A}, {Timer0, 'C'}, {Timer1, 0}, {255, B},
	}
	for _, c := range cases {
		err := Configure(s, c.timer, 10, c.ch, 1)
		if errcode.Of(err) != errcode.InvalidPWMSelector {
			t.Fatalf("Configure(%d,%q): want invalid_pwm_selector, got %v", c.timer, c.ch, err)
		}
	}
	if len(rec.Writes) != 0 {
		t.Fatalf("invalid selectors wrote %v", rec.Writes)
	}
}

func TestSetDutyAndDisconnect(t *testing.T) {
	s := NewSimBank()
	_ = Configure(s, Timer2, 10, A, 4)
	if err := SetDuty(s, Timer2, A, 200); err != nil {
		t.Fatal(err)
	}
	if _, _, ocra, _ := s.Snapshot(Timer2); ocra != 200 {
		t.Fatalf("OCR2A = %d", ocra)
	}
	if err := Disconnect(s, Timer2, A); err != nil {
		t.Fatal(err)
	}
	if a, _, _, _ := s.Snapshot(Timer2); a&COMA1 != 0 || a&(WGMn1|WGMn0) == 0 {
		t.Fatalf("Disconnect left TCCR2A = %08b", a)
	}
	if err := SetDuty(s, 9, A, 1); errcode.Of(err) != errcode.InvalidPWMSelector {
		t.Fatalf("SetDuty on timer 9: %v", err)
	}
}

func TestSetPrescalerReplacesClockSelect(t *testing.T) {
	s := NewSimBank()
	s.TCCRB[1].V = WGM13 | WGMn2 | 3
	if err := SetPrescaler(s, Timer1, 4); err != nil {
		t.Fatal(err)
	}
	if _, b, _, _ := s.Snapshot(Timer1); b != WGM13|WGMn2|4 {
		t.Fatalf("TCCR1B %08b", b)
	}
	if err := SetPrescaler(s, Timer1, 0); err != nil {
		t.Fatal(err)
	}
	if _, b, _, _ := s.Snapshot(Timer1); b != WGM13|WGMn2 {
		t.Fatalf("stopped TCCR1B %08b", b)
	}
	if err := SetPrescaler(s, 3, 1); errcode.Of(err) != errcode.InvalidPWMSelector {
		t.Fatalf("SetPrescaler on timer 3: %v", err)
	}
}

func TestChannelFor(t *testing.T) {
	tm, ch, ok := ChannelFor(port.B, 1)
	if !ok || tm != Timer1 || ch != A {
		t.Fatalf("PB1 -> %d %q %v", tm, ch, ok)
	}
	tm, ch, ok = ChannelFor(port.D, 3)
	if !ok || tm != Timer2 || ch != B {
		t.Fatalf("PD3 -> %d %q %v", tm, ch, ok)
	}
	if _, _, ok := ChannelFor(port.C, 0); ok {
		t.Fatal("PC0 has no compare output")
	}
}

func TestFrequencyAndPrescaler(t *testing.T) {
	// 16 MHz / (64 * 256)
	if got := Frequency(Timer0, 3); got != 976562500*physic.MicroHertz {
		t.Fatalf("Timer0/64 = %s", got)
	}
	if Frequency(Timer0, 0) != 0 || Frequency(Timer0, 6) != 0 {
		t.Fatal("stopped/external selectors should have no frequency")
	}
	if Divisor(Timer2, 3) != 32 || Divisor(Timer0, 3) != 64 {
		t.Fatal("timer 2 has its own divisor table")
	}
	if sel := Prescaler(Timer0, 1*physic.KiloHertz); sel != 3 {
		t.Fatalf("Prescaler(Timer0, 1kHz) = %d", sel)
	}
	if sel := Prescaler(Timer2, 500*physic.Hertz); sel != 5 {
		t.Fatalf("Prescaler(Timer2, 500Hz) = %d", sel)
	}
	if sel := Prescaler(Timer1, 0); sel != 5 {
		t.Fatalf("Prescaler(Timer1, 0) = %d", sel)
	}
}
