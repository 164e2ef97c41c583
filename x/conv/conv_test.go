package conv

import "testing"

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{255, "255"},
		{18446744073709551615, "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := Utoa(nil, 5); len(got) != 0 {
		t.Fatalf("Utoa into empty buf = %q", got)
	}
	if Dec(42) != "42" {
		t.Fatalf("Dec(42) = %q", Dec(42))
	}
}

func TestHex(t *testing.T) {
	for _, c := range []struct {
		n    uint8
		want string
	}{
		{0x00, "0x00"},
		{0x01, "0x01"},
		{0x5a, "0x5a"},
		{0xff, "0xff"},
	} {
		if got := Hex8(c.n); got != c.want {
			t.Fatalf("Hex8(%#x) = %q, want %q", c.n, got, c.want)
		}
	}
	if got := U8Hex(make([]byte, 1), 0xAB); len(got) != 0 {
		t.Fatalf("short buf: %q", got)
	}
}
