package gpio

// DebounceSettleMs is the gap between the two samples Debounce takes.
const DebounceSettleMs = 50

// Blink performs count cycles of high, delay, low, delay on g.
func Blink(g GPIO, d Delayer, intervalMs uint16, count uint8) {
	for i := uint8(0); i < count; i++ {
		g.Write(true)
		d.Delay(intervalMs)
		g.Write(false)
		d.Delay(intervalMs)
	}
}

// Debounce samples g twice, DebounceSettleMs apart. Agreeing samples return
// their level; disagreeing samples return false, so a bouncing contact and a
// stable low look the same to the caller.
func Debounce(g GPIO, d Delayer) bool {
	first := g.Read()
	d.Delay(DebounceSettleMs)
	second := g.Read()
	if first == second {
		return first
	}
	return false
}
