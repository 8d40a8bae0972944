package core

// KeyRepeat decides when a held key should fire again. It is driven by the
// number of ticks the key has been held, so it behaves the same at any TPS.
type KeyRepeat struct {
	delay    int
	interval int
}

// NewKeyRepeat constructs a KeyRepeat that waits delay ticks after the
// initial press and then fires every interval ticks.
func NewKeyRepeat(delay, interval int) *KeyRepeat {
	if delay < 0 {
		delay = 0
	}
	if interval <= 0 {
		interval = 1
	}
	return &KeyRepeat{delay: delay, interval: interval}
}

// Fire reports whether a key held for duration ticks triggers on this tick.
// A duration of 1 is the press itself; 0 means the key is up.
func (r *KeyRepeat) Fire(duration int) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	held := duration - 1
	if held < r.delay {
		return false
	}
	return (held-r.delay)%r.interval == 0
}
