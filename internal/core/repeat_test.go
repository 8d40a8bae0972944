package core

import "testing"

func TestKeyRepeatFires(t *testing.T) {
	r := NewKeyRepeat(4, 2)
	var fired []int
	for d := 0; d <= 12; d++ {
		if r.Fire(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, 5, 7, 9, 11}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired on %v, expected %v", fired, want)
		}
	}
}

func TestKeyRepeatSanitizesArguments(t *testing.T) {
	r := NewKeyRepeat(-3, 0)
	for d := 1; d <= 5; d++ {
		if !r.Fire(d) {
			t.Fatalf("expected fire on every tick with zero delay and unit interval, missed %d", d)
		}
	}
	if r.Fire(0) || r.Fire(-1) {
		t.Fatal("released key must not fire")
	}
}
