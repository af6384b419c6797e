package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestIntToFloat(t *testing.T) {
	out := IntToFloat(nil, []int16{-32768, 0, 32767})
	want := []float64{-32768, 0, 32767}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestDuplicate(t *testing.T) {
	out := Duplicate([]int16{1, -2, 3}, 2)
	want := []int16{1, 1, -2, -2, 3, 3}
	if len(out) != len(want) {
		t.Fatalf("len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}

	mono := Duplicate([]int16{7}, 1)
	if len(mono) != 1 || mono[0] != 7 {
		t.Fatalf("mono = %v, want [7]", mono)
	}
}
