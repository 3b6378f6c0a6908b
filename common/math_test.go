package common

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 0.2, 0.1, 0.25, 0.2},
		{"below", 0.05, 0.1, 0.25, 0.1},
		{"above", 0.3, 0.1, 0.25, 0.25},
		{"on_bound", 9, 9, 108, 9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 6, 0},
		{5, 6, 5},
		{6, 6, 0},
		{-1, 6, 5},
		{-7, 6, 5},
		{13, 6, 1},
	}
	for _, c := range cases {
		if got := Wrap(c.i, c.n); got != c.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}
