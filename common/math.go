package common

import "cmp"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Wrap maps i into [0, n) for any integer i. n must be positive.
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
