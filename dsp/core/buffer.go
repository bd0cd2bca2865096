package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Fill sets all values in buf to v.
func Fill(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

// Ones returns a new slice of length n filled with 1.0.
func Ones(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	Fill(out, 1)
	return out
}
