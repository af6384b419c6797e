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

// IntToFloat widens integer samples into dst, reusing its capacity.
func IntToFloat(dst []float64, src []int16) []float64 {
	dst = EnsureLen(dst, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

// Duplicate interleaves mono samples into channels identical copies per frame.
func Duplicate(src []int16, channels int) []int16 {
	if channels <= 1 {
		out := make([]int16, len(src))
		copy(out, src)
		return out
	}
	out := make([]int16, len(src)*channels)
	for i, v := range src {
		frame := out[i*channels : (i+1)*channels]
		for c := range frame {
			frame[c] = v
		}
	}
	return out
}
