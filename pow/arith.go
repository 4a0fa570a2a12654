package pow

import "math/bits"

// add64 wraps modulo 2^64
func add64(dst *uint64, addend uint64) {
	*dst += addend
}

func (s *State) addFromState64(dst, src int) {
	add64(&s.v[dst], s.v[src])
}

func rotr64(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}
