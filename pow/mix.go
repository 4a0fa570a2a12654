package pow

// mix is the G function. Mutates state words a, b, c, d using message words mx, my.
func (s *State) mix(a, b, c, d int, mx, my uint64) {
	v := &s.v

	s.addFromState64(a, b)
	add64(&v[a], mx)
	v[d] = rotr64(v[d]^v[a], 32)
	s.addFromState64(c, d)
	v[b] = rotr64(v[b]^v[c], 24)

	s.addFromState64(a, b)
	add64(&v[a], my)
	v[d] = rotr64(v[d]^v[a], 16)
	s.addFromState64(c, d)
	v[b] = rotr64(v[b]^v[c], 63)
}
