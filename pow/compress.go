package pow

// compress runs all rounds over the current state and message. 96 mix calls.
func (s *State) compress() {
	m := &s.m
	for i := range sigma {
		r := &sigma[i]

		// columns
		s.mix(0, 4, 8, 12, m[r[0]], m[r[1]])
		s.mix(1, 5, 9, 13, m[r[2]], m[r[3]])
		s.mix(2, 6, 10, 14, m[r[4]], m[r[5]])
		s.mix(3, 7, 11, 15, m[r[6]], m[r[7]])

		// diagonals
		s.mix(0, 5, 10, 15, m[r[8]], m[r[9]])
		s.mix(1, 6, 11, 12, m[r[10]], m[r[11]])
		s.mix(2, 7, 8, 13, m[r[12]], m[r[13]])
		s.mix(3, 4, 9, 14, m[r[14]], m[r[15]])
	}
}
