package pow

import (
	"sync"

	"git.gammaspectra.live/P2Pool/blockpow/types"
	"golang.org/x/sys/cpu"
)

// State scratch space of one search, to reuse between searches. Not thread-safe.
// The zero value is ready to use.
type State struct {
	v [16]uint64 // working state, reset from iv for every coordinate
	m [16]uint64 // message block, words 5..15 are never written

	// high half of message word 0, fixed per call
	work1 uint64

	_ cpu.CacheLinePad // prevents false sharing between states of different goroutines
}

func NewState() *State {
	return &State{}
}

var statePool = sync.Pool{
	New: func() any {
		return NewState()
	},
}

func getState() *State {
	//nolint:forcetypeassert
	return statePool.Get().(*State)
}

func returnState(s *State) {
	statePool.Put(s)
}

// load sets up the message words that do not depend on the coordinate
func (s *State) load(p *Params) {
	s.work1 = uint64(packWork(p.Work1)) << 32

	s.m[1] = uint64(p.Hash0.R()) | uint64(p.Hash0.G())<<32
	s.m[2] = uint64(p.Hash0.B()) | uint64(p.Hash0.A())<<32
	s.m[3] = uint64(p.Hash1.R()) | uint64(p.Hash1.G())<<32
	s.m[4] = uint64(p.Hash1.B()) | uint64(p.Hash1.A())<<32
}

// coordinate returns the check value of a coordinate. load must have been called with p.
func (s *State) coordinate(p *Params, xPos, yPos, xIndex, yIndex uint32) uint32 {
	s.m[0] = s.work1 | uint64(packPosition(p.Work0, xPos, yPos, xIndex, yIndex))

	s.v = iv
	s.compress()

	return checkSeed ^ uint32(s.v[0]>>32) ^ uint32(s.v[8]>>32)
}

// packWork folds the four components into one word, one byte apart.
// Shifts are done in 32 bits, upper bits of overlapping fields are discarded.
func packWork(w types.Vector) uint32 {
	return w.R() ^ (w.G() << 8) ^ (w.B() << 16) ^ (w.A() << 24)
}

// packPosition folds the coordinate into the work vector the same way as packWork
func packPosition(w types.Vector, xPos, yPos, xIndex, yIndex uint32) uint32 {
	return xPos ^ (yPos << 8) ^ ((w.B() ^ xIndex) << 16) ^ ((w.A() ^ yIndex) << 24)
}
