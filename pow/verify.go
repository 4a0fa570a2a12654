package pow

import (
	"git.gammaspectra.live/P2Pool/blockpow/utils"
)

// CheckValue returns the check value of the absolute coordinate (x, y) under the parameters of p.
// The offset of p is not used; only the block size decides position and index.
func (s *State) CheckValue(p *Params, x, y uint32) (uint32, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	s.load(p)
	size := p.BlockSize
	return s.coordinate(p, x%size, y%size, x/size, y/size), nil
}

// Locate returns the absolute coordinate inside the block of p that r encodes.
// When several coordinates share the encoding (blocks larger than 256), the first in scan order is returned.
func (p *Params) Locate(r Result) (x, y uint32, err error) {
	err = p.candidates(r, func(cx, cy uint32) bool {
		x, y = cx, cy
		return false
	})
	return x, y, err
}

// Verify checks that r encodes a coordinate of the block of p whose check value passes the difficulty.
// It does not check that r is the first such coordinate in scan order.
func (s *State) Verify(p *Params, r Result) (ok bool, err error) {
	s.load(p)
	size := p.BlockSize
	err = p.candidates(r, func(x, y uint32) bool {
		ok = p.Difficulty.CheckValue(s.coordinate(p, x%size, y%size, x/size, y/size))
		return !ok
	})
	return ok, err
}

// Verify runs State.Verify on a pooled State. Safe for concurrent use.
func Verify(p *Params, r Result) (bool, error) {
	s := getState()
	defer returnState(s)
	return s.Verify(p, r)
}

// candidates calls fn, in scan order, for every absolute coordinate of the block whose encoding equals r,
// until fn returns false
func (p *Params) candidates(r Result, fn func(x, y uint32) bool) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !r.Found() {
		return powError(ErrNoResult, "no coordinate encoded in empty result")
	}

	ys := axisCandidates(p.OffsetY, p.BlockSize, r.YPos(), uint8(r>>16))
	xs := axisCandidates(p.OffsetX, p.BlockSize, r.XPos(), uint8(r>>24))
	if len(xs) == 0 || len(ys) == 0 {
		return powError(ErrOutsideBlock, utils.SprintfNoEscape("result %s is outside block at (%d, %d) of size %d", r, p.OffsetX, p.OffsetY, p.BlockSize))
	}

	for _, yy := range ys {
		for _, xx := range xs {
			if !fn(p.OffsetX+xx, p.OffsetY+yy) {
				return nil
			}
		}
	}
	return nil
}

// axisCandidates returns, ascending, the block-relative offsets along one axis whose position and index lanes match
func axisCandidates(offset, size uint32, posLane, indexLane uint8) (out []uint32) {
	for rel := uint32(0); rel < size; rel++ {
		u := offset + rel
		if uint8(u%size) == posLane && uint8(u/size+1) == indexLane {
			out = append(out, rel)
		}
	}
	return out
}
