package pow

import (
	"git.gammaspectra.live/P2Pool/blockpow/types"
	"git.gammaspectra.live/P2Pool/blockpow/utils"
)

// Params input of a block search. Read-only during a search.
type Params struct {
	OffsetX uint32 `json:"offset_x"`
	OffsetY uint32 `json:"offset_y"`

	// BlockSize side of the square block, must be non-zero
	BlockSize uint32 `json:"block_size"`

	Difficulty types.Difficulty `json:"difficulty"`

	Work0 types.Vector `json:"work0"`
	Work1 types.Vector `json:"work1"`
	Hash0 types.Vector `json:"hash0"`
	Hash1 types.Vector `json:"hash1"`
}

func (p *Params) Validate() error {
	if p.BlockSize == 0 {
		return powError(ErrInvalidBlockSize, utils.SprintfNoEscape("block size of zero at offset (%d, %d)", p.OffsetX, p.OffsetY))
	}
	return nil
}

// Search scans the block row by row and returns the first coordinate whose check value
// exceeds the difficulty, or NoResult if none does.
//
// Absolute coordinates are offset + (xx, yy) with uint32 wraparound. Position and index are
// the remainder and quotient of the absolute coordinate by the block size, so they only
// match (xx, yy) and the block number when the offset is a multiple of the block size.
func (s *State) Search(p *Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return NoResult, err
	}

	s.load(p)

	size := p.BlockSize
	for yy := uint32(0); yy < size; yy++ {
		uy := p.OffsetY + yy
		yPos, yIndex := uy%size, uy/size

		for xx := uint32(0); xx < size; xx++ {
			ux := p.OffsetX + xx
			xPos, xIndex := ux%size, ux/size

			if p.Difficulty.CheckValue(s.coordinate(p, xPos, yPos, xIndex, yIndex)) {
				return NewResult(xIndex+1, yIndex+1, xPos, yPos), nil
			}
		}
	}

	return NoResult, nil
}

// Search runs State.Search on a pooled State. Safe for concurrent use.
func Search(p *Params) (Result, error) {
	s := getState()
	defer returnState(s)
	return s.Search(p)
}

// Calculate is Search over fixed-width arguments, returning the packed result
func Calculate(offsetX, offsetY, blockSize, difficulty uint32, work0, work1, hash0, hash1 types.Vector) (uint32, error) {
	r, err := Search(&Params{
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		BlockSize:  blockSize,
		Difficulty: types.Difficulty(difficulty),
		Work0:      work0,
		Work1:      work1,
		Hash0:      hash0,
		Hash1:      hash1,
	})
	return uint32(r), err
}
