package types

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"git.gammaspectra.live/P2Pool/blockpow/utils"
)

// Difficulty A coordinate passes when its check value is strictly greater than the difficulty
type Difficulty uint32

const MaxDifficulty = Difficulty(math.MaxUint32)

var ZeroDifficulty Difficulty

// CheckValue reports whether check passes this difficulty
func (d Difficulty) CheckValue(check uint32) bool {
	return check > uint32(d)
}

func (d Difficulty) String() string {
	return utils.SprintfNoEscape("%08x", uint32(d))
}

// DifficultyFromString parses hex, with or without a 0x prefix
func DifficultyFromString(s string) (Difficulty, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) == 0 || len(s) > 8 {
		return ZeroDifficulty, errors.New("wrong difficulty size")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ZeroDifficulty, err
	}
	return Difficulty(v), nil
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(d), 10), nil
}

// UnmarshalJSON accepts either a plain number or a hex string
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	if b[0] == '"' {
		if len(b) < 2 || b[len(b)-1] != '"' {
			return errors.New("invalid difficulty")
		}
		v, err := DifficultyFromString(string(b[1 : len(b)-1]))
		if err != nil {
			return err
		}
		*d = v
		return nil
	}

	v, err := utils.ParseUint64(b)
	if err != nil {
		return err
	}
	if v > math.MaxUint32 {
		return errors.New("difficulty out of range")
	}
	*d = Difficulty(v)
	return nil
}
