package pow

import (
	"encoding/binary"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// Result packed search result, four byte lanes from most to least significant:
// xIndex+1, yIndex+1, xPos, yPos. Every lane keeps only its low 8 bits, so block indices of
// 255 and above wrap around, as do positions in blocks larger than 256.
//
// NoResult can never collide with a found coordinate when indices fit their lanes, as both
// index lanes are then at least 1.
//
//nolint:recvcheck
type Result uint32

const NoResult Result = 0

const ResultSize = 4

func NewResult(xLane, yLane, xPos, yPos uint32) Result {
	return Result((xLane&0xff)<<24 | (yLane&0xff)<<16 | (xPos&0xff)<<8 | yPos&0xff)
}

func (r Result) Found() bool {
	return r != NoResult
}

// XIndex block index on the x axis, modulo 256
func (r Result) XIndex() uint8 {
	return uint8(r>>24) - 1
}

// YIndex block index on the y axis, modulo 256
func (r Result) YIndex() uint8 {
	return uint8(r>>16) - 1
}

func (r Result) XPos() uint8 {
	return uint8(r >> 8)
}

func (r Result) YPos() uint8 {
	return uint8(r)
}

func (r Result) Bytes() (buf [ResultSize]byte) {
	binary.BigEndian.PutUint32(buf[:], uint32(r))
	return
}

func ResultFromBytes(buf []byte) Result {
	if len(buf) != ResultSize {
		return NoResult
	}
	return Result(binary.BigEndian.Uint32(buf))
}

func (r Result) String() string {
	buf := r.Bytes()
	return fasthex.EncodeToString(buf[:])
}

func (r Result) MarshalJSON() ([]byte, error) {
	var buf [ResultSize*2 + 2]byte
	buf[0] = '"'
	buf[ResultSize*2+1] = '"'
	b := r.Bytes()
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func (r *Result) UnmarshalJSON(b []byte) error {
	if len(b) != ResultSize*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("wrong result size")
	}

	var buf [ResultSize]byte
	if _, err := fasthex.Decode(buf[:], b[1:len(b)-1]); err != nil {
		return err
	}
	*r = ResultFromBytes(buf[:])
	return nil
}
