package types

import (
	"encoding/binary"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const VectorSize = 4

// VectorByteSize is the size of a Vector in its canonical big-endian byte form
const VectorByteSize = VectorSize * 4

// Vector Four 32-bit components, used for both work and hash inputs.
// Components are named after the RGBA channels they were historically packed from.
//
//nolint:recvcheck
type Vector [VectorSize]uint32

var ZeroVector Vector

func (v Vector) R() uint32 { return v[0] }
func (v Vector) G() uint32 { return v[1] }
func (v Vector) B() uint32 { return v[2] }
func (v Vector) A() uint32 { return v[3] }

// VectorFromBytes decodes big-endian components. Returns ZeroVector on wrong size.
func VectorFromBytes(buf []byte) (v Vector) {
	if len(buf) != VectorByteSize {
		return
	}
	for i := range v {
		v[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return
}

// VectorFromBytes4 widens four byte-valued components, the usual form of a work vector
func VectorFromBytes4(b [VectorSize]byte) Vector {
	return Vector{uint32(b[0]), uint32(b[1]), uint32(b[2]), uint32(b[3])}
}

func VectorFromString(s string) (Vector, error) {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return ZeroVector, err
	}
	if len(buf) != VectorByteSize {
		return ZeroVector, errors.New("wrong vector size")
	}
	return VectorFromBytes(buf), nil
}

func MustVectorFromString(s string) Vector {
	if v, err := VectorFromString(s); err != nil {
		panic(err)
	} else {
		return v
	}
}

func (v Vector) Bytes() (buf [VectorByteSize]byte) {
	for i := range v {
		binary.BigEndian.PutUint32(buf[i*4:], v[i])
	}
	return
}

func (v Vector) String() string {
	buf := v.Bytes()
	return fasthex.EncodeToString(buf[:])
}

func (v Vector) MarshalJSON() ([]byte, error) {
	var buf [VectorByteSize*2 + 2]byte
	buf[0] = '"'
	buf[VectorByteSize*2+1] = '"'
	b := v.Bytes()
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func (v *Vector) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != VectorByteSize*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("wrong vector size")
	}

	var buf [VectorByteSize]byte
	if _, err := fasthex.Decode(buf[:], b[1:len(b)-1]); err != nil {
		return err
	}
	*v = VectorFromBytes(buf[:])

	return nil
}
