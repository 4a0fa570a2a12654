package pow

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// ReferenceCheckValue computes the same value as State.CheckValue through a regular BLAKE2b
// implementation: the check value is the high half of the first word of an 8-byte digest
// of the 40-byte message block.
func ReferenceCheckValue(p *Params, x, y uint32) (uint32, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	size := p.BlockSize

	var msg [messageSize]byte
	binary.LittleEndian.PutUint32(msg[0:], packPosition(p.Work0, x%size, y%size, x/size, y/size))
	binary.LittleEndian.PutUint32(msg[4:], packWork(p.Work1))
	for i := range p.Hash0 {
		binary.LittleEndian.PutUint32(msg[8+i*4:], p.Hash0[i])
		binary.LittleEndian.PutUint32(msg[24+i*4:], p.Hash1[i])
	}

	h, err := blake2b.New(8, nil)
	if err != nil {
		return 0, err
	}
	_, _ = h.Write(msg[:])

	var digest [8]byte
	h.Sum(digest[:0])
	return binary.LittleEndian.Uint32(digest[4:]), nil
}
