package pow

import (
	"errors"
	"testing"
)

func TestVerify(t *testing.T) {
	var state State
	for _, v := range searchVectors {
		if !v.Result.Found() {
			continue
		}
		ok, err := state.Verify(&v.Params, v.Result)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("%s in block (%d, %d, %d) did not verify", v.Result, v.Params.OffsetX, v.Params.OffsetY, v.Params.BlockSize)
		}
	}
}

func TestVerify_BelowDifficulty(t *testing.T) {
	// check value of (0, 0) is 1e1ca5c4
	p := testParams(0, 0, 16, 0xf0000000)
	ok, err := Verify(&p, NewResult(1, 1, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("coordinate below difficulty verified")
	}
}

func TestVerify_Errors(t *testing.T) {
	p := testParams(0, 0, 16, 0)

	if _, err := Verify(&p, NoResult); !errors.Is(err, ErrNoResult) {
		t.Fatalf("expected %s, got %v", ErrNoResult, err)
	}

	// block index 2 is not part of a block at offset 0
	if _, err := Verify(&p, NewResult(2+1, 0+1, 0, 0)); !errors.Is(err, ErrOutsideBlock) {
		t.Fatalf("expected %s, got %v", ErrOutsideBlock, err)
	}

	// position past the block size
	if _, err := Verify(&p, NewResult(1, 1, 20, 0)); !errors.Is(err, ErrOutsideBlock) {
		t.Fatalf("expected %s, got %v", ErrOutsideBlock, err)
	}

	p.BlockSize = 0
	if _, err := Verify(&p, NewResult(1, 1, 0, 0)); !errors.Is(err, ErrInvalidBlockSize) {
		t.Fatalf("expected %s, got %v", ErrInvalidBlockSize, err)
	}
}

func TestLocate(t *testing.T) {
	for _, v := range []struct {
		Params Params
		Result Result
		X, Y   uint32
	}{
		{Params: testParams(0, 0, 16, 0), Result: 0x01010f0b, X: 15, Y: 11},
		{Params: testParams(10, 3, 16, 0), Result: 0x01010f0b, X: 15, Y: 11},
		{Params: testParams(10, 3, 16, 0), Result: 0x02020102, X: 17, Y: 18},
		{Params: testParams(1000, 2000, 64, 0), Result: 0x10203438, X: 1012, Y: 2040},
		{Params: testParams(0xfffffff0, 0xfffffff8, 32, 0), Result: 0x01000a1d, X: 10, Y: 0xfffffffd},
	} {
		x, y, err := v.Params.Locate(v.Result)
		if err != nil {
			t.Fatal(err)
		}
		if x != v.X || y != v.Y {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", v.Result, x, y, v.X, v.Y)
		}
	}
}
