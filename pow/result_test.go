package pow

import (
	"testing"

	"git.gammaspectra.live/P2Pool/blockpow/utils"
)

func TestResult_Lanes(t *testing.T) {
	r := NewResult(15+1, 31+1, 40, 16)

	if uint32(r) != 0x10202810 {
		t.Fatalf("expected 10202810, got %s", r)
	}
	if !r.Found() {
		t.Fatal("expected found")
	}
	if r.XIndex() != 15 || r.YIndex() != 31 || r.XPos() != 40 || r.YPos() != 16 {
		t.Fatalf("unexpected lanes %d %d %d %d", r.XIndex(), r.YIndex(), r.XPos(), r.YPos())
	}
	if r.Bytes() != [ResultSize]byte{0x10, 0x20, 0x28, 0x10} {
		t.Fatalf("unexpected bytes %x", r.Bytes())
	}
}

func TestResult_Truncation(t *testing.T) {
	// index 255 packs into a zero lane, index 256 aliases index 0
	if r := NewResult(255+1, 256+1, 300, 511); r != 0x00012cff {
		t.Fatalf("expected 00012cff, got %s", r)
	}

	if NoResult.Found() {
		t.Fatal("NoResult must not be found")
	}
	if NewResult(1, 1, 0, 0) == NoResult {
		t.Fatal("first coordinate collides with NoResult")
	}
}

func TestResult_JSON(t *testing.T) {
	r := NewResult(3, 4, 5, 6)

	buf, err := utils.MarshalJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `"03040506"` {
		t.Fatalf("unexpected encoding %s", buf)
	}

	var decoded Result
	if err = utils.UnmarshalJSON(buf, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != r {
		t.Fatalf("expected %s, got %s", r, decoded)
	}

	if err = utils.UnmarshalJSON([]byte(`"0304"`), &decoded); err == nil {
		t.Fatal("expected error on short result")
	}
}

func TestParams_JSON(t *testing.T) {
	p := testParams(1000, 2000, 64, 0xffff0000)

	buf, err := utils.MarshalJSON(p)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Params
	if err = utils.UnmarshalJSON(buf, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != p {
		t.Fatalf("expected %+v, got %+v", p, decoded)
	}
}
