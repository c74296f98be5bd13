package codec

import (
	"bytes"
	"testing"
)

type fixedPatchPacket struct {
	A uint32
	B uint16
	C [4]byte
}

func (p *fixedPatchPacket) Command() uint16    { return 0x42 }
func (p *fixedPatchPacket) Dialect() Dialect   { return Patch }
func (p *fixedPatchPacket) Fields() []Field {
	return []Field{
		{Name: "a", Kind: KindU32, U32: &p.A},
		{Name: "b", Kind: KindU16, U16: &p.B},
		{Name: "c", Kind: KindBytes, Bytes: p.C[:]},
	}
}

func TestPatchRoundTrip(t *testing.T) {
	p := &fixedPatchPacket{A: 0xDEADBEEF, B: 0x1234, C: [4]byte{1, 2, 3, 4}}
	frame := Serialize(p)

	got := &fixedPatchPacket{}
	if err := Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *got != *p {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}

	if !bytes.Equal(Serialize(got), frame) {
		t.Fatalf("serialize(parse(frame)) != frame")
	}
}

func TestPatchWrongCommand(t *testing.T) {
	p := &fixedPatchPacket{}
	frame := Serialize(p)
	frame[2] = 0x99 // corrupt the command word

	err := Parse(frame, &fixedPatchPacket{})
	if err == nil {
		t.Fatal("expected an error for mismatched command")
	}
}

func TestPatchWrongSize(t *testing.T) {
	p := &fixedPatchPacket{}
	frame := Serialize(p)
	truncated := frame[:len(frame)-4]

	err := Parse(truncated, &fixedPatchPacket{})
	if err == nil {
		t.Fatal("expected an error for a truncated frame")
	}
}

type flaggedLoginPacket struct {
	Flag uint32
	X    uint32
}

func (p *flaggedLoginPacket) Command() uint16  { return 0x77 }
func (p *flaggedLoginPacket) Dialect() Dialect { return Login }
func (p *flaggedLoginPacket) FlagPtr() *uint32 { return &p.Flag }
func (p *flaggedLoginPacket) Fields() []Field {
	return []Field{{Name: "x", Kind: KindU32, U32: &p.X}}
}

func TestLoginFlagAlwaysRoundTrips(t *testing.T) {
	p := &flaggedLoginPacket{Flag: 99, X: 7}
	frame := Serialize(p)

	got := &flaggedLoginPacket{}
	if err := Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Flag != 99 || got.X != 7 {
		t.Fatalf("got %+v, want Flag=99 X=7", got)
	}
}

type unflaggedLoginPacket struct {
	X uint32
}

func (p *unflaggedLoginPacket) Command() uint16  { return 0x78 }
func (p *unflaggedLoginPacket) Dialect() Dialect { return Login }
func (p *unflaggedLoginPacket) Fields() []Field {
	return []Field{{Name: "x", Kind: KindU32, U32: &p.X}}
}

// TestLoginFlagSlotAlwaysConsumed checks the §9 resolution: records that
// don't expose the flag still have the 4-byte slot written as zero and
// skipped (not folded into) field data on parse.
func TestLoginFlagSlotAlwaysConsumed(t *testing.T) {
	p := &unflaggedLoginPacket{X: 0xAABBCCDD}
	frame := Serialize(p)

	if len(frame) != 4+4+4 {
		t.Fatalf("frame length = %d, want 12", len(frame))
	}

	got := &unflaggedLoginPacket{}
	if err := Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.X != p.X {
		t.Fatalf("got X=%x, want %x", got.X, p.X)
	}
}

type stringPatchPacket struct {
	Msg string
}

func (p *stringPatchPacket) Command() uint16  { return 0x13 }
func (p *stringPatchPacket) Dialect() Dialect { return Patch }
func (p *stringPatchPacket) Fields() []Field {
	return []Field{{Name: "msg", Kind: KindString, Str: &p.Msg}}
}

func TestStringFieldConsumesRemainder(t *testing.T) {
	p := &stringPatchPacket{Msg: "hi\x00"}
	frame := Serialize(p)

	got := &stringPatchPacket{}
	if err := Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Msg != p.Msg {
		t.Fatalf("got %q, want %q", got.Msg, p.Msg)
	}
}
