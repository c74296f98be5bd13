package patchproto

import (
	"bytes"
	"testing"

	"github.com/l1jgo/psocore/internal/codec"
)

func TestPatchWelcomeSerialize(t *testing.T) {
	p := NewPatchWelcome(123, 456)
	frame := codec.Serialize(p)

	if len(frame) != 0x4C {
		t.Fatalf("frame length = %#x, want 0x4C", len(frame))
	}
	wantPrefix := []byte{0x4C, 0x00, 0x02, 0x00, 0x50, 0x61, 0x74, 0x63, 0x68, 0x20, 0x53, 0x65}
	if !bytes.Equal(frame[:len(wantPrefix)], wantPrefix) {
		t.Fatalf("prefix = % X, want % X", frame[:len(wantPrefix)], wantPrefix)
	}
	wantKeys := []byte{0x7B, 0x00, 0x00, 0x00, 0xC8, 0x01, 0x00, 0x00}
	if !bytes.Equal(frame[0x44:0x4C], wantKeys) {
		t.Fatalf("keys at 0x44 = % X, want % X", frame[0x44:0x4C], wantKeys)
	}
}

func TestPatchWelcomeParseAfterSplice(t *testing.T) {
	p := NewPatchWelcome(123, 456)
	frame := codec.Serialize(p)

	copy(frame[28:37], "Elsewhere")

	got := &PatchWelcome{}
	if err := codec.Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &PatchWelcome{ServerKey: 123, ClientKey: 456}
	copy(want.Copyright[:], "Patch Server. Copyright Elsewhere, LTD. 2001")
	if *got != *want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMessageSerialize(t *testing.T) {
	m := NewMessage("hello this is an arbitrary message?!!")
	frame := codec.Serialize(m)

	if len(frame) != 0x50 {
		t.Fatalf("frame length = %#x, want 0x50", len(frame))
	}
	wantPrefix := []byte{'h', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0, ' ', 0}
	if !bytes.Equal(frame[4:4+len(wantPrefix)], wantPrefix) {
		t.Fatalf("body prefix = % X, want % X", frame[4:4+len(wantPrefix)], wantPrefix)
	}
	wantSuffix := []byte{'!', 0, 0, 0}
	tail := frame[4+len("hello this is an arbitrary message?!!\x00")*2-len(wantSuffix):]
	if !bytes.Equal(tail[:len(wantSuffix)], wantSuffix) {
		t.Fatalf("body suffix = % X, want % X", tail[:len(wantSuffix)], wantSuffix)
	}
}

func TestFileSendSerialize(t *testing.T) {
	fs := &FileSend{ChunkNum: 1, Checksum: 0xABCD, ChunkSize: 5, Buffer: []byte{1, 2, 3, 4, 5}}
	frame := fs.Serialize()

	if frame[2] != 0x07 || frame[3] != 0x00 {
		t.Fatalf("command bytes = %x %x, want 07 00", frame[2], frame[3])
	}
	if len(frame)%4 != 0 {
		t.Fatalf("frame length %d is not a multiple of 4", len(frame))
	}
}

func TestFileInfoRoundTrip(t *testing.T) {
	fi := NewFileInfo("data/map01.dat", 7)
	frame := codec.Serialize(fi)

	got := &FileInfo{}
	if err := codec.Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("ID = %d, want 7", got.ID)
	}
}
