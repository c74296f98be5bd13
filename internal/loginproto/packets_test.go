package loginproto

import (
	"testing"

	"github.com/l1jgo/psocore/internal/codec"
)

func TestLoginResponseStatusByte(t *testing.T) {
	resp := NewLoginResponse(StatusInvalidPassword, [40]byte{})
	frame := codec.Serialize(resp)

	if frame[8] != 2 {
		t.Fatalf("frame[8] = %d, want 2 (InvalidPassword)", frame[8])
	}

	frame[8] = 8
	got := &LoginResponse{}
	if err := codec.Parse(frame, got); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Status != StatusInvalidUser {
		t.Fatalf("status = %v, want InvalidUser", got.Status)
	}
}

func TestLoginResponseRejectsUnknownDiscriminant(t *testing.T) {
	resp := NewLoginResponse(StatusOk, [40]byte{})
	frame := codec.Serialize(resp)
	frame[8] = 200

	err := codec.Parse(frame, &LoginResponse{})
	if err != codec.ErrInvalidValue {
		t.Fatalf("err = %v, want ErrInvalidValue", err)
	}
}

func TestSendKeyAndTeamSettingsLayout(t *testing.T) {
	var key [0x16C]byte
	var joystick [0x38]byte
	key[0] = 0xAB
	joystick[0] = 0xCD

	s := NewSendKeyAndTeamSettings(key, joystick, 123, 456)
	frame := codec.Serialize(s)

	if frame[2] != 0xE2 {
		t.Fatalf("frame[2] = %#x, want 0xE2", frame[2])
	}
	if frame[8+0x114] != 0xAB {
		t.Fatalf("frame[8+0x114] = %#x, want 0xAB", frame[8+0x114])
	}
	if frame[8+0x114+0x16C] != 0xCD {
		t.Fatalf("frame[8+0x114+0x16C] = %#x, want 0xCD", frame[8+0x114+0x16C])
	}
}

func TestLoginWelcomeFlagAlwaysZeroByDefault(t *testing.T) {
	var serverKey, clientKey [48]byte
	w := NewLoginWelcome(serverKey, clientKey)
	frame := codec.Serialize(w)

	if frame[2] != 0x03 || frame[3] != 0x00 {
		t.Fatalf("command bytes = %x %x, want 03 00", frame[2], frame[3])
	}
	if frame[4] != 0 || frame[5] != 0 || frame[6] != 0 || frame[7] != 0 {
		t.Fatalf("flag word = % X, want zero", frame[4:8])
	}
}
