package loginproto

import "testing"

func TestUserSettingsDefaultSize(t *testing.T) {
	bytes := NewDefaultUserSettings().AsBytes()
	if len(bytes) != userSettingsSize {
		t.Fatalf("len(bytes) = %#x, want %#x", len(bytes), userSettingsSize)
	}
	if bytes[3168] != 0x01 {
		t.Fatalf("bytes[3168] = %#x, want 0x01", bytes[3168])
	}
	if bytes[3169] != 0x00 {
		t.Fatalf("bytes[3169] = %#x, want 0x00", bytes[3169])
	}
}

// TestUserSettingsSymbolChatsTail guards against truncated transcription
// of the 0x4E0-byte symbol-chat table: a dropped tail would silently
// zero-fill under Go's array-literal semantics instead of failing to
// compile, so the last bytes of the table are checked explicitly.
func TestUserSettingsSymbolChatsTail(t *testing.T) {
	bytes := NewDefaultUserSettings().AsBytes()
	symbolChatsEnd := 3168 + 0x4E0

	want := [12]byte{0xff, 0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00}
	got := bytes[symbolChatsEnd-12 : symbolChatsEnd]
	for i, b := range want {
		if got[i] != b {
			t.Fatalf("bytes[%d] = %#x, want %#x", symbolChatsEnd-12+i, got[i], b)
		}
	}

	var sum int
	for _, b := range bytes[3168:symbolChatsEnd] {
		sum += int(b)
	}
	if sum != 0xc9ea {
		t.Fatalf("symbol chats checksum = %#x, want %#x", sum, 0xc9ea)
	}
}

func TestUserSettingsRoundTrip(t *testing.T) {
	u := NewDefaultUserSettings()
	u.BlockedUsers[0] = 42
	u.OptionFlags = 0xCAFEBABE
	u.TeamName[0] = 'A'

	bytes := u.AsBytes()
	got := UserSettingsFromBytes(bytes)

	if *got != *u {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, u)
	}
}
