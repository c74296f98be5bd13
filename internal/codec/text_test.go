package codec

import "testing"

func TestUTF16LERoundTrip(t *testing.T) {
	cases := []string{"", "hello this is an arbitrary message?!!\x00", "héllo\x00"}
	for _, s := range cases {
		enc := encodeUTF16LE(s)
		got := decodeUTF16LE(enc)
		if got != s {
			t.Fatalf("round trip mismatch: got %q, want %q", got, s)
		}
	}
}

func TestEncodeUTF16LEKnownBytes(t *testing.T) {
	got := encodeUTF16LE("hello")
	want := []byte{'h', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d = %02x, want %02x", i, got[i], want[i])
		}
	}
}
