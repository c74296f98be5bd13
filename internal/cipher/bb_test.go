package cipher

import (
	"bytes"
	"math/rand"
	"testing"
)

func randomPSTables(rng *rand.Rand) ([bbPArraySize]uint32, [bbSBoxCount][bbSBoxSize]uint32) {
	var p [bbPArraySize]uint32
	var s [bbSBoxCount][bbSBoxSize]uint32
	for i := range p {
		p[i] = rng.Uint32()
	}
	for i := range s {
		for j := range s[i] {
			s[i][j] = rng.Uint32()
		}
	}
	return p, s
}

// TestBBCipherRoundTrip mirrors the source protocol's own cipher test:
// two independently constructed ciphers sharing a seed and P/S tables
// must decrypt what the other encrypts, for many random even-word
// buffers.
func TestBBCipherRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var seed [bbSeedSize]byte
	rng.Read(seed[:])
	p, s := randomPSTables(rng)

	for i := 0; i < 50; i++ {
		a := NewBBCipher(seed, p, s)
		b := NewBBCipher(seed, p, s)

		wordCount := 2 + 2*rng.Intn(8)
		buf := make([]byte, wordCount*4)
		rng.Read(buf)
		original := append([]byte(nil), buf...)

		ciphertext, err := a.Encrypt(buf)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		plaintext, err := b.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		if !bytes.Equal(plaintext[:len(original)], original) {
			t.Fatalf("round %d: round trip mismatch", i)
		}
	}
}

func TestBBCipherEncryptPadsOddWordCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var seed [bbSeedSize]byte
	rng.Read(seed[:])
	p, s := randomPSTables(rng)

	c := NewBBCipher(seed, p, s)
	out, err := c.Encrypt([]byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(out) != 8 {
		t.Fatalf("len(out) = %d, want 8 (one word padded to a full block)", len(out))
	}
}

func TestBBCipherDecryptRejectsUnalignedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var seed [bbSeedSize]byte
	p, s := randomPSTables(rng)
	c := NewBBCipher(seed, p, s)

	if _, err := c.Decrypt([]byte{1, 2, 3, 4}); err == nil {
		t.Fatal("expected an error for input not a multiple of 8 bytes")
	}
}
