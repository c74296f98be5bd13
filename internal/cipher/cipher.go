// Package cipher implements the two transport ciphers used by the
// PSOBB client/server handshake. Neither is cryptographically hardened
// — both exist purely to interoperate with a fixed, legacy client
// binary, down to its off-by-one key-schedule quirks.
package cipher

import "errors"

// Cipher is the uniform contract every transport cipher satisfies.
// Encrypt/Decrypt operate in place conceptually but return the result
// slice for chaining; callers own the input buffer before and after
// the call. A cipher instance is mutable keystream state owned by one
// direction of one connection and must not be shared across goroutines.
type Cipher interface {
	Encrypt(data []byte) ([]byte, error)
	Decrypt(data []byte) ([]byte, error)
	// HeaderSize is how many (possibly still-ciphered) leading bytes a
	// caller must decrypt to learn a frame's length.
	HeaderSize() int
	// BlockSize is the cipher's minimum input granularity. Defaults to
	// HeaderSize when the cipher has no stricter requirement.
	BlockSize() int
}

// NullCipher is the identity cipher, used before key agreement or for
// connections that never negotiate encryption.
type NullCipher struct{}

func (NullCipher) Encrypt(data []byte) ([]byte, error) { return data, nil }
func (NullCipher) Decrypt(data []byte) ([]byte, error) { return data, nil }
func (NullCipher) HeaderSize() int                     { return 4 }
func (NullCipher) BlockSize() int                      { return 4 }

// ErrInvalidSize is returned when a cipher's input isn't a multiple of
// its required block/word granularity.
var ErrInvalidSize = errors.New("cipher: invalid input size")
