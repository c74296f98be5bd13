package cipher

import "encoding/binary"

const pcStreamLength = 57

// PCCipher is the legacy PSO PC client's 32-bit-word additive-feedback
// keystream generator. It is a straight port of SEGA's client-side
// generator (by way of newserv's reimplementation): the word-shuffle in
// New and the two-pass update in updateStream must be reproduced
// bit-for-bit, wrapping-arithmetic included, or the keystream diverges
// from a real client's after the first few words.
type PCCipher struct {
	stream [pcStreamLength]uint32
	offset uint16
}

// NewPCCipher seeds a keystream generator from a 32-bit session seed.
func NewPCCipher(seed uint32) *PCCipher {
	var stream [pcStreamLength]uint32

	esi := uint32(1)
	ebx := seed
	edi := uint32(0x15)
	stream[56] = ebx
	stream[55] = ebx

	for edi <= 0x46E {
		pos := edi % 55
		ebx -= esi
		edi += 0x15
		stream[pos] = esi
		esi = ebx
		ebx = stream[pos]
	}

	c := &PCCipher{stream: stream, offset: 1}
	for i := 0; i < 5; i++ {
		c.updateStream()
	}
	return c
}

// updateStream runs the two wrapping-subtraction passes that refresh
// the keystream once every 56 words drawn.
func (c *PCCipher) updateStream() {
	for i := 1; i <= 0x18; i++ {
		c.stream[i] -= c.stream[i+0x1F]
	}
	for i := 0x19; i <= 0x37; i++ {
		c.stream[i] -= c.stream[i-0x18]
	}
}

func (c *PCCipher) next() uint32 {
	if int(c.offset) == pcStreamLength {
		c.updateStream()
		c.offset = 1
	}
	v := c.stream[c.offset]
	c.offset++
	return v
}

// Encrypt XORs each little-endian 32-bit word of data with the next
// keystream word. len(data) must be a multiple of 4.
func (c *PCCipher) Encrypt(data []byte) ([]byte, error) {
	if len(data)%4 != 0 {
		return nil, ErrInvalidSize
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += 4 {
		word := binary.LittleEndian.Uint32(data[i:]) ^ c.next()
		binary.LittleEndian.PutUint32(out[i:], word)
	}
	return out, nil
}

// Decrypt is identical to Encrypt: XOR is its own inverse and both
// directions draw from the same deterministic keystream sequence.
func (c *PCCipher) Decrypt(data []byte) ([]byte, error) {
	return c.Encrypt(data)
}

func (c *PCCipher) HeaderSize() int { return 4 }
func (c *PCCipher) BlockSize() int  { return 4 }
