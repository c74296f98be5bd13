package codec

import "encoding/binary"

// Cursor reads little-endian primitives off a fixed byte buffer. Every
// read advances the cursor by exactly the field width; a short read
// fails with ErrNotEnoughBytes and leaves the cursor at the end of the
// buffer, mirroring how a single malformed frame should abort the rest
// of that record's parse rather than silently returning zero values.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor wraps data for sequential reading from offset 0.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.off }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.off }

func (c *Cursor) take(n int) ([]byte, error) {
	if c.off+n > len(c.data) {
		c.off = len(c.data)
		return nil, ErrNotEnoughBytes
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadExact reads exactly len(dst) bytes into dst.
func (c *Cursor) ReadExact(dst []byte) error {
	b, err := c.take(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadRemaining returns (and consumes) every byte left in the buffer.
func (c *Cursor) ReadRemaining() []byte {
	b := c.data[c.off:]
	c.off = len(c.data)
	return b
}

// Buffer is an extensible little-endian byte writer.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer with a small pre-allocation, the
// way packet bodies in this protocol rarely exceed a few hundred bytes.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 64)}
}

func (b *Buffer) WriteU8(v uint8) {
	b.buf = append(b.buf, v)
}

func (b *Buffer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *Buffer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *Buffer) WriteBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

// PadTo4 appends zero bytes until the buffer length is a multiple of 4.
func (b *Buffer) PadTo4() {
	for len(b.buf)%4 != 0 {
		b.buf = append(b.buf, 0)
	}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Bytes returns the accumulated buffer.
func (b *Buffer) Bytes() []byte { return b.buf }
