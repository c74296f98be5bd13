package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fixed-arity parse failures. Use errors.Is to
// test for a specific kind; the two parameterized kinds below carry
// positional detail via fmt.Errorf wrapping instead of dedicated types.
var (
	ErrNotEnoughBytes           = errors.New("codec: not enough bytes")
	ErrWrongPacketCommand       = errors.New("codec: wrong packet command")
	ErrWrongPacketForServerType = errors.New("codec: wrong packet for server type")
	ErrWrongPacketSize          = errors.New("codec: wrong packet size")
	ErrDataStructNotLargeEnough = errors.New("codec: data struct not large enough")
	ErrInvalidValue             = errors.New("codec: invalid enum value")
	ErrInvalidSize              = errors.New("codec: invalid cipher input size")
)

// wrongPacketSizeError reports a Patch-dialect length mismatch: the
// frame's declared length header disagrees with the buffer actually
// read off the wire.
func wrongPacketSizeError(declared uint16, actual int) error {
	return fmt.Errorf("%w: declared %d, actual %d", ErrWrongPacketSize, declared, actual)
}

// dataStructNotLargeEnoughError reports that parsing a Patch-dialect
// record consumed fewer (or more) bytes than the frame contained.
func dataStructNotLargeEnoughError(position int, actual int) error {
	return fmt.Errorf("%w: cursor at %d, frame is %d bytes", ErrDataStructNotLargeEnough, position, actual)
}
