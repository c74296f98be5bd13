package codec

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// utf16LE is the transcoder for the Patch-dialect trailing wide-string
// field. The teacher reaches for golang.org/x/text to transcode its
// wire strings (MS950/Big5 there); this protocol's wire strings are
// UTF-16LE, so the same package's UTF16 codec fills that role here.
var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16LE encodes s as UTF-16LE code units. Callers append any
// terminating NUL themselves before calling Serialize, matching the
// source protocol's Message::new convention.
func encodeUTF16LE(s string) []byte {
	b, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Pure-ASCII fallback, same escape hatch the teacher's
		// packet.Writer.WriteS uses for its own transcoder.
		return []byte(s)
	}
	return b
}

// decodeUTF16LE lossy-decodes raw UTF-16LE bytes, substituting the
// Unicode replacement character for anything that doesn't form a valid
// code unit sequence rather than failing the parse.
func decodeUTF16LE(raw []byte) string {
	dec := encoding.ReplaceUnsupported(utf16LE.NewDecoder())
	b, err := dec.Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(b)
}
