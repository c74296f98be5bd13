package codec

// Kind is the closed set of wire field types this protocol core
// supports (spec §3's field type table / §9's "small closed set").
type Kind int

const (
	// KindU8 is a single unsigned byte.
	KindU8 Kind = iota
	// KindU16 is a little-endian uint16.
	KindU16
	// KindU32 is a little-endian uint32.
	KindU32
	// KindBytes is a fixed-length raw byte array.
	KindBytes
	// KindText is a fixed-length byte array, wire-identical to
	// KindBytes but rendered as UTF-8 text in Debug output.
	KindText
	// KindString is the Patch-dialect trailing UTF-16LE string: it
	// consumes the rest of the frame on read and must be the final
	// field of the final string-bearing record.
	KindString
	// KindEnum is a 4-byte field: one discriminant byte plus three
	// zero pad bytes.
	KindEnum
)

// Enum is implemented by 4-byte discriminated field types (e.g.
// AccountStatus). Discriminant encodes the value as its wire byte;
// FromDiscriminant decodes a wire byte back into the value, failing
// with ErrInvalidValue for anything outside the known table.
type Enum interface {
	Discriminant() byte
	FromDiscriminant(b byte) error
}

// Field is one wire-ordered slot of a Record, bound to the concrete
// storage location (a pointer or a slice header) inside that record's
// struct. The schema-walking engine in record.go reads or writes
// through whichever pointer is non-nil for the field's Kind; this is
// the "generic engine that walks the schema" spec §9 calls for,
// implemented without code generation.
type Field struct {
	Name string
	Kind Kind

	U8  *uint8
	U16 *uint16
	U32 *uint32
	// Bytes backs KindBytes/KindText fields: a slice over the record's
	// fixed-size array field. Its length IS the field's wire width.
	Bytes []byte
	// Str backs KindString fields.
	Str *string
	// EnumVal backs KindEnum fields.
	EnumVal Enum
}
