package codec

// Dialect selects which of the two wire framings (spec §3) a Record
// uses.
type Dialect int

const (
	// Patch is the PatchServer framing: [len:u16][cmd:u16][body],
	// body zero-padded so the frame length is a multiple of 4.
	Patch Dialect = iota
	// Login is the Blue Burst login/game framing:
	// [len:u16][cmd:u16][flag:u32][body], unpadded.
	Login
)

// Record is implemented by every packet type in the catalog. Command
// and Dialect are fixed per Go type; Fields returns the wire-ordered
// field list bound to this particular instance's storage.
type Record interface {
	Command() uint16
	Dialect() Dialect
	Fields() []Field
}

// FlagRecord is implemented by Login-dialect records that expose their
// flag word as a normal field. The §9 open question resolution means
// the engine always reads/writes the 4-byte flag slot for Login
// dialect regardless of whether a record implements this interface;
// records that don't just have the slot's value discarded on parse and
// written as 0 on serialize.
type FlagRecord interface {
	FlagPtr() *uint32
}

func flagPtr(rec Record) *uint32 {
	if fr, ok := rec.(FlagRecord); ok {
		return fr.FlagPtr()
	}
	return nil
}

// Serialize encodes rec per its Dialect, producing a complete frame
// including the [len][cmd] header (and, for Login, the flag word).
func Serialize(rec Record) []byte {
	body := NewBuffer()
	for _, f := range rec.Fields() {
		writeField(body, f)
	}

	switch rec.Dialect() {
	case Patch:
		body.PadTo4()
		out := NewBuffer()
		out.WriteU16(uint16(body.Len() + 4))
		out.WriteU16(rec.Command())
		out.WriteBytes(body.Bytes())
		return out.Bytes()
	case Login:
		out := NewBuffer()
		out.WriteU16(uint16(body.Len() + 8))
		out.WriteU16(rec.Command())
		if fp := flagPtr(rec); fp != nil {
			out.WriteU32(*fp)
		} else {
			out.WriteU32(0)
		}
		out.WriteBytes(body.Bytes())
		return out.Bytes()
	default:
		panic("codec: unknown dialect")
	}
}

// Parse decodes data into rec, which must already carry storage for
// every field (rec.Fields() is consulted both to know the wire layout
// and to learn where to write decoded values).
func Parse(data []byte, rec Record) error {
	switch rec.Dialect() {
	case Patch:
		return parsePatch(data, rec)
	case Login:
		return parseLogin(data, rec)
	default:
		panic("codec: unknown dialect")
	}
}

func parsePatch(data []byte, rec Record) error {
	cur := NewCursor(data)

	declaredLen, err := cur.ReadU16()
	if err != nil {
		return err
	}
	cmd, err := cur.ReadU16()
	if err != nil {
		return err
	}
	if cmd != rec.Command() {
		return ErrWrongPacketCommand
	}
	if int(declaredLen) != len(data) {
		return wrongPacketSizeError(declaredLen, len(data))
	}

	for _, f := range rec.Fields() {
		if err := readField(cur, f); err != nil {
			return err
		}
	}

	// Serialize zero-pads the frame to a multiple of 4; the fields end
	// before that padding, so step over it before the size check.
	if pad := len(data) - cur.Pos(); pad > 0 && pad < 4 && len(data)%4 == 0 {
		cur.ReadRemaining()
	}
	if cur.Pos() != len(data) {
		return dataStructNotLargeEnoughError(cur.Pos(), len(data))
	}
	return nil
}

func parseLogin(data []byte, rec Record) error {
	cur := NewCursor(data)

	if _, err := cur.ReadU16(); err != nil { // length, unchecked for Login dialect
		return err
	}
	cmd, err := cur.ReadU16()
	if err != nil {
		return err
	}
	if cmd != rec.Command() {
		return ErrWrongPacketCommand
	}

	flag, err := cur.ReadU32()
	if err != nil {
		return err
	}
	if fp := flagPtr(rec); fp != nil {
		*fp = flag
	}

	for _, f := range rec.Fields() {
		if err := readField(cur, f); err != nil {
			return err
		}
	}
	return nil
}

func writeField(w *Buffer, f Field) {
	switch f.Kind {
	case KindU8:
		w.WriteU8(*f.U8)
	case KindU16:
		w.WriteU16(*f.U16)
	case KindU32:
		w.WriteU32(*f.U32)
	case KindBytes, KindText:
		w.WriteBytes(f.Bytes)
	case KindString:
		w.WriteBytes(encodeUTF16LE(*f.Str))
	case KindEnum:
		w.WriteU8(f.EnumVal.Discriminant())
		w.WriteU8(0)
		w.WriteU8(0)
		w.WriteU8(0)
	default:
		panic("codec: unknown field kind")
	}
}

func readField(cur *Cursor, f Field) error {
	switch f.Kind {
	case KindU8:
		v, err := cur.ReadU8()
		if err != nil {
			return err
		}
		*f.U8 = v
	case KindU16:
		v, err := cur.ReadU16()
		if err != nil {
			return err
		}
		*f.U16 = v
	case KindU32:
		v, err := cur.ReadU32()
		if err != nil {
			return err
		}
		*f.U32 = v
	case KindBytes, KindText:
		if err := cur.ReadExact(f.Bytes); err != nil {
			return err
		}
	case KindString:
		*f.Str = decodeUTF16LE(cur.ReadRemaining())
	case KindEnum:
		var raw [4]byte
		if err := cur.ReadExact(raw[:]); err != nil {
			return err
		}
		if err := f.EnumVal.FromDiscriminant(raw[0]); err != nil {
			return err
		}
	default:
		panic("codec: unknown field kind")
	}
	return nil
}
