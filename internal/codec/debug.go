package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Debug renders rec as a human-readable dump: one line per field, in
// wire order, with KindText fields shown as UTF-8 text when they
// decode cleanly and as raw bytes otherwise.
func Debug(rec Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "packet %T {\n", rec)
	if fp := flagPtr(rec); fp != nil {
		fmt.Fprintf(&sb, "    flag: %d\n", *fp)
	}
	for _, f := range rec.Fields() {
		fmt.Fprintf(&sb, "    %s: %s\n", f.Name, debugValue(f))
	}
	sb.WriteString("}")
	return sb.String()
}

func debugValue(f Field) string {
	switch f.Kind {
	case KindU8:
		return strconv.Itoa(int(*f.U8))
	case KindU16:
		return strconv.Itoa(int(*f.U16))
	case KindU32:
		return strconv.Itoa(int(*f.U32))
	case KindBytes:
		return fmt.Sprintf("%v", f.Bytes)
	case KindText:
		if utf8.Valid(f.Bytes) {
			return strconv.Quote(string(f.Bytes))
		}
		return fmt.Sprintf("%v", f.Bytes)
	case KindString:
		return strconv.Quote(*f.Str)
	case KindEnum:
		return fmt.Sprintf("%v", f.EnumVal)
	default:
		return "<unknown>"
	}
}
