// Package patchproto is the concrete packet record catalog for the
// PatchServer exchange (spec §4.F): file-list negotiation and chunked
// file transfer framed with the Patch dialect.
package patchproto

import "github.com/l1jgo/psocore/internal/codec"

// patchWelcomeCopyright is the literal banner text PatchWelcome
// carries, left-aligned and NUL-padded to the field's 44 bytes.
const patchWelcomeCopyright = "Patch Server. Copyright SonicTeam, LTD. 2001"

// PatchWelcome is the server's first, clear-text frame: it carries the
// PC-cipher seeds both sides will use once keys are agreed.
type PatchWelcome struct {
	Copyright [44]byte
	Padding   [20]byte
	ServerKey uint32
	ClientKey uint32
}

// NewPatchWelcome builds a PatchWelcome with the fixed copyright banner
// and the given session cipher seeds.
func NewPatchWelcome(serverKey, clientKey uint32) *PatchWelcome {
	p := &PatchWelcome{ServerKey: serverKey, ClientKey: clientKey}
	copy(p.Copyright[:], patchWelcomeCopyright)
	return p
}

func (p *PatchWelcome) Command() uint16    { return 0x02 }
func (p *PatchWelcome) Dialect() codec.Dialect { return codec.Patch }
func (p *PatchWelcome) Fields() []codec.Field {
	return []codec.Field{
		{Name: "copyright", Kind: codec.KindText, Bytes: p.Copyright[:]},
		{Name: "padding", Kind: codec.KindBytes, Bytes: p.Padding[:]},
		{Name: "server_key", Kind: codec.KindU32, U32: &p.ServerKey},
		{Name: "client_key", Kind: codec.KindU32, U32: &p.ClientKey},
	}
}

// PatchWelcomeReply is the client's empty acknowledgement.
type PatchWelcomeReply struct{}

func (PatchWelcomeReply) Command() uint16        { return 0x02 }
func (PatchWelcomeReply) Dialect() codec.Dialect { return codec.Patch }
func (PatchWelcomeReply) Fields() []codec.Field  { return nil }

// RequestLogin is the server's empty prompt for patch credentials.
type RequestLogin struct{}

func (RequestLogin) Command() uint16        { return 0x04 }
func (RequestLogin) Dialect() codec.Dialect { return codec.Patch }
func (RequestLogin) Fields() []codec.Field  { return nil }

// LoginReply carries the client's patch-login credentials. The two
// unused spans are reserved padding in the original client protocol.
type LoginReply struct {
	Unused   [12]byte
	Username [16]byte
	Password [16]byte
	Unused2  [64]byte
}

func (p *LoginReply) Command() uint16        { return 0x04 }
func (p *LoginReply) Dialect() codec.Dialect { return codec.Patch }
func (p *LoginReply) Fields() []codec.Field {
	return []codec.Field{
		{Name: "unused", Kind: codec.KindBytes, Bytes: p.Unused[:]},
		{Name: "username", Kind: codec.KindText, Bytes: p.Username[:]},
		{Name: "password", Kind: codec.KindText, Bytes: p.Password[:]},
		{Name: "unused2", Kind: codec.KindBytes, Bytes: p.Unused2[:]},
	}
}

// StartFileSend announces an upcoming FileSend transfer.
type StartFileSend struct {
	ID       uint32
	Size     uint32
	Filename [48]byte
}

// NewStartFileSend truncates filename to the 48-byte field, matching
// the client's fixed-width path buffer.
func NewStartFileSend(filename string, size, id uint32) *StartFileSend {
	s := &StartFileSend{ID: id, Size: size}
	copy(s.Filename[:], filename)
	return s
}

func (p *StartFileSend) Command() uint16        { return 0x06 }
func (p *StartFileSend) Dialect() codec.Dialect { return codec.Patch }
func (p *StartFileSend) Fields() []codec.Field {
	return []codec.Field{
		{Name: "id", Kind: codec.KindU32, U32: &p.ID},
		{Name: "size", Kind: codec.KindU32, U32: &p.Size},
		{Name: "filename", Kind: codec.KindText, Bytes: p.Filename[:]},
	}
}

// FileSend is a chunk of file content. Its body size varies with
// ChunkSize, so it can't describe itself through the fixed-field
// Fields() schema and implements serialization by hand instead, the
// same way the source protocol's FileSend predates its own packet
// macro (original_source/src/packet/patch.rs).
type FileSend struct {
	ChunkNum  uint32
	Checksum  uint32
	ChunkSize uint32
	Buffer    []byte
}

// FileSendCommand is FileSend's fixed opcode, exposed for callers that need it
// without going through the generic Record interface (FileSend is
// serialize-only: the server never parses one from the wire).
const FileSendCommand = 0x07

// Serialize writes FileSend's frame: header, three u32 fields, then
// ChunkSize bytes of Buffer, zero-padded to a 4-byte boundary.
func (p *FileSend) Serialize() []byte {
	body := codec.NewBuffer()
	body.WriteU32(p.ChunkNum)
	body.WriteU32(p.Checksum)
	body.WriteU32(p.ChunkSize)
	body.WriteBytes(p.Buffer[:p.ChunkSize])
	body.PadTo4()

	out := codec.NewBuffer()
	out.WriteU16(uint16(body.Len() + 4))
	out.WriteU16(FileSendCommand)
	out.WriteBytes(body.Bytes())
	return out.Bytes()
}

// EndFileSend closes a file transfer. Padding is an unused reserved
// word carried over from the client's packet struct.
type EndFileSend struct {
	Padding uint32
}

func NewEndFileSend() *EndFileSend { return &EndFileSend{} }

func (p *EndFileSend) Command() uint16        { return 0x08 }
func (p *EndFileSend) Dialect() codec.Dialect { return codec.Patch }
func (p *EndFileSend) Fields() []codec.Field {
	return []codec.Field{{Name: "padding", Kind: codec.KindU32, U32: &p.Padding}}
}

// ChangeDirectory tells the client to descend into dirname for
// subsequent file operations.
type ChangeDirectory struct {
	Dirname [64]byte
}

func NewChangeDirectory(dirname string) *ChangeDirectory {
	d := &ChangeDirectory{}
	copy(d.Dirname[:], dirname)
	return d
}

func (p *ChangeDirectory) Command() uint16        { return 0x09 }
func (p *ChangeDirectory) Dialect() codec.Dialect { return codec.Patch }
func (p *ChangeDirectory) Fields() []codec.Field {
	return []codec.Field{{Name: "dirname", Kind: codec.KindText, Bytes: p.Dirname[:]}}
}

// UpOneDirectory tells the client to step back up one directory level.
type UpOneDirectory struct{}

func (UpOneDirectory) Command() uint16        { return 0x0A }
func (UpOneDirectory) Dialect() codec.Dialect { return codec.Patch }
func (UpOneDirectory) Fields() []codec.Field  { return nil }

// PatchStartList begins the file-info exchange.
type PatchStartList struct{}

func (PatchStartList) Command() uint16        { return 0x0B }
func (PatchStartList) Dialect() codec.Dialect { return codec.Patch }
func (PatchStartList) Fields() []codec.Field  { return nil }

// FileInfo asks the client to checksum a file in the current directory.
type FileInfo struct {
	ID       uint32
	Filename [32]byte
}

func NewFileInfo(filename string, id uint32) *FileInfo {
	f := &FileInfo{ID: id}
	copy(f.Filename[:], filename)
	return f
}

func (p *FileInfo) Command() uint16        { return 0x0C }
func (p *FileInfo) Dialect() codec.Dialect { return codec.Patch }
func (p *FileInfo) Fields() []codec.Field {
	return []codec.Field{
		{Name: "id", Kind: codec.KindU32, U32: &p.ID},
		{Name: "filename", Kind: codec.KindText, Bytes: p.Filename[:]},
	}
}

// PatchEndList ends the file-info exchange for the current directory.
type PatchEndList struct{}

func (PatchEndList) Command() uint16        { return 0x0D }
func (PatchEndList) Dialect() codec.Dialect { return codec.Patch }
func (PatchEndList) Fields() []codec.Field  { return nil }

// FileInfoReply is the client's checksum/size answer for one FileInfo.
type FileInfoReply struct {
	ID       uint32
	Checksum uint32
	Size     uint32
}

func (p *FileInfoReply) Command() uint16        { return 0x0F }
func (p *FileInfoReply) Dialect() codec.Dialect { return codec.Patch }
func (p *FileInfoReply) Fields() []codec.Field {
	return []codec.Field{
		{Name: "id", Kind: codec.KindU32, U32: &p.ID},
		{Name: "checksum", Kind: codec.KindU32, U32: &p.Checksum},
		{Name: "size", Kind: codec.KindU32, U32: &p.Size},
	}
}

// FileInfoListEnd closes the entire file-info phase.
type FileInfoListEnd struct{}

func (FileInfoListEnd) Command() uint16        { return 0x10 }
func (FileInfoListEnd) Dialect() codec.Dialect { return codec.Patch }
func (FileInfoListEnd) Fields() []codec.Field  { return nil }

// FilesToPatchMetadata summarizes the outstanding patch set before
// transfer begins.
type FilesToPatchMetadata struct {
	DataSize  uint32
	FileCount uint32
}

func NewFilesToPatchMetadata(dataSize, fileCount uint32) *FilesToPatchMetadata {
	return &FilesToPatchMetadata{DataSize: dataSize, FileCount: fileCount}
}

func (p *FilesToPatchMetadata) Command() uint16        { return 0x11 }
func (p *FilesToPatchMetadata) Dialect() codec.Dialect { return codec.Patch }
func (p *FilesToPatchMetadata) Fields() []codec.Field {
	return []codec.Field{
		{Name: "data_size", Kind: codec.KindU32, U32: &p.DataSize},
		{Name: "file_count", Kind: codec.KindU32, U32: &p.FileCount},
	}
}

// FinalizePatching tells the client it's fully patched and may proceed.
type FinalizePatching struct{}

func (FinalizePatching) Command() uint16        { return 0x12 }
func (FinalizePatching) Dialect() codec.Dialect { return codec.Patch }
func (FinalizePatching) Fields() []codec.Field  { return nil }

// Message is a trailing UTF-16LE text frame — a login-failure reason, a
// MOTD, and similar free text. Its Msg field must be the record's only
// and final field: the schema engine consumes the rest of the frame
// when it hits a KindString field.
type Message struct {
	Msg string
}

// NewMessage appends the terminating NUL the client expects, matching
// Message::new in the source protocol.
func NewMessage(msg string) *Message {
	return &Message{Msg: msg + "\x00"}
}

func (p *Message) Command() uint16        { return 0x13 }
func (p *Message) Dialect() codec.Dialect { return codec.Patch }
func (p *Message) Fields() []codec.Field {
	return []codec.Field{{Name: "msg", Kind: codec.KindString, Str: &p.Msg}}
}

// RedirectClient sends the client to a different patch server.
type RedirectClient struct {
	IP      uint32
	Port    uint16
	Padding uint16
}

func NewRedirectClient(ip uint32, port uint16) *RedirectClient {
	return &RedirectClient{IP: ip, Port: port}
}

func (p *RedirectClient) Command() uint16        { return 0x14 }
func (p *RedirectClient) Dialect() codec.Dialect { return codec.Patch }
func (p *RedirectClient) Fields() []codec.Field {
	return []codec.Field{
		{Name: "ip", Kind: codec.KindU32, U32: &p.IP},
		{Name: "port", Kind: codec.KindU16, U16: &p.Port},
		{Name: "padding", Kind: codec.KindU16, U16: &p.Padding},
	}
}
