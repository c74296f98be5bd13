package commands

import (
	"fmt"
	"sort"

	"github.com/l1jgo/psocore/internal/codec"
	"github.com/l1jgo/psocore/internal/loginproto"
	"github.com/l1jgo/psocore/internal/patchproto"
)

// recordFactory returns a freshly zeroed record ready to receive
// codec.Parse. The registry is keyed by a human-typed name rather than
// by wire command code because several Patch/Login commands are reused
// for both directions of an exchange (e.g. 0x02 is both PatchWelcome
// and PatchWelcomeReply) — a dump operator names the side they captured.
var recordFactory = map[string]func() codec.Record{
	"patch.welcome":            func() codec.Record { return &patchproto.PatchWelcome{} },
	"patch.welcome-reply":      func() codec.Record { return &patchproto.PatchWelcomeReply{} },
	"patch.request-login":      func() codec.Record { return &patchproto.RequestLogin{} },
	"patch.login-reply":        func() codec.Record { return &patchproto.LoginReply{} },
	"patch.start-file":         func() codec.Record { return &patchproto.StartFileSend{} },
	"patch.end-file":           func() codec.Record { return &patchproto.EndFileSend{} },
	"patch.chdir":              func() codec.Record { return &patchproto.ChangeDirectory{} },
	"patch.updir":              func() codec.Record { return &patchproto.UpOneDirectory{} },
	"patch.start-list":         func() codec.Record { return &patchproto.PatchStartList{} },
	"patch.file-info":          func() codec.Record { return &patchproto.FileInfo{} },
	"patch.end-list":           func() codec.Record { return &patchproto.PatchEndList{} },
	"patch.file-info-reply":    func() codec.Record { return &patchproto.FileInfoReply{} },
	"patch.file-info-list-end": func() codec.Record { return &patchproto.FileInfoListEnd{} },
	"patch.files-to-patch":     func() codec.Record { return &patchproto.FilesToPatchMetadata{} },
	"patch.finalize":           func() codec.Record { return &patchproto.FinalizePatching{} },
	"patch.message":            func() codec.Record { return &patchproto.Message{} },
	"patch.redirect":           func() codec.Record { return &patchproto.RedirectClient{} },

	"login.welcome":           func() codec.Record { return &loginproto.LoginWelcome{} },
	"login.redirect":          func() codec.Record { return &loginproto.RedirectClient{} },
	"login.login":             func() codec.Record { return &loginproto.Login{} },
	"login.request-settings":  func() codec.Record { return &loginproto.RequestSettings{} },
	"login.key-team-settings": func() codec.Record { return &loginproto.SendKeyAndTeamSettings{} },
	"login.response":          func() codec.Record { return &loginproto.LoginResponse{} },
}

func lookupRecord(name string) (codec.Record, error) {
	factory, ok := recordFactory[name]
	if !ok {
		return nil, fmt.Errorf("unknown record type %q (see psopacketctl dump --list)", name)
	}
	return factory(), nil
}

func recordTypeNames() []string {
	names := make([]string, 0, len(recordFactory))
	for name := range recordFactory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
