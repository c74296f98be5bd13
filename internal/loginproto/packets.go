// Package loginproto is the concrete packet record catalog for the
// login/game server exchange (spec §4.G): framed with the Login
// dialect, every record always consumes the 4-byte flag slot whether
// or not it exposes it as a field.
package loginproto

import "github.com/l1jgo/psocore/internal/codec"

const loginWelcomeCopyright = "Phantasy Star Online Blue Burst Game Server. Copyright 1999-2004 SONICTEAM."

// LoginWelcome is the server's first, clear-text frame: it carries the
// BB-cipher seeds both sides will use once keys are agreed.
type LoginWelcome struct {
	Flag      uint32
	Copyright [0x60]byte
	ServerKey [48]byte
	ClientKey [48]byte
}

// NewLoginWelcome builds a LoginWelcome with the fixed copyright banner
// and the given session cipher seeds.
func NewLoginWelcome(serverKey, clientKey [48]byte) *LoginWelcome {
	w := &LoginWelcome{ServerKey: serverKey, ClientKey: clientKey}
	copy(w.Copyright[:], loginWelcomeCopyright)
	return w
}

func (p *LoginWelcome) Command() uint16        { return 0x03 }
func (p *LoginWelcome) Dialect() codec.Dialect { return codec.Login }
func (p *LoginWelcome) FlagPtr() *uint32       { return &p.Flag }
func (p *LoginWelcome) Fields() []codec.Field {
	return []codec.Field{
		{Name: "copyright", Kind: codec.KindText, Bytes: p.Copyright[:]},
		{Name: "server_key", Kind: codec.KindBytes, Bytes: p.ServerKey[:]},
		{Name: "client_key", Kind: codec.KindBytes, Bytes: p.ClientKey[:]},
	}
}

// RedirectClient sends the client to a different login/game server.
type RedirectClient struct {
	Flag    uint32
	IP      uint32
	Port    uint16
	Padding uint16
}

func NewRedirectClient(ip uint32, port uint16) *RedirectClient {
	return &RedirectClient{IP: ip, Port: port}
}

func (p *RedirectClient) Command() uint16        { return 0x19 }
func (p *RedirectClient) Dialect() codec.Dialect { return codec.Login }
func (p *RedirectClient) FlagPtr() *uint32       { return &p.Flag }
func (p *RedirectClient) Fields() []codec.Field {
	return []codec.Field{
		{Name: "ip", Kind: codec.KindU32, U32: &p.IP},
		{Name: "port", Kind: codec.KindU16, U16: &p.Port},
		{Name: "padding", Kind: codec.KindU16, U16: &p.Padding},
	}
}

// Login carries the client's game-login credentials and hardware
// fingerprint.
type Login struct {
	Flag         uint32
	Tag          uint32
	Guildcard    uint32
	Version      uint16
	Unknown1     [6]byte
	Team         uint32
	Username     [16]byte
	Unknown2     [32]byte
	Password     [16]byte
	Unknown3     [40]byte
	HWInfo       [8]byte
	SecurityData [40]byte
}

func (p *Login) Command() uint16        { return 0x93 }
func (p *Login) Dialect() codec.Dialect { return codec.Login }
func (p *Login) FlagPtr() *uint32       { return &p.Flag }
func (p *Login) Fields() []codec.Field {
	return []codec.Field{
		{Name: "tag", Kind: codec.KindU32, U32: &p.Tag},
		{Name: "guildcard", Kind: codec.KindU32, U32: &p.Guildcard},
		{Name: "version", Kind: codec.KindU16, U16: &p.Version},
		{Name: "unknown1", Kind: codec.KindBytes, Bytes: p.Unknown1[:]},
		{Name: "team", Kind: codec.KindU32, U32: &p.Team},
		{Name: "username", Kind: codec.KindText, Bytes: p.Username[:]},
		{Name: "unknown2", Kind: codec.KindBytes, Bytes: p.Unknown2[:]},
		{Name: "password", Kind: codec.KindText, Bytes: p.Password[:]},
		{Name: "unknown3", Kind: codec.KindBytes, Bytes: p.Unknown3[:]},
		{Name: "hwinfo", Kind: codec.KindBytes, Bytes: p.HWInfo[:]},
		{Name: "security_data", Kind: codec.KindBytes, Bytes: p.SecurityData[:]},
	}
}

// RequestSettings is the server's empty prompt for the client's saved
// key/team configuration.
type RequestSettings struct {
	Flag uint32
}

func (p *RequestSettings) Command() uint16        { return 0xE0 }
func (p *RequestSettings) Dialect() codec.Dialect { return codec.Login }
func (p *RequestSettings) FlagPtr() *uint32       { return &p.Flag }
func (p *RequestSettings) Fields() []codec.Field  { return nil }

// SendKeyAndTeamSettings answers RequestSettings with the client's
// persisted key/joystick bindings and its current team membership.
type SendKeyAndTeamSettings struct {
	Flag            uint32
	Unknown         [0x114]byte
	KeyConfig       [0x16C]byte
	JoystickConfig  [0x38]byte
	Guildcard       uint32
	TeamID          uint32
	TeamInfo        [8]byte
	TeamPriv        uint16
	Unknown2        uint16
	TeamName        [32]byte
	TeamFlag        [2048]byte
	TeamRewards     [8]byte
}

// NewSendKeyAndTeamSettings builds a reply carrying the given saved key
// and joystick configuration blobs for a guildcard/team pair with no
// team data populated.
func NewSendKeyAndTeamSettings(keyConfig [0x16C]byte, joystickConfig [0x38]byte, guildcard, teamID uint32) *SendKeyAndTeamSettings {
	return &SendKeyAndTeamSettings{
		KeyConfig:      keyConfig,
		JoystickConfig: joystickConfig,
		Guildcard:      guildcard,
		TeamID:         teamID,
	}
}

func (p *SendKeyAndTeamSettings) Command() uint16        { return 0xE2 }
func (p *SendKeyAndTeamSettings) Dialect() codec.Dialect { return codec.Login }
func (p *SendKeyAndTeamSettings) FlagPtr() *uint32       { return &p.Flag }
func (p *SendKeyAndTeamSettings) Fields() []codec.Field {
	return []codec.Field{
		{Name: "unknown", Kind: codec.KindBytes, Bytes: p.Unknown[:]},
		{Name: "key_config", Kind: codec.KindBytes, Bytes: p.KeyConfig[:]},
		{Name: "joystick_config", Kind: codec.KindBytes, Bytes: p.JoystickConfig[:]},
		{Name: "guildcard", Kind: codec.KindU32, U32: &p.Guildcard},
		{Name: "team_id", Kind: codec.KindU32, U32: &p.TeamID},
		{Name: "team_info", Kind: codec.KindBytes, Bytes: p.TeamInfo[:]},
		{Name: "team_priv", Kind: codec.KindU16, U16: &p.TeamPriv},
		{Name: "unknown2", Kind: codec.KindU16, U16: &p.Unknown2},
		{Name: "team_name", Kind: codec.KindText, Bytes: p.TeamName[:]},
		{Name: "team_flag", Kind: codec.KindBytes, Bytes: p.TeamFlag[:]},
		{Name: "team_rewards", Kind: codec.KindBytes, Bytes: p.TeamRewards[:]},
	}
}

// LoginResponse is the server's final login verdict.
type LoginResponse struct {
	Flag         uint32
	Status       AccountStatus
	Tag          uint32
	Guildcard    uint32
	TeamID       uint32
	SecurityData [40]byte
	Caps         uint32
}

// NewLoginResponse mirrors LoginResponse::by_status from the source
// protocol: tag and caps carry fixed magic values regardless of status.
func NewLoginResponse(status AccountStatus, securityData [40]byte) *LoginResponse {
	return &LoginResponse{
		Status:       status,
		Tag:          0x00010000,
		SecurityData: securityData,
		Caps:         0x00000102,
	}
}

func (p *LoginResponse) Command() uint16        { return 0xE6 }
func (p *LoginResponse) Dialect() codec.Dialect { return codec.Login }
func (p *LoginResponse) FlagPtr() *uint32       { return &p.Flag }
func (p *LoginResponse) Fields() []codec.Field {
	return []codec.Field{
		{Name: "status", Kind: codec.KindEnum, EnumVal: &p.Status},
		{Name: "tag", Kind: codec.KindU32, U32: &p.Tag},
		{Name: "guildcard", Kind: codec.KindU32, U32: &p.Guildcard},
		{Name: "team_id", Kind: codec.KindU32, U32: &p.TeamID},
		{Name: "security_data", Kind: codec.KindBytes, Bytes: p.SecurityData[:]},
		{Name: "caps", Kind: codec.KindU32, U32: &p.Caps},
	}
}
