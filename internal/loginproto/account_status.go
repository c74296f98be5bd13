package loginproto

import (
	"fmt"

	"github.com/l1jgo/psocore/internal/codec"
)

// AccountStatus is LoginResponse's outcome code. It implements
// codec.Enum: the wire form is a single discriminant byte followed by
// three zero pad bytes, matching the original client struct layout.
type AccountStatus byte

const (
	StatusOk AccountStatus = iota
	StatusError
	StatusInvalidPassword
	StatusInvalidPassword2
	StatusMaintenance
	StatusAlreadyOnline
	StatusBanned
	StatusBanned2
	StatusInvalidUser
	StatusPayUp
	StatusLocked
	StatusBadVersion
)

func (s AccountStatus) Discriminant() byte { return byte(s) }

func (s *AccountStatus) FromDiscriminant(b byte) error {
	if b > byte(StatusBadVersion) {
		return codec.ErrInvalidValue
	}
	*s = AccountStatus(b)
	return nil
}

func (s AccountStatus) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusError:
		return "Error"
	case StatusInvalidPassword:
		return "InvalidPassword"
	case StatusInvalidPassword2:
		return "InvalidPassword2"
	case StatusMaintenance:
		return "Maintenance"
	case StatusAlreadyOnline:
		return "AlreadyOnline"
	case StatusBanned:
		return "Banned"
	case StatusBanned2:
		return "Banned2"
	case StatusInvalidUser:
		return "InvalidUser"
	case StatusPayUp:
		return "PayUp"
	case StatusLocked:
		return "Locked"
	case StatusBadVersion:
		return "BadVersion"
	default:
		return fmt.Sprintf("AccountStatus(%d)", byte(s))
	}
}
