package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadToken marks a callback payload the menu builder could not have
// produced. Tokens are never user-typed, so this is a defect, not a
// user-facing error path.
var ErrBadToken = errors.New("malformed callback token")

// Pick is a decoded menu choice.
type Pick interface {
	isPick()
}

// DevicePick selects a device by catalog key.
type DevicePick struct {
	Key string
}

// CommandPick issues a command code to the selected device.
type CommandPick struct {
	Code string
}

// BackPick returns to the device menu and clears the selection.
type BackPick struct{}

func (DevicePick) isPick()  {}
func (CommandPick) isPick() {}
func (BackPick) isPick()    {}

// ParseToken decodes a callback token into its variant. Flat mode uses
// bare command codes; the device-selection flow uses "device:", "cmd:"
// and "back:devices" prefixes.
func ParseToken(token string, flat bool) (Pick, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadToken)
	}

	if flat {
		if strings.Contains(token, ":") {
			return nil, fmt.Errorf("%w: %q in flat mode", ErrBadToken, token)
		}
		return CommandPick{Code: token}, nil
	}

	switch {
	case token == "back:devices":
		return BackPick{}, nil
	case strings.HasPrefix(token, "device:"):
		key := strings.TrimPrefix(token, "device:")
		if key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
		return DevicePick{Key: key}, nil
	case strings.HasPrefix(token, "cmd:"):
		code := strings.TrimPrefix(token, "cmd:")
		if code == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
		return CommandPick{Code: code}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadToken, token)
	}
}
