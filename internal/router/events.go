package router

import "github.com/stripbot/stripbot/internal/menu"

// SessionStart is the fixed trigger command ("/start"). It resets the
// actor's session and renders the first menu.
type SessionStart struct {
	Actor  int64
	ChatID int64
}

// MenuChoice is an inline button press. Token is the opaque callback
// payload attached by the menu builder; MessageID references the menu
// message so transitions can edit it in place; CallbackID is needed to
// acknowledge the press.
type MenuChoice struct {
	Actor      int64
	ChatID     int64
	MessageID  int
	CallbackID string
	Token      string
}

// Effect is one outbound action the chat channel applies in order.
type Effect interface {
	isEffect()
}

// SendMenu posts a new menu message. Used once per session start.
type SendMenu struct {
	ChatID int64
	Menu   menu.Menu
}

// EditMenu replaces an existing menu message in place. Used for all
// subsequent menu transitions.
type EditMenu struct {
	ChatID    int64
	MessageID int
	Menu      menu.Menu
}

// Answer acknowledges a button press. Alert makes the acknowledgment a
// blocking popup (warnings, denials) instead of a transient toast.
type Answer struct {
	CallbackID string
	Text       string
	Alert      bool
}

// Notify sends a plain text message, used for denials of explicit
// commands that have no callback to answer.
type Notify struct {
	ChatID int64
	Text   string
}

func (SendMenu) isEffect() {}
func (EditMenu) isEffect() {}
func (Answer) isEffect()   {}
func (Notify) isEffect()   {}
