// Package telegram implements the chat side of the relay: Bot API long
// polling in, menu renders and callback acknowledgments out.
package telegram

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/stripbot/stripbot/internal/router"
)

// Handler is the interaction core the channel feeds events into.
type Handler interface {
	HandleStart(router.SessionStart) []router.Effect
	HandleChoice(router.MenuChoice) []router.Effect
}

// Channel runs the long polling loop and applies the router's effects.
type Channel struct {
	token   string
	apiBase string
	client  *http.Client
	handler Handler
	botUser string
}

// New creates a Channel for the given bot token.
func New(token string, handler Handler) *Channel {
	return &Channel{
		token:   token,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 60 * time.Second},
		handler: handler,
	}
}

// Run begins long polling for updates. Blocks until ctx is cancelled.
func (c *Channel) Run(ctx context.Context) error {
	info, err := c.apiCall("getMe", nil)
	if err != nil {
		return err
	}
	if result, ok := info["result"].(map[string]any); ok {
		if username, ok := result["username"].(string); ok {
			c.botUser = username
			log.Printf("[Telegram] 🤖 bot @%s connected", username)
		}
	}

	offset := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := c.apiCall("getUpdates", map[string]any{
			"offset":          offset,
			"timeout":         30,
			"allowed_updates": []string{"message", "callback_query"},
		})
		if err != nil {
			log.Printf("[Telegram] getUpdates error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		results, _ := updates["result"].([]any)
		for _, u := range results {
			update, ok := u.(map[string]any)
			if !ok {
				continue
			}
			if uid, ok := update["update_id"].(float64); ok {
				offset = int(uid) + 1
			}
			// Updates from different actors may be handled concurrently;
			// per-actor ordering is enforced by the session keyed lock.
			go c.handleUpdate(update)
		}
	}
}

// handleUpdate decodes one update, routes it, and applies the effects.
// A defect while handling one update is fatal to that interaction only,
// never to the process.
func (c *Channel) handleUpdate(update map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Telegram] ⚠️ recovered while handling update: %v", r)
		}
	}()

	if cb, ok := update["callback_query"].(map[string]any); ok {
		ev, ok := decodeCallback(cb)
		if !ok {
			return
		}
		c.apply(c.handler.HandleChoice(ev))
		return
	}

	if msg, ok := update["message"].(map[string]any); ok {
		ev, ok := c.decodeStart(msg)
		if !ok {
			return
		}
		c.apply(c.handler.HandleStart(ev))
	}
}

// decodeStart extracts a SessionStart from a "/start" message. Other
// texts are ignored: buttons are the only interface.
func (c *Channel) decodeStart(msg map[string]any) (router.SessionStart, bool) {
	from, _ := msg["from"].(map[string]any)
	chat, _ := msg["chat"].(map[string]any)
	text, _ := msg["text"].(string)
	if from == nil || chat == nil {
		return router.SessionStart{}, false
	}

	cmd := strings.TrimSpace(text)
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		// "/start@botname" in group chats. Before getMe has told us our
		// username a mention cannot be verified, so it is ignored rather
		// than claimed.
		if c.botUser == "" || cmd[i+1:] != c.botUser {
			return router.SessionStart{}, false
		}
		cmd = cmd[:i]
	}
	if cmd != "/start" {
		return router.SessionStart{}, false
	}

	actor, ok := asID(from["id"])
	if !ok {
		return router.SessionStart{}, false
	}
	chatID, ok := asID(chat["id"])
	if !ok {
		return router.SessionStart{}, false
	}
	return router.SessionStart{Actor: actor, ChatID: chatID}, true
}

// decodeCallback extracts a MenuChoice from a callback query.
func decodeCallback(cb map[string]any) (router.MenuChoice, bool) {
	from, _ := cb["from"].(map[string]any)
	msg, _ := cb["message"].(map[string]any)
	callbackID, _ := cb["id"].(string)
	token, _ := cb["data"].(string)
	if from == nil || msg == nil || callbackID == "" {
		return router.MenuChoice{}, false
	}

	chat, _ := msg["chat"].(map[string]any)
	if chat == nil {
		return router.MenuChoice{}, false
	}
	actor, ok := asID(from["id"])
	if !ok {
		return router.MenuChoice{}, false
	}
	chatID, ok := asID(chat["id"])
	if !ok {
		return router.MenuChoice{}, false
	}
	messageID, _ := msg["message_id"].(float64)

	return router.MenuChoice{
		Actor:      actor,
		ChatID:     chatID,
		MessageID:  int(messageID),
		CallbackID: callbackID,
		Token:      token,
	}, true
}

// apply executes effects in order. Failures are logged and do not stop
// later effects: a broken edit must not swallow the callback answer.
func (c *Channel) apply(effects []router.Effect) {
	for _, e := range effects {
		var err error
		switch ef := e.(type) {
		case router.SendMenu:
			err = c.sendMenu(ef.ChatID, ef.Menu)
		case router.EditMenu:
			err = c.editMenu(ef.ChatID, ef.MessageID, ef.Menu)
		case router.Answer:
			err = c.answerCallback(ef.CallbackID, ef.Text, ef.Alert)
		case router.Notify:
			err = c.sendText(ef.ChatID, ef.Text)
		}
		if err != nil {
			log.Printf("[Telegram] ⚠️ applying %T: %v", e, err)
		}
	}
}

func asID(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}
