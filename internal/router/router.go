// Package router maps inbound chat events to outbound effects. It is the
// interaction state machine: authorize, read and mutate the actor's
// session, render menus, publish commands.
package router

import (
	"log"

	"github.com/stripbot/stripbot/internal/catalog"
	"github.com/stripbot/stripbot/internal/guard"
	"github.com/stripbot/stripbot/internal/menu"
	"github.com/stripbot/stripbot/internal/session"
)

// Mode selects the interaction flow.
type Mode string

const (
	// ModeFlat serves a single implicit device: the command grid is the
	// only menu and every code publishes to that device's topic.
	ModeFlat Mode = "flat"
	// ModeMulti asks for a device first, then shows the command grid.
	ModeMulti Mode = "multi"
)

// User-facing texts.
const (
	deniedText      = "⛔ Доступ запрещён"
	sendingText     = "🎨 Отправляю цвет…"
	noDeviceText    = "⚠️ Сначала выбери устройство"
	publishFailText = "⚠️ Не удалось отправить команду"
	internalErrText = "⚠️ Внутренняя ошибка"
	flatMenuTitle   = "🎨 Выбери цвет ленты:"
	commandTitlePfx = "🎨 "
)

// Publisher delivers a command payload to a device topic.
type Publisher interface {
	Publish(topic, payload string) error
}

// Router is constructed once at startup and is safe for concurrent use;
// per-actor ordering comes from the session store's keyed lock.
type Router struct {
	mode    Mode
	guard   *guard.Guard
	store   *session.Store
	devices []catalog.Device
	pub     Publisher
}

// New creates a router over an immutable device catalog.
func New(mode Mode, g *guard.Guard, store *session.Store, devices []catalog.Device, pub Publisher) *Router {
	return &Router{
		mode:    mode,
		guard:   g,
		store:   store,
		devices: devices,
		pub:     pub,
	}
}

// Mode returns the flow the router was built for.
func (r *Router) Mode() Mode {
	return r.mode
}

// HandleStart processes the session-start trigger: authorize, reset the
// session, render the first menu as a new message.
func (r *Router) HandleStart(ev SessionStart) []Effect {
	if !r.guard.Allowed(ev.Actor) {
		log.Printf("[Router] ⛔ start denied for actor %d", ev.Actor)
		return []Effect{Notify{ChatID: ev.ChatID, Text: deniedText}}
	}

	var effects []Effect
	r.store.WithActor(ev.Actor, func(s *session.Session) {
		s.SelectedDevice = ""
		if r.mode == ModeFlat {
			effects = append(effects, SendMenu{ChatID: ev.ChatID, Menu: menu.Commands(flatMenuTitle, false, false)})
		} else {
			effects = append(effects, SendMenu{ChatID: ev.ChatID, Menu: menu.Devices(r.devices)})
		}
	})
	return effects
}

// HandleChoice processes a button press. Every outcome, including
// failures, ends in an Answer so the client never shows a stuck spinner.
func (r *Router) HandleChoice(ev MenuChoice) []Effect {
	if !r.guard.Allowed(ev.Actor) {
		log.Printf("[Router] ⛔ choice denied for actor %d", ev.Actor)
		return []Effect{Answer{CallbackID: ev.CallbackID, Text: deniedText, Alert: true}}
	}

	pick, err := ParseToken(ev.Token, r.mode == ModeFlat)
	if err != nil {
		log.Printf("[Router] ⚠️ actor %d: %v", ev.Actor, err)
		return []Effect{Answer{CallbackID: ev.CallbackID, Text: internalErrText, Alert: true}}
	}

	var effects []Effect
	r.store.WithActor(ev.Actor, func(s *session.Session) {
		switch p := pick.(type) {
		case BackPick:
			s.SelectedDevice = ""
			effects = append(effects,
				EditMenu{ChatID: ev.ChatID, MessageID: ev.MessageID, Menu: menu.Devices(r.devices)},
				Answer{CallbackID: ev.CallbackID},
			)

		case DevicePick:
			dev, ok := catalog.Find(r.devices, p.Key)
			if !ok {
				// The menu builder only emits catalog keys, so reaching
				// here means the catalog changed under a live menu or the
				// config is broken.
				log.Printf("[Router] ⚠️ actor %d picked unknown device %q", ev.Actor, p.Key)
				effects = append(effects, Answer{CallbackID: ev.CallbackID, Text: internalErrText, Alert: true})
				return
			}
			s.SelectedDevice = dev.Key
			effects = append(effects,
				EditMenu{
					ChatID:    ev.ChatID,
					MessageID: ev.MessageID,
					Menu:      menu.Commands(commandTitlePfx+dev.DisplayName, true, true),
				},
				Answer{CallbackID: ev.CallbackID, Text: dev.DisplayName},
			)

		case CommandPick:
			effects = append(effects, r.publish(ev, s, p.Code)...)
		}
	})
	return effects
}

// publish resolves the target device and sends the command code. Called
// under the actor's session lock; the lock is held for exactly the one
// publish call, per the ordering contract.
func (r *Router) publish(ev MenuChoice, s *session.Session, code string) []Effect {
	var dev catalog.Device
	if r.mode == ModeFlat {
		dev = r.devices[0]
	} else {
		if s.SelectedDevice == "" {
			return []Effect{Answer{CallbackID: ev.CallbackID, Text: noDeviceText, Alert: true}}
		}
		var ok bool
		dev, ok = catalog.Find(r.devices, s.SelectedDevice)
		if !ok {
			log.Printf("[Router] ⚠️ actor %d has stale selection %q", ev.Actor, s.SelectedDevice)
			return []Effect{Answer{CallbackID: ev.CallbackID, Text: internalErrText, Alert: true}}
		}
	}

	if err := r.pub.Publish(dev.CommandTopic, code); err != nil {
		log.Printf("[Router] ⚠️ publish %q to %s failed: %v", code, dev.CommandTopic, err)
		return []Effect{Answer{CallbackID: ev.CallbackID, Text: publishFailText, Alert: true}}
	}
	return []Effect{Answer{CallbackID: ev.CallbackID, Text: sendingText}}
}
