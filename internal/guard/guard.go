// Package guard decides whether an inbound actor is authorized.
package guard

// Guard holds the fixed set of authorized actor IDs. It is immutable after
// construction and safe for concurrent use.
type Guard struct {
	allowed map[int64]struct{}
}

// New builds a guard from the configured allowlist. An empty allowlist
// denies everyone: the bot controls physical hardware, so access is closed
// by default.
func New(ids []int64) *Guard {
	g := &Guard{allowed: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		g.allowed[id] = struct{}{}
	}
	return g
}

// Allowed reports whether the actor may interact with the bot.
func (g *Guard) Allowed(actor int64) bool {
	_, ok := g.allowed[actor]
	return ok
}
