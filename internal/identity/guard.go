// Package identity rejects placeholder and synthetic account ids.
package identity

import "strings"

// Guard knows which user ids are placeholders (client defaults such as
// "me" or "undefined") or synthetic test accounts.
type Guard struct {
	ids      map[string]struct{}
	prefixes []string
}

func NewGuard(ids, prefixes []string) *Guard {
	g := &Guard{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		g.ids[strings.ToLower(strings.TrimSpace(id))] = struct{}{}
	}
	for _, p := range prefixes {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			g.prefixes = append(g.prefixes, p)
		}
	}
	return g
}

// IsPlaceholder reports whether id must never be discovered or targeted.
// Blank ids are always placeholders.
func (g *Guard) IsPlaceholder(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return true
	}
	if g == nil {
		return false
	}
	if _, ok := g.ids[id]; ok {
		return true
	}
	for _, p := range g.prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
