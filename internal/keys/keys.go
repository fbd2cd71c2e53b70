package keys

import (
	"strings"
)

// FactionKey produces the canonical catalog key for a faction name.
// Behavior: trims, lower-cases and collapses inner whitespace to single
// underscores, so "Kingdom of Cantrell" and "kingdom_of_cantrell"
// address the same row. Suitable for stable DB keys.
func FactionKey(name string) string {
	s := strings.Join(strings.Fields(name), "_")
	return strings.ToLower(s)
}
