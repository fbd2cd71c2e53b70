// Package dedupe provides the shared singleflight group used to
// deduplicate concurrent read-model computations. Legal-move and
// legal-attack queries are pure functions of the match revision, so
// concurrent identical requests share one computation instead of each
// walking the board.
package dedupe

import "golang.org/x/sync/singleflight"

// QueryGroup deduplicates match queries keyed by
// "<query>:<revision>:<unit id>" (e.g. "moves:17:4").
var QueryGroup singleflight.Group
