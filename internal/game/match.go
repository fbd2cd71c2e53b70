package game

// MatchStatus tracks whether a match is still being played.
type MatchStatus string

const (
	MatchStatusActive   MatchStatus = "active"
	MatchStatusFinished MatchStatus = "finished"
)

// Match is the full in-memory state of one battle: the board, every
// surviving unit and whose turn it is. It is never persisted; matches
// live only as long as the process.
type Match struct {
	PublicID       string      `json:"public_id"`
	Turn           int         `json:"turn"`
	CurrentFaction string      `json:"current_faction"`
	FactionA       string      `json:"faction_a"`
	FactionB       string      `json:"faction_b"`
	Status         MatchStatus `json:"status"`
	Winner         string      `json:"winner,omitempty"`
	Grid           *Grid       `json:"grid"`
	Units          *Roster     `json:"-"`
}

// Opponent returns the faction opposing the given one.
func (m *Match) Opponent(faction string) string {
	if faction == m.FactionA {
		return m.FactionB
	}
	return m.FactionA
}

// Finished reports whether the match has been decided.
func (m *Match) Finished() bool {
	return m.Status == MatchStatusFinished
}

// CurrentUnits returns the units of the faction whose turn it is.
func (m *Match) CurrentUnits() []*Unit {
	return m.Units.OfFaction(m.CurrentFaction)
}

// EnemyUnits returns the units opposing the faction whose turn it is.
func (m *Match) EnemyUnits() []*Unit {
	return m.Units.OfFaction(m.Opponent(m.CurrentFaction))
}
