package standings

import "strings"

// Entry is one row of the league table in the rank order supplied upstream.
type Entry struct {
	TeamName   string `json:"teamName" yaml:"teamName"`
	MatchPoint *int   `json:"matchPoint" yaml:"matchPoint"`
}

// Valid reports whether the row has both a display name and a point value.
func (e Entry) Valid() bool {
	return strings.TrimSpace(e.TeamName) != "" && e.MatchPoint != nil
}

// Points returns the match point value, or zero when absent.
func (e Entry) Points() int {
	if e.MatchPoint == nil {
		return 0
	}
	return *e.MatchPoint
}

// Top returns up to limit valid entries, preserving order. The table is
// assumed to be rank-sorted already and is never re-sorted here.
func Top(entries []Entry, limit int) []Entry {
	out := make([]Entry, 0, limit)
	for _, e := range entries {
		if len(out) == limit {
			break
		}
		if e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
