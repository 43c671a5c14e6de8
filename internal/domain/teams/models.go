package teams

import "github.com/mpl-id/mpl-chat-service/internal/domain/players"

// Code is the canonical short identifier of a competing organization.
type Code string

const (
	CodeAE   Code = "AE"
	CodeRRQ  Code = "RRQ"
	CodeONIC Code = "ONIC"
	CodeBTR  Code = "BTR"
	CodeEVOS Code = "EVOS"
	CodeAURA Code = "AURA"
	CodeGEEK Code = "GEEK"
	CodeDEWA Code = "DEWA"
)

// Roster is a team's player list in dataset order.
type Roster struct {
	Team    Code             `json:"team" yaml:"team"`
	Players []players.Player `json:"players" yaml:"players"`
}

// WithRole returns the members whose role label contains the role code.
func (r Roster) WithRole(role players.Role) []players.Player {
	var out []players.Player
	for _, p := range r.Players {
		if p.HasRole(role) {
			out = append(out, p)
		}
	}
	return out
}

// Lineup returns the competing players, leaving out coaches and analysts.
func (r Roster) Lineup() []players.Player {
	var out []players.Player
	for _, p := range r.Players {
		if !p.IsStaff() {
			out = append(out, p)
		}
	}
	return out
}
