package players

import "strings"

// Role is the canonical code for a player position or function.
type Role string

const (
	RoleCoach  Role = "COACH"
	RoleJungle Role = "JUNGLE"
	RoleMid    Role = "MID"
	RoleGold   Role = "GOLD"
	RoleExp    Role = "EXP"
	RoleRoam   Role = "ROAM"
)

// staffLabels mark roster entries that are not competing players.
var staffLabels = []string{string(RoleCoach), "ANALYST"}

// Player is a roster member as supplied by the dataset. Role is a free-text
// label such as "Jungler" or "Head Coach".
type Player struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}

// HasRole reports whether the role label contains the role code, ignoring case.
func (p Player) HasRole(role Role) bool {
	if role == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(p.Role), string(role))
}

// IsStaff reports whether the entry is a coach or analyst.
func (p Player) IsStaff() bool {
	label := strings.ToUpper(p.Role)
	for _, s := range staffLabels {
		if strings.Contains(label, s) {
			return true
		}
	}
	return false
}

// Names returns the player names in order.
func Names(items []Player) []string {
	names := make([]string, 0, len(items))
	for _, p := range items {
		names = append(names, p.Name)
	}
	return names
}
