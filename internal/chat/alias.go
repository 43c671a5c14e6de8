package chat

import (
	"strings"

	"github.com/mpl-id/mpl-chat-service/internal/domain/players"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
)

// Alias maps one canonical code to the strings that refer to it.
type Alias struct {
	Code    string
	Aliases []string
}

// AliasTable is ordered: Resolve returns the first code, in table order,
// that has any alias contained in the text. Earlier short aliases shadow
// later specific ones.
type AliasTable []Alias

// Resolve performs literal substring matching against normalized text.
func (t AliasTable) Resolve(text string) (string, bool) {
	for _, entry := range t {
		for _, alias := range entry.Aliases {
			if strings.Contains(text, alias) {
				return entry.Code, true
			}
		}
	}
	return "", false
}

// Words returns every alias in table order.
func (t AliasTable) Words() []string {
	var out []string
	for _, entry := range t {
		out = append(out, entry.Aliases...)
	}
	return out
}

// TeamAliases lists the league's teams.
var TeamAliases = AliasTable{
	{Code: string(teams.CodeAE), Aliases: []string{"ae", "alter", "alter ego"}},
	{Code: string(teams.CodeRRQ), Aliases: []string{"rrq", "rex"}},
	{Code: string(teams.CodeONIC), Aliases: []string{"onic"}},
	{Code: string(teams.CodeBTR), Aliases: []string{"btr", "bigetron"}},
	{Code: string(teams.CodeEVOS), Aliases: []string{"evos"}},
	{Code: string(teams.CodeAURA), Aliases: []string{"aura"}},
	{Code: string(teams.CodeGEEK), Aliases: []string{"geek"}},
	{Code: string(teams.CodeDEWA), Aliases: []string{"dewa"}},
}

// RoleAliases lists player positions plus the coach function.
var RoleAliases = AliasTable{
	{Code: string(players.RoleCoach), Aliases: []string{"coach", "pelatih"}},
	{Code: string(players.RoleJungle), Aliases: []string{"jungler", "jungle", "jg"}},
	{Code: string(players.RoleMid), Aliases: []string{"mid"}},
	{Code: string(players.RoleGold), Aliases: []string{"gold", "marksman", "mm"}},
	{Code: string(players.RoleExp), Aliases: []string{"exp"}},
	{Code: string(players.RoleRoam), Aliases: []string{"roam", "support"}},
}

// ResolveTeam resolves a team code from normalized text.
func ResolveTeam(text string) (teams.Code, bool) {
	code, ok := TeamAliases.Resolve(text)
	return teams.Code(code), ok
}

// ResolveRole resolves a role code from normalized text.
func ResolveRole(text string) (players.Role, bool) {
	code, ok := RoleAliases.Resolve(text)
	return players.Role(code), ok
}
