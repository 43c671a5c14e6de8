package chat

import (
	"fmt"
	"strings"

	"github.com/mpl-id/mpl-chat-service/internal/domain/players"
	"github.com/mpl-id/mpl-chat-service/internal/domain/schedule"
	"github.com/mpl-id/mpl-chat-service/internal/domain/standings"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
)

// teamPlayers is one team's slice of a league-wide role listing.
type teamPlayers struct {
	Team    teams.Code
	Players []players.Player
}

func renderTeamRole(team teams.Code, role players.Role, found []players.Player) string {
	if len(found) == 0 {
		return fmt.Sprintf("Data %s untuk tim %s belum tersedia.", role, team)
	}
	return fmt.Sprintf("%s tim %s adalah %s.", role, team, strings.Join(players.Names(found), ", "))
}

func renderRoleAll(role players.Role, groups []teamPlayers) string {
	if len(groups) == 0 {
		return fmt.Sprintf("Data %s belum tersedia.", role)
	}
	var b strings.Builder
	fmt.Fprintf(&b, roleAllHeaderFormat, role)
	for _, g := range groups {
		fmt.Fprintf(&b, "\n\n%s:", g.Team)
		for _, p := range g.Players {
			b.WriteString("\n• ")
			b.WriteString(p.Name)
		}
	}
	return b.String()
}

func renderRoster(team teams.Code, lineup []players.Player) string {
	if len(lineup) == 0 {
		return fmt.Sprintf("Data pemain tim %s belum tersedia.", team)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Daftar pemain %s:", team)
	for _, p := range lineup {
		fmt.Fprintf(&b, "\n• %s (%s)", p.Name, p.Role)
	}
	return b.String()
}

func renderStandings(rows []standings.Entry) string {
	if len(rows) == 0 {
		return msgNoStandings
	}
	var b strings.Builder
	b.WriteString(standingsHeader)
	for i, row := range rows {
		fmt.Fprintf(&b, "\n%d. %s (%d)", i+1, row.TeamName, row.Points())
	}
	return b.String()
}

func renderSchedule(matches []schedule.Match) string {
	if len(matches) == 0 {
		return msgNoMatchesToday
	}
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("%s vs %s", m.Team1, m.Team2))
	}
	return strings.Join(lines, "\n")
}
