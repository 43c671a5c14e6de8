package testutil

import (
	"github.com/mpl-id/mpl-chat-service/internal/domain"
	"github.com/mpl-id/mpl-chat-service/internal/domain/players"
	"github.com/mpl-id/mpl-chat-service/internal/domain/schedule"
	"github.com/mpl-id/mpl-chat-service/internal/domain/standings"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
)

// SampleDate is the date every fixture in SampleDataset is played on.
const SampleDate = "17/10/2026"

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// SampleRoster returns a roster for code with one player per listed role label.
func SampleRoster(code teams.Code, members ...players.Player) teams.Roster {
	return teams.Roster{Team: code, Players: members}
}

// SampleDataset returns a small dataset: ONIC and RRQ rosters with staff,
// a standings table with one invalid row, and two fixtures on SampleDate.
func SampleDataset() domain.Dataset {
	return domain.Dataset{
		Rosters: []teams.Roster{
			SampleRoster(teams.CodeONIC,
				players.Player{Name: "Butss", Role: "EXP Laner"},
				players.Player{Name: "Kairi", Role: "Jungler"},
				players.Player{Name: "Sanz", Role: "Mid Laner"},
				players.Player{Name: "Yeb", Role: "Head Coach"},
			),
			SampleRoster(teams.CodeRRQ,
				players.Player{Name: "Sutsujin", Role: "Jungler"},
				players.Player{Name: "Skylar", Role: "Gold Laner"},
				players.Player{Name: "Arcadia", Role: "Head Coach"},
				players.Player{Name: "Vyn", Role: "Analyst"},
			),
		},
		Standings: []standings.Entry{
			{TeamName: "ONIC", MatchPoint: IntPtr(21)},
			{TeamName: "", MatchPoint: IntPtr(5)},
			{TeamName: "RRQ", MatchPoint: IntPtr(18)},
			{TeamName: "EVOS"},
		},
		Schedule: schedule.Fixtures{
			{Date: SampleDate, Team1: "ONIC", Team2: "RRQ"},
			{Date: SampleDate, Team1: "EVOS", Team2: "AE"},
			{Date: "18/10/2026", Team1: "BTR", Team2: "DEWA"},
		},
	}
}
