package domain

import (
	"github.com/mpl-id/mpl-chat-service/internal/domain/schedule"
	"github.com/mpl-id/mpl-chat-service/internal/domain/standings"
	"github.com/mpl-id/mpl-chat-service/internal/domain/teams"
)

// Dataset is the full read-only league snapshot answers are drawn from.
type Dataset struct {
	Rosters   []teams.Roster
	Standings []standings.Entry
	Schedule  schedule.Fixtures
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the payload returned for every handled chat message.
type ChatResponse struct {
	Answer string `json:"answer"`
}
