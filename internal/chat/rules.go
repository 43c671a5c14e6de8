package chat

import (
	"context"
	"errors"

	"github.com/mpl-id/mpl-chat-service/internal/augment"
)

type rule struct {
	intent Intent
	match  func(Query) bool
	answer func(e *Engine, ctx context.Context, q Query) string
}

// rules run in order; the first match answers and nothing after it runs.
var rules = []rule{
	{
		intent: IntentRoleAll,
		match:  func(q Query) bool { return q.Role != "" && containsAny(q.Text, allKeywords) },
		answer: (*Engine).answerRoleAll,
	},
	{
		intent: IntentTeamRole,
		match:  func(q Query) bool { return q.Team != "" && q.Role != "" },
		answer: (*Engine).answerTeamRole,
	},
	{
		intent: IntentTeamRoster,
		match:  func(q Query) bool { return q.Team != "" && containsAny(q.Text, rosterKeywords) },
		answer: (*Engine).answerTeamRoster,
	},
	{
		intent: IntentStandings,
		match:  func(q Query) bool { return containsAny(q.Text, standingsKeywords) },
		answer: (*Engine).answerStandings,
	},
	{
		intent: IntentSchedule,
		match:  func(q Query) bool { return containsAny(q.Text, scheduleKeywords) },
		answer: (*Engine).answerSchedule,
	},
	{
		intent: IntentGeneric,
		match:  func(q Query) bool { return IsTopicAdjacent(q.Text) },
		answer: (*Engine).answerGeneric,
	},
	{
		intent: IntentDefault,
		match:  func(Query) bool { return true },
		answer: func(*Engine, context.Context, Query) string { return msgUnrecognized },
	},
}

func (e *Engine) answerRoleAll(_ context.Context, q Query) string {
	var groups []teamPlayers
	for _, roster := range e.league.Rosters() {
		if found := roster.WithRole(q.Role); len(found) > 0 {
			groups = append(groups, teamPlayers{Team: roster.Team, Players: found})
		}
	}
	return renderRoleAll(q.Role, groups)
}

func (e *Engine) answerTeamRole(ctx context.Context, q Query) string {
	roster, ok := e.league.Roster(q.Team)
	if !ok {
		return msgTeamNotFound
	}
	found := roster.WithRole(q.Role)
	if len(found) == 0 {
		return renderTeamRole(q.Team, q.Role, nil)
	}
	return e.polish(ctx, renderTeamRole(q.Team, q.Role, found))
}

func (e *Engine) answerTeamRoster(ctx context.Context, q Query) string {
	roster, ok := e.league.Roster(q.Team)
	if !ok {
		return msgTeamNotFound
	}
	lineup := roster.Lineup()
	if len(lineup) == 0 {
		return renderRoster(q.Team, nil)
	}
	return e.polish(ctx, renderRoster(q.Team, lineup))
}

func (e *Engine) answerStandings(_ context.Context, _ Query) string {
	return renderStandings(e.league.TopStandings(standingsLimit))
}

func (e *Engine) answerSchedule(_ context.Context, _ Query) string {
	return renderSchedule(e.league.FixturesOn(e.today()))
}

func (e *Engine) answerGeneric(ctx context.Context, q Query) string {
	out := e.augmenter.Explain(ctx, q.Raw)
	if errors.Is(out.Err, augment.ErrNotConfigured) {
		return msgDetailsMissing
	}
	return out.TextOr(msgCannotAnswerNow)
}

func (e *Engine) polish(ctx context.Context, text string) string {
	return e.augmenter.Polish(ctx, text).TextOr(text)
}
