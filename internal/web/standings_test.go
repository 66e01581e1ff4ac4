package web

import (
	"testing"

	"football-master-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedMatch(homeID, awayID string, homeScore, awayScore int) model.Match {
	return model.Match{
		HomeTeamID: homeID, AwayTeamID: awayID,
		HomeScore: homeScore, AwayScore: awayScore,
		Completed: true,
	}
}

func TestBuildTeamStats(t *testing.T) {
	matches := []model.Match{
		completedMatch("a", "b", 2, 1),
		completedMatch("b", "a", 0, 0),
		completedMatch("c", "a", 3, 1),
		{HomeTeamID: "a", AwayTeamID: "c", HomeScore: 5, AwayScore: 0, Completed: false},
	}

	stats := BuildTeamStats("a", matches)

	assert.Equal(t, 3, stats.Matches, "pending matches do not count")
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, stats.Matches, stats.Wins+stats.Draws+stats.Losses)
	assert.Equal(t, 3, stats.GoalsFor)
	assert.Equal(t, 4, stats.GoalsAgainst)
	assert.InDelta(t, 33.33, stats.WinRate, 0.01)
}

func TestBuildTeamStatsNoMatches(t *testing.T) {
	stats := BuildTeamStats("a", nil)

	assert.Zero(t, stats.Matches)
	assert.Zero(t, stats.WinRate)
}

func TestWinRateBounds(t *testing.T) {
	assert.Zero(t, winRate(0, 0))
	assert.Equal(t, 100.0, winRate(4, 4))
	assert.Equal(t, 50.0, winRate(2, 4))
	assert.Equal(t, 66.67, winRate(2, 3))
}

func TestBuildLeagueTable(t *testing.T) {
	teams := []model.Team{
		{ID: "a", Name: "Alpha FC"},
		{ID: "b", Name: "Beta FC"},
		{ID: "c", Name: "Gamma FC"},
	}
	matchesByTeam := map[string][]model.Match{
		"a": {completedMatch("a", "b", 2, 0), completedMatch("c", "a", 0, 1)},
		"b": {completedMatch("a", "b", 2, 0), completedMatch("b", "c", 1, 1)},
		"c": {completedMatch("b", "c", 1, 1), completedMatch("c", "a", 0, 1)},
	}

	table := BuildLeagueTable(teams, matchesByTeam)
	require.Len(t, table, 3)

	assert.Equal(t, 1, table[0].Position)
	assert.Equal(t, "Alpha FC", table[0].TeamName)
	assert.Equal(t, 6, table[0].Points)
	assert.Equal(t, 3, table[0].GoalDifference)

	assert.Equal(t, 2, table[1].Position)
	assert.Equal(t, "Beta FC", table[1].TeamName)
	assert.Equal(t, 1, table[1].Points)

	assert.Equal(t, 3, table[2].Position)
	assert.Equal(t, "Gamma FC", table[2].TeamName)
	assert.Equal(t, 1, table[2].Points)
}

func TestBuildLeagueTableBreaksPointTiesOnGoalDifference(t *testing.T) {
	teams := []model.Team{
		{ID: "a", Name: "Alpha FC"},
		{ID: "b", Name: "Beta FC"},
	}
	shared := []model.Match{
		completedMatch("a", "b", 1, 0),
		completedMatch("b", "a", 4, 0),
	}
	matchesByTeam := map[string][]model.Match{"a": shared, "b": shared}

	table := BuildLeagueTable(teams, matchesByTeam)
	require.Len(t, table, 2)
	assert.Equal(t, "Beta FC", table[0].TeamName)
	assert.Equal(t, table[0].Points, table[1].Points)
	assert.Greater(t, table[0].GoalDifference, table[1].GoalDifference)
}

func TestBuildLeagueTableIsStable(t *testing.T) {
	teams := []model.Team{
		{ID: "a", Name: "Alpha FC"},
		{ID: "b", Name: "Beta FC"},
		{ID: "c", Name: "Gamma FC"},
	}

	first := BuildLeagueTable(teams, nil)
	second := BuildLeagueTable(teams, nil)
	assert.Equal(t, first, second)

	// With no matches every row is level, so input order decides.
	assert.Equal(t, "Alpha FC", first[0].TeamName)
	assert.Equal(t, "Beta FC", first[1].TeamName)
	assert.Equal(t, "Gamma FC", first[2].TeamName)
}

func TestBuildUserStats(t *testing.T) {
	profile := model.UserProfile{
		ID: "u1", Username: "alice", Level: 3, Experience: 450,
		TotalMatches: 4, TotalWins: 2, TotalDraws: 1, TotalLosses: 1,
		TotalGoalsScored: 7, TotalGoalsConceded: 4,
		Achievements: []string{"ach-1", "ach-2"},
	}
	matches := []model.Match{
		{PlayerID: "u1", Completed: true, Statistics: map[string]any{
			"goals_scored": 2, "assists": float64(1), "cards": int64(1),
		}},
		{PlayerID: "u1", Completed: true, Statistics: map[string]any{
			"goals_scored": 1, "assists": 2,
		}},
	}

	stats := BuildUserStats(profile, matches)

	assert.Equal(t, 3, stats["level"])
	assert.Equal(t, 450, stats["experience"])
	assert.Equal(t, 2, stats["achievements_unlocked"])

	matchStats, ok := stats["match_statistics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 4, matchStats["total_matches"])
	assert.Equal(t, 50.0, matchStats["win_rate"])
	assert.Equal(t, 3, matchStats["goal_difference"])
	assert.Equal(t, 3, matchStats["total_goals"])
	assert.Equal(t, 3, matchStats["total_assists"])
	assert.Equal(t, 1, matchStats["total_cards"])
}
