package web

import (
	"math"
	"sort"

	"football-master-app/internal/model"
)

type TeamStats struct {
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	GoalsFor     int     `json:"goals_for"`
	GoalsAgainst int     `json:"goals_against"`
	WinRate      float64 `json:"win_rate"`
}

type TableEntry struct {
	Position       int    `json:"position"`
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// BuildTeamStats folds a team's completed matches into win/draw/loss
// counters. Pending matches are ignored.
func BuildTeamStats(teamID string, matches []model.Match) TeamStats {
	var stats TeamStats
	for _, m := range matches {
		if !m.Completed {
			continue
		}
		var scored, conceded int
		switch teamID {
		case m.HomeTeamID:
			scored, conceded = m.HomeScore, m.AwayScore
		case m.AwayTeamID:
			scored, conceded = m.AwayScore, m.HomeScore
		default:
			continue
		}
		stats.Matches++
		stats.GoalsFor += scored
		stats.GoalsAgainst += conceded
		switch {
		case scored > conceded:
			stats.Wins++
		case scored == conceded:
			stats.Draws++
		default:
			stats.Losses++
		}
	}
	stats.WinRate = winRate(stats.Wins, stats.Matches)
	return stats
}

// BuildLeagueTable ranks teams by points then goal difference, three
// points per win and one per draw. Ties beyond goal difference keep the
// input order, which is alphabetical by team name.
func BuildLeagueTable(teams []model.Team, matchesByTeam map[string][]model.Match) []TableEntry {
	table := make([]TableEntry, 0, len(teams))
	for _, team := range teams {
		stats := BuildTeamStats(team.ID, matchesByTeam[team.ID])
		table = append(table, TableEntry{
			TeamID:         team.ID,
			TeamName:       team.Name,
			Played:         stats.Matches,
			Wins:           stats.Wins,
			Draws:          stats.Draws,
			Losses:         stats.Losses,
			GoalsFor:       stats.GoalsFor,
			GoalsAgainst:   stats.GoalsAgainst,
			GoalDifference: stats.GoalsFor - stats.GoalsAgainst,
			Points:         stats.Wins*3 + stats.Draws,
		})
	}
	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points == table[j].Points {
			return table[i].GoalDifference > table[j].GoalDifference
		}
		return table[i].Points > table[j].Points
	})
	for i := range table {
		table[i].Position = i + 1
	}
	return table
}

// BuildUserStats merges the profile's cumulative counters with totals
// derived from the user's match history.
func BuildUserStats(profile model.UserProfile, matches []model.Match) map[string]any {
	var totalGoals, totalAssists, totalCards int
	for _, m := range matches {
		totalGoals += intStat(m.Statistics, "goals_scored")
		totalAssists += intStat(m.Statistics, "assists")
		totalCards += intStat(m.Statistics, "cards")
	}
	return map[string]any{
		"profile": profile,
		"match_statistics": map[string]any{
			"total_matches":   profile.TotalMatches,
			"wins":            profile.TotalWins,
			"draws":           profile.TotalDraws,
			"losses":          profile.TotalLosses,
			"win_rate":        winRate(profile.TotalWins, profile.TotalMatches),
			"goals_scored":    profile.TotalGoalsScored,
			"goals_conceded":  profile.TotalGoalsConceded,
			"goal_difference": profile.TotalGoalsScored - profile.TotalGoalsConceded,
			"total_goals":     totalGoals,
			"total_assists":   totalAssists,
			"total_cards":     totalCards,
		},
		"achievements_unlocked": len(profile.Achievements),
		"level":                 profile.Level,
		"experience":            profile.Experience,
	}
}

// winRate floors the denominator at one, so a fresh profile reports 0
// rather than dividing by zero.
func winRate(wins, matches int) float64 {
	denom := matches
	if denom < 1 {
		denom = 1
	}
	rate := float64(wins) / float64(denom) * 100
	return math.Round(rate*100) / 100
}

func intStat(stats map[string]any, key string) int {
	switch v := stats[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
