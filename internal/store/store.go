package store

import "football-master-app/internal/model"

// Store is the document-store boundary. One collection per entity type,
// point lookups on the application-level id field, equality filters only.
// Mutators report (false, nil) when the target id does not exist.
type Store interface {
	CreateTeam(team model.Team) (model.Team, error)
	GetTeam(id string) (model.Team, bool)
	ListTeams(league string, skip, limit int) []model.Team
	SearchTeams(query string, limit int) []model.Team
	UpdateTeam(team model.Team) (bool, error)
	DeleteTeam(id string) (bool, error)
	AddPlayerToTeam(teamID string, player model.Player) (bool, error)
	Leagues() []string
	Countries() []string
	CountTeams() (int, error)

	CreateStadium(stadium model.Stadium) (model.Stadium, error)
	GetStadium(id string) (model.Stadium, bool)
	ListStadiums(skip, limit int) []model.Stadium
	CountStadiums() (int, error)

	CreateUser(profile model.UserProfile) (model.UserProfile, error)
	GetUser(id string) (model.UserProfile, bool)
	GetUserByUsername(username string) (model.UserProfile, bool)
	UpdateUserSettings(id string, settings map[string]any) (bool, error)
	UnlockAchievement(userID, achievementID string) (bool, error)

	CreateMatch(match model.Match) (model.Match, error)
	GetMatch(id string) (model.Match, bool)
	ListMatchesByTeam(teamID string) []model.Match
	ListMatchesByUser(userID string) []model.Match
	CompleteMatch(id string, result model.MatchResult) (bool, error)

	CreateTournament(tournament model.Tournament) (model.Tournament, error)
	GetTournament(id string) (model.Tournament, bool)
	ListTournaments(skip, limit int) []model.Tournament

	CreateCareer(career model.Career) (model.Career, error)
	GetCareerByUser(userID string) (model.Career, bool)
	AdvanceCareerSeason(careerID string) (bool, error)

	CreateAchievement(achievement model.Achievement) (model.Achievement, error)
	ListAchievements(skip, limit int) []model.Achievement
	ListAchievementsByIDs(ids []string) []model.Achievement
	CountAchievements() (int, error)

	CreateUniform(kit model.UniformKit) (model.UniformKit, error)
	ListUniformsByTeam(teamID string) []model.UniformKit

	Close() error
}
