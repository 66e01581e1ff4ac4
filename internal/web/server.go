package web

import (
	"net/http"

	"football-master-app/internal/store"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	store store.Store
}

func NewServer(store store.Store) *Server {
	return &Server{store: store}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.handleRoot)
		r.Get("/health", s.handleHealth)
		r.Get("/game-modes", s.handleGameModes)

		r.Get("/teams", s.handleListTeams)
		r.Get("/teams/{teamID}", s.handleGetTeam)
		r.Put("/teams/{teamID}", s.handleUpdateTeam)
		r.Delete("/teams/{teamID}", s.handleDeleteTeam)
		r.Get("/teams/{teamID}/players", s.handleGetTeamPlayers)
		r.Post("/teams/{teamID}/players", s.handleAddTeamPlayer)
		r.Get("/teams/{teamID}/stats", s.handleTeamStats)
		r.Get("/teams/{teamID}/uniforms", s.handleListTeamUniforms)
		r.Post("/teams/{teamID}/uniforms", s.handleCreateTeamUniform)
		r.Get("/leagues", s.handleListLeagues)
		r.Get("/leagues/{league}/table", s.handleLeagueTable)
		r.Get("/countries", s.handleListCountries)

		r.Get("/stadiums", s.handleListStadiums)
		r.Get("/stadiums/{stadiumID}", s.handleGetStadium)

		r.Post("/users", s.handleCreateUser)
		r.Get("/users/{userID}", s.handleGetUser)
		r.Put("/users/{userID}/settings", s.handleUpdateUserSettings)
		r.Get("/users/{userID}/matches", s.handleListUserMatches)
		r.Get("/users/{userID}/career", s.handleGetUserCareer)
		r.Get("/users/{userID}/achievements", s.handleListUserAchievements)
		r.Post("/users/{userID}/achievements/{achievementID}", s.handleUnlockAchievement)
		r.Get("/users/{userID}/statistics", s.handleUserStatistics)

		r.Post("/matches", s.handleCreateMatch)
		r.Get("/matches/{matchID}", s.handleGetMatch)
		r.Put("/matches/{matchID}/complete", s.handleCompleteMatch)

		r.Post("/tournaments", s.handleCreateTournament)
		r.Get("/tournaments", s.handleListTournaments)
		r.Get("/tournaments/{tournamentID}", s.handleGetTournament)

		r.Post("/careers", s.handleCreateCareer)
		r.Put("/careers/{careerID}/advance-season", s.handleAdvanceCareerSeason)

		r.Get("/achievements", s.handleListAchievements)

		r.Get("/search/teams", s.handleSearchTeams)
		r.Get("/search/players", s.handleSearchPlayers)
	})

	return r
}
