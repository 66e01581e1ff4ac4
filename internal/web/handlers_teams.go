package web

import (
	"net/http"
	"strconv"

	"football-master-app/internal/model"

	"github.com/go-chi/chi/v5"
)

// queryLimit parses a limit query parameter, clamping into [1, maxLimit].
func queryLimit(r *http.Request, def, maxLimit int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	country := r.URL.Query().Get("country")
	limit := queryLimit(r, 50, 100)

	teams := s.store.ListTeams(league, 0, 0)
	if country != "" {
		filtered := teams[:0]
		for _, t := range teams {
			if t.Country == country {
				filtered = append(filtered, t)
			}
		}
		teams = filtered
	}
	if len(teams) > limit {
		teams = teams[:limit]
	}
	writeJSON(w, http.StatusOK, teams)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	team, ok := s.store.GetTeam(chi.URLParam(r, "teamID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// handleUpdateTeam merges the request body over the stored document, so
// callers can send only the fields they want to change.
func (s *Server) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	team, ok := s.store.GetTeam(teamID)
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	if err := decodeJSON(r, &team); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	team.ID = teamID
	if err := model.Validate(team); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := s.store.UpdateTeam(team)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Team updated successfully"})
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.DeleteTeam(chi.URLParam(r, "teamID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Team deleted successfully"})
}

func (s *Server) handleGetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	team, ok := s.store.GetTeam(chi.URLParam(r, "teamID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, team.Players)
}

func (s *Server) handleAddTeamPlayer(w http.ResponseWriter, r *http.Request) {
	var player model.Player
	if err := decodeJSON(r, &player); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	player.ApplyDefaults()
	if err := model.Validate(player); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := s.store.AddPlayerToTeam(chi.URLParam(r, "teamID"), player)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Player added to team successfully"})
}

func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	team, ok := s.store.GetTeam(teamID)
	if !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	stats := BuildTeamStats(teamID, s.store.ListMatchesByTeam(teamID))
	writeJSON(w, http.StatusOK, map[string]any{
		"team_id":   team.ID,
		"team_name": team.Name,
		"stats":     stats,
	})
}

func (s *Server) handleListLeagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"leagues": s.store.Leagues()})
}

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"countries": s.store.Countries()})
}

func (s *Server) handleLeagueTable(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	teams := s.store.ListTeams(league, 0, 0)
	if len(teams) == 0 {
		writeError(w, http.StatusNotFound, "League not found")
		return
	}
	matchesByTeam := make(map[string][]model.Match, len(teams))
	for _, t := range teams {
		matchesByTeam[t.ID] = s.store.ListMatchesByTeam(t.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"league": league,
		"table":  BuildLeagueTable(teams, matchesByTeam),
	})
}

func (s *Server) handleListTeamUniforms(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if _, ok := s.store.GetTeam(teamID); !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	writeJSON(w, http.StatusOK, s.store.ListUniformsByTeam(teamID))
}

func (s *Server) handleCreateTeamUniform(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if _, ok := s.store.GetTeam(teamID); !ok {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}
	var kit model.UniformKit
	if err := decodeJSON(r, &kit); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	kit.TeamID = teamID
	kit.ApplyDefaults()
	if err := model.Validate(kit); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.store.CreateUniform(kit); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Uniform created successfully"})
}
