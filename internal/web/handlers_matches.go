package web

import (
	"net/http"

	"football-master-app/internal/model"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var match model.Match
	if err := decodeJSON(r, &match); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	match.ApplyDefaults()
	if err := model.Validate(match); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := s.store.GetTeam(match.HomeTeamID); !ok {
		writeError(w, http.StatusBadRequest, "Home team not found")
		return
	}
	if _, ok := s.store.GetTeam(match.AwayTeamID); !ok {
		writeError(w, http.StatusBadRequest, "Away team not found")
		return
	}
	created, err := s.store.CreateMatch(match)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"match_id": created.ID,
		"message":  "Match created successfully",
	})
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	match, ok := s.store.GetMatch(chi.URLParam(r, "matchID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Match not found")
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (s *Server) handleCompleteMatch(w http.ResponseWriter, r *http.Request) {
	var result model.MatchResult
	if err := decodeJSON(r, &result); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if result.HomeScore < 0 || result.AwayScore < 0 {
		writeError(w, http.StatusBadRequest, "Scores must be non-negative")
		return
	}
	ok, err := s.store.CompleteMatch(chi.URLParam(r, "matchID"), result)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Match not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Match completed successfully"})
}

func (s *Server) handleListUserMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListMatchesByUser(chi.URLParam(r, "userID")))
}
