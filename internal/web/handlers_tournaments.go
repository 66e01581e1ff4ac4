package web

import (
	"net/http"
	"strconv"

	"football-master-app/internal/model"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateTournament(w http.ResponseWriter, r *http.Request) {
	var tournament model.Tournament
	if err := decodeJSON(r, &tournament); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tournament.ApplyDefaults()
	if err := model.Validate(tournament); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.CreateTournament(tournament)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"tournament_id": created.ID,
		"message":       "Tournament created successfully",
	})
}

func (s *Server) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	skip := 0
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			skip = n
		}
	}
	limit := queryLimit(r, 20, 50)
	writeJSON(w, http.StatusOK, s.store.ListTournaments(skip, limit))
}

func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	tournament, ok := s.store.GetTournament(chi.URLParam(r, "tournamentID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Tournament not found")
		return
	}
	writeJSON(w, http.StatusOK, tournament)
}
