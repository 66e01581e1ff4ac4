package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListStadiums(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 50, 100)
	writeJSON(w, http.StatusOK, s.store.ListStadiums(0, limit))
}

func (s *Server) handleGetStadium(w http.ResponseWriter, r *http.Request) {
	stadium, ok := s.store.GetStadium(chi.URLParam(r, "stadiumID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Stadium not found")
		return
	}
	writeJSON(w, http.StatusOK, stadium)
}

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 50, 100)
	writeJSON(w, http.StatusOK, s.store.ListAchievements(0, limit))
}
