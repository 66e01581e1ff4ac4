package web

import (
	"net/http"

	"football-master-app/internal/model"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateCareer(w http.ResponseWriter, r *http.Request) {
	var career model.Career
	if err := decodeJSON(r, &career); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	career.ApplyDefaults()
	if err := model.Validate(career); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.CreateCareer(career)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"career_id": created.ID,
		"message":   "Career created successfully",
	})
}

func (s *Server) handleGetUserCareer(w http.ResponseWriter, r *http.Request) {
	career, ok := s.store.GetCareerByUser(chi.URLParam(r, "userID"))
	if !ok {
		writeError(w, http.StatusNotFound, "Career not found")
		return
	}
	writeJSON(w, http.StatusOK, career)
}

func (s *Server) handleAdvanceCareerSeason(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.AdvanceCareerSeason(chi.URLParam(r, "careerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Career not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Season advanced successfully"})
}
