package web

import (
	"net/http"

	"football-master-app/internal/model"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var profile model.UserProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	profile.ApplyDefaults()
	if err := model.Validate(profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, exists := s.store.GetUserByUsername(profile.Username); exists {
		writeError(w, http.StatusBadRequest, "Username already taken")
		return
	}
	created, err := s.store.CreateUser(profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"user_id": created.ID,
		"message": "User created successfully",
	})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.store.GetUser(chi.URLParam(r, "userID"))
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateUserSettings(w http.ResponseWriter, r *http.Request) {
	var settings map[string]any
	if err := decodeJSON(r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := s.store.UpdateUserSettings(chi.URLParam(r, "userID"), settings)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Settings updated successfully"})
}

func (s *Server) handleListUserAchievements(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.store.GetUser(chi.URLParam(r, "userID"))
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, s.store.ListAchievementsByIDs(profile.Achievements))
}

func (s *Server) handleUnlockAchievement(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.UnlockAchievement(chi.URLParam(r, "userID"), chi.URLParam(r, "achievementID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Achievement unlocked successfully"})
}

func (s *Server) handleUserStatistics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	profile, ok := s.store.GetUser(userID)
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	matches := s.store.ListMatchesByUser(userID)
	writeJSON(w, http.StatusOK, BuildUserStats(profile, matches))
}
