package web

import (
	"net/http"
	"time"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Football Master API is running!",
		"version": "1.0.0",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type gameMode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	MaxPlayers  int    `json:"max_players"`
	Duration    int    `json:"duration"`
}

var gameModes = []gameMode{
	{ID: "quick_match", Name: "Quick Match", Description: "Jump into a quick match with any team", Icon: "⚡", MaxPlayers: 2, Duration: 90},
	{ID: "career", Name: "Career Mode", Description: "Build your legacy as a manager", Icon: "👔", MaxPlayers: 1, Duration: 0},
	{ID: "tournament", Name: "Tournament", Description: "Compete in various tournaments", Icon: "🏆", MaxPlayers: 32, Duration: 0},
	{ID: "futsal", Name: "Futsal", Description: "Fast-paced 5v5 indoor football", Icon: "🏟️", MaxPlayers: 2, Duration: 40},
	{ID: "online", Name: "Online Match", Description: "Play against other players online", Icon: "🌐", MaxPlayers: 2, Duration: 90},
}

func (s *Server) handleGameModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"modes": gameModes})
}
