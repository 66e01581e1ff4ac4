package web

import (
	"net/http"
	"strings"

	"football-master-app/internal/model"
)

func (s *Server) handleSearchTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}
	limit := queryLimit(r, 10, 50)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": s.store.SearchTeams(query, limit),
	})
}

type playerHit struct {
	Player model.Player   `json:"player"`
	Team   map[string]any `json:"team"`
}

// handleSearchPlayers scans every team's embedded player list. There is
// no player collection, so this is an unindexed full scan.
func (s *Server) handleSearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}
	position := r.URL.Query().Get("position")
	limit := queryLimit(r, 10, 50)

	q := strings.ToLower(query)
	hits := []playerHit{}
	for _, team := range s.store.ListTeams("", 0, 0) {
		for _, player := range team.Players {
			if !strings.Contains(strings.ToLower(player.Name), q) {
				continue
			}
			if position != "" && string(player.Position) != position {
				continue
			}
			hits = append(hits, playerHit{
				Player: player,
				Team:   map[string]any{"id": team.ID, "name": team.Name},
			})
			if len(hits) >= limit {
				break
			}
		}
		if len(hits) >= limit {
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": query, "results": hits})
}
