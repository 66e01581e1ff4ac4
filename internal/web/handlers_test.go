package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"football-master-app/internal/model"
	"football-master-app/internal/seed"
	"football-master-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededServer(t *testing.T) http.Handler {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, seed.Initialize(st))
	return NewServer(st).Routes()
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	root := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Football Master API is running!", root["message"])

	rec = doRequest(t, handler, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "healthy", health["status"])
	assert.NotEmpty(t, health["timestamp"])
}

func TestGameModesCatalog(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/game-modes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string][]gameMode](t, rec)
	require.Len(t, body["modes"], 5)
	assert.Equal(t, "quick_match", body["modes"][0].ID)
	assert.Equal(t, "Career Mode", body["modes"][1].Name)
}

func TestListTeamsSeeded(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/teams", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	teams := decodeBody[[]model.Team](t, rec)
	require.Len(t, teams, 25)

	names := make(map[string]bool, len(teams))
	for _, team := range teams {
		names[team.Name] = true
		assert.NotEmpty(t, team.ID)
		assert.Len(t, team.Players, 25)
	}
	assert.True(t, names["Manchester Blue"])
	assert.True(t, names["Madrid White"])

	rec = doRequest(t, handler, http.MethodGet, "/api/teams?limit=5", nil)
	assert.Len(t, decodeBody[[]model.Team](t, rec), 5)

	rec = doRequest(t, handler, http.MethodGet, "/api/teams?league="+url.QueryEscape("Premier League"), nil)
	premier := decodeBody[[]model.Team](t, rec)
	require.NotEmpty(t, premier)
	for _, team := range premier {
		assert.Equal(t, "Premier League", team.League)
	}
}

func TestGetTeamNotFound(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/teams/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Team not found", body["detail"])
}

func TestUserLifecycle(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/users", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, created["user_id"])
	assert.Equal(t, "User created successfully", created["message"])

	rec = doRequest(t, handler, http.MethodGet, "/api/users/"+created["user_id"], nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[model.UserProfile](t, rec)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 0, profile.Experience)

	rec = doRequest(t, handler, http.MethodPut, "/api/users/"+created["user_id"]+"/settings",
		map[string]any{"sensitivity": 8})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUserValidation(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/users", map[string]any{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "username is required")

	rec = doRequest(t, handler, http.MethodPost, "/api/users", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty body is rejected")
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/users", map[string]any{
		"username": "dave", "email": "dave@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Username matching is case-insensitive.
	rec = doRequest(t, handler, http.MethodPost, "/api/users", map[string]any{
		"username": "DAVE", "email": "dave2@example.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Username already taken", body["detail"])
}

func TestMatchFlowUpdatesTeamStats(t *testing.T) {
	handler := seededServer(t)

	teams := decodeBody[[]model.Team](t, doRequest(t, handler, http.MethodGet, "/api/teams", nil))
	require.GreaterOrEqual(t, len(teams), 2)
	stadiums := decodeBody[[]model.Stadium](t, doRequest(t, handler, http.MethodGet, "/api/stadiums", nil))
	require.NotEmpty(t, stadiums)
	home, away := teams[0], teams[1]

	rec := doRequest(t, handler, http.MethodPost, "/api/matches", map[string]any{
		"home_team_id": home.ID,
		"away_team_id": away.ID,
		"stadium_id":   stadiums[0].ID,
		"game_mode":    "quick_match",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, created["match_id"])

	rec = doRequest(t, handler, http.MethodGet, "/api/matches/"+created["match_id"], nil)
	match := decodeBody[model.Match](t, rec)
	assert.False(t, match.Completed)
	assert.Equal(t, 90, match.Duration)

	rec = doRequest(t, handler, http.MethodPut, "/api/matches/"+created["match_id"]+"/complete",
		map[string]any{"home_score": 2, "away_score": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/teams/%s/stats", home.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[struct {
		TeamID   string    `json:"team_id"`
		TeamName string    `json:"team_name"`
		Stats    TeamStats `json:"stats"`
	}](t, rec)
	assert.Equal(t, home.Name, body.TeamName)
	assert.Equal(t, 1, body.Stats.Matches)
	assert.Equal(t, 1, body.Stats.Wins)
	assert.Equal(t, 0, body.Stats.Draws)
	assert.Equal(t, 0, body.Stats.Losses)
	assert.Equal(t, 2, body.Stats.GoalsFor)
	assert.Equal(t, 1, body.Stats.GoalsAgainst)

	rec = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/teams/%s/stats", away.ID), nil)
	awayStats := decodeBody[struct {
		Stats TeamStats `json:"stats"`
	}](t, rec)
	assert.Equal(t, 1, awayStats.Stats.Losses)
}

func TestCreateMatchRejectsUnknownTeams(t *testing.T) {
	handler := seededServer(t)
	stadiums := decodeBody[[]model.Stadium](t, doRequest(t, handler, http.MethodGet, "/api/stadiums", nil))
	require.NotEmpty(t, stadiums)

	rec := doRequest(t, handler, http.MethodPost, "/api/matches", map[string]any{
		"home_team_id": "ghost",
		"away_team_id": "ghost-2",
		"stadium_id":   stadiums[0].ID,
		"game_mode":    "quick_match",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Home team not found", body["detail"])
}

func TestCompleteMatchRejectsNegativeScores(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodPut, "/api/matches/any/complete",
		map[string]any{"home_score": -1, "away_score": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAchievementUnlockFlow(t *testing.T) {
	handler := seededServer(t)

	achievements := decodeBody[[]model.Achievement](t,
		doRequest(t, handler, http.MethodGet, "/api/achievements", nil))
	require.Len(t, achievements, 15)

	created := decodeBody[map[string]string](t, doRequest(t, handler, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "email": "bob@example.com"}))
	userID := created["user_id"]

	unlockPath := "/api/users/" + userID + "/achievements/" + achievements[0].ID
	rec := doRequest(t, handler, http.MethodPost, unlockPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Unlocking twice is still a success.
	rec = doRequest(t, handler, http.MethodPost, unlockPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	unlocked := decodeBody[[]model.Achievement](t,
		doRequest(t, handler, http.MethodGet, "/api/users/"+userID+"/achievements", nil))
	require.Len(t, unlocked, 1)
	assert.Equal(t, achievements[0].ID, unlocked[0].ID)

	stats := decodeBody[map[string]any](t,
		doRequest(t, handler, http.MethodGet, "/api/users/"+userID+"/statistics", nil))
	assert.EqualValues(t, 1, stats["achievements_unlocked"])
}

func TestSearchTeams(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/search/teams", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "query is required")

	rec = doRequest(t, handler, http.MethodGet, "/api/search/teams?query=manchester", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[struct {
		Query   string       `json:"query"`
		Results []model.Team `json:"results"`
	}](t, rec)
	assert.Equal(t, "manchester", body.Query)
	require.NotEmpty(t, body.Results)
	for _, team := range body.Results {
		assert.Contains(t, team.Name, "Manchester")
	}
}

func TestSearchPlayers(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/search/players?query=halberg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[struct {
		Query   string      `json:"query"`
		Results []playerHit `json:"results"`
	}](t, rec)
	require.NotEmpty(t, body.Results)
	assert.Equal(t, "Erik Halberg", body.Results[0].Player.Name)
	assert.Equal(t, "Manchester Blue", body.Results[0].Team["name"])

	rec = doRequest(t, handler, http.MethodGet,
		"/api/search/players?query=halberg&position=goalkeeper", nil)
	filtered := decodeBody[struct {
		Results []playerHit `json:"results"`
	}](t, rec)
	assert.Empty(t, filtered.Results)
}

func TestLeagueTable(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/api/leagues/"+url.PathEscape("Premier League")+"/table", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[struct {
		League string       `json:"league"`
		Table  []TableEntry `json:"table"`
	}](t, rec)
	assert.Equal(t, "Premier League", body.League)
	require.NotEmpty(t, body.Table)
	assert.Equal(t, 1, body.Table[0].Position)
	for _, row := range body.Table {
		assert.Zero(t, row.Played, "no matches have been played yet")
	}

	rec = doRequest(t, handler, http.MethodGet, "/api/leagues/Nowhere/table", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddPlayerToTeam(t *testing.T) {
	handler := seededServer(t)
	teams := decodeBody[[]model.Team](t, doRequest(t, handler, http.MethodGet, "/api/teams", nil))
	team := teams[0]

	rec := doRequest(t, handler, http.MethodPost, "/api/teams/"+team.ID+"/players", map[string]any{
		"name": "New Signing", "position": "forward",
		"overall_rating": 77, "pace": 80, "shooting": 78, "passing": 70,
		"defending": 30, "physicality": 70, "age": 23,
		"nationality": "Brazil", "value": 5000000,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	players := decodeBody[[]model.Player](t,
		doRequest(t, handler, http.MethodGet, "/api/teams/"+team.ID+"/players", nil))
	assert.Len(t, players, 26)
}

func TestUpdateAndDeleteTeam(t *testing.T) {
	handler := seededServer(t)
	teams := decodeBody[[]model.Team](t, doRequest(t, handler, http.MethodGet, "/api/teams", nil))
	team := teams[0]

	rec := doRequest(t, handler, http.MethodPut, "/api/teams/"+team.ID,
		map[string]any{"prestige": 10})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeBody[model.Team](t,
		doRequest(t, handler, http.MethodGet, "/api/teams/"+team.ID, nil))
	assert.Equal(t, 10, updated.Prestige)
	assert.Equal(t, team.Name, updated.Name, "omitted fields keep their stored values")

	rec = doRequest(t, handler, http.MethodDelete, "/api/teams/"+team.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/teams/"+team.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodDelete, "/api/teams/"+team.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUniformFlow(t *testing.T) {
	handler := seededServer(t)
	teams := decodeBody[[]model.Team](t, doRequest(t, handler, http.MethodGet, "/api/teams", nil))
	team := teams[0]

	rec := doRequest(t, handler, http.MethodPost, "/api/teams/"+team.ID+"/uniforms", map[string]any{
		"kit_type": "away", "primary_color": "#000000", "secondary_color": "#FFFFFF",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	kits := decodeBody[[]model.UniformKit](t,
		doRequest(t, handler, http.MethodGet, "/api/teams/"+team.ID+"/uniforms", nil))
	require.Len(t, kits, 1)
	assert.Equal(t, "away", kits[0].KitType)
	assert.Equal(t, team.ID, kits[0].TeamID)
}

func TestCareerFlow(t *testing.T) {
	handler := seededServer(t)
	teams := decodeBody[[]model.Team](t, doRequest(t, handler, http.MethodGet, "/api/teams", nil))

	created := decodeBody[map[string]string](t, doRequest(t, handler, http.MethodPost, "/api/users",
		map[string]any{"username": "carol", "email": "carol@example.com"}))
	userID := created["user_id"]

	rec := doRequest(t, handler, http.MethodPost, "/api/careers", map[string]any{
		"user_id": userID, "current_team_id": teams[0].ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	career := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, career["career_id"])

	rec = doRequest(t, handler, http.MethodPut, "/api/careers/"+career["career_id"]+"/advance-season", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/api/users/"+userID+"/career", nil)
	got := decodeBody[model.Career](t, rec)
	assert.Equal(t, 2, got.CurrentSeason)
}

func TestTournamentFlow(t *testing.T) {
	handler := seededServer(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/tournaments", map[string]any{
		"name": "Summer Cup",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, created["tournament_id"])

	rec = doRequest(t, handler, http.MethodGet, "/api/tournaments/"+created["tournament_id"], nil)
	got := decodeBody[model.Tournament](t, rec)
	assert.Equal(t, "Summer Cup", got.Name)
	assert.Equal(t, 1, got.CurrentRound)

	listed := decodeBody[[]model.Tournament](t,
		doRequest(t, handler, http.MethodGet, "/api/tournaments", nil))
	assert.Len(t, listed, 1)
}

func TestLeaguesAndCountries(t *testing.T) {
	handler := seededServer(t)

	leagues := decodeBody[map[string][]string](t,
		doRequest(t, handler, http.MethodGet, "/api/leagues", nil))
	assert.Contains(t, leagues["leagues"], "Premier League")
	assert.Contains(t, leagues["leagues"], "La Liga")

	countries := decodeBody[map[string][]string](t,
		doRequest(t, handler, http.MethodGet, "/api/countries", nil))
	assert.Contains(t, countries["countries"], "England")
	assert.Contains(t, countries["countries"], "Spain")
}
