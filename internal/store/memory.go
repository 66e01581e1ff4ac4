package store

import (
	"sort"
	"strings"
	"sync"

	"football-master-app/internal/model"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu           sync.RWMutex
	teams        map[string]model.Team
	stadiums     map[string]model.Stadium
	users        map[string]model.UserProfile
	matches      map[string]model.Match
	tournaments  map[string]model.Tournament
	careers      map[string]model.Career
	achievements map[string]model.Achievement
	uniforms     map[string]model.UniformKit
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams:        make(map[string]model.Team),
		stadiums:     make(map[string]model.Stadium),
		users:        make(map[string]model.UserProfile),
		matches:      make(map[string]model.Match),
		tournaments:  make(map[string]model.Tournament),
		careers:      make(map[string]model.Career),
		achievements: make(map[string]model.Achievement),
		uniforms:     make(map[string]model.UniformKit),
	}
}

func (s *MemoryStore) CreateTeam(team model.Team) (model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	for i := range team.Players {
		if team.Players[i].ID == "" {
			team.Players[i].ID = uuid.NewString()
		}
	}
	s.teams[team.ID] = team
	return team, nil
}

func (s *MemoryStore) GetTeam(id string) (model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

func (s *MemoryStore) ListTeams(league string, skip, limit int) []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make([]model.Team, 0, len(s.teams))
	for _, t := range s.teams {
		if league != "" && t.League != league {
			continue
		}
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return paginate(teams, skip, limit)
}

func (s *MemoryStore) SearchTeams(query string, limit int) []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	teams := []model.Team{}
	for _, t := range s.teams {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.League), q) ||
			strings.Contains(strings.ToLower(t.Country), q) {
			teams = append(teams, t)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return paginate(teams, 0, limit)
}

func (s *MemoryStore) UpdateTeam(team model.Team) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[team.ID]; !ok {
		return false, nil
	}
	s.teams[team.ID] = team
	return true, nil
}

func (s *MemoryStore) DeleteTeam(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return false, nil
	}
	delete(s.teams, id)
	return true, nil
}

func (s *MemoryStore) AddPlayerToTeam(teamID string, player model.Player) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, ok := s.teams[teamID]
	if !ok {
		return false, nil
	}
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	team.Players = append(team.Players, player)
	s.teams[teamID] = team
	return true, nil
}

func (s *MemoryStore) Leagues() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return distinctTeamField(s.teams, func(t model.Team) string { return t.League })
}

func (s *MemoryStore) Countries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return distinctTeamField(s.teams, func(t model.Team) string { return t.Country })
}

func (s *MemoryStore) CountTeams() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.teams), nil
}

func (s *MemoryStore) CreateStadium(stadium model.Stadium) (model.Stadium, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stadium.ID == "" {
		stadium.ID = uuid.NewString()
	}
	s.stadiums[stadium.ID] = stadium
	return stadium, nil
}

func (s *MemoryStore) GetStadium(id string) (model.Stadium, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stadiums[id]
	return st, ok
}

func (s *MemoryStore) ListStadiums(skip, limit int) []model.Stadium {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stadiums := make([]model.Stadium, 0, len(s.stadiums))
	for _, st := range s.stadiums {
		stadiums = append(stadiums, st)
	}
	sort.Slice(stadiums, func(i, j int) bool { return stadiums[i].Name < stadiums[j].Name })
	return paginate(stadiums, skip, limit)
}

func (s *MemoryStore) CountStadiums() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.stadiums), nil
}

func (s *MemoryStore) CreateUser(profile model.UserProfile) (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	s.users[profile.ID] = profile
	return profile, nil
}

func (s *MemoryStore) GetUser(id string) (model.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *MemoryStore) GetUserByUsername(username string) (model.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return model.UserProfile{}, false
}

func (s *MemoryStore) UpdateUserSettings(id string, settings map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false, nil
	}
	u.ControlSettings = settings
	s.users[id] = u
	return true, nil
}

func (s *MemoryStore) UnlockAchievement(userID, achievementID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return false, nil
	}
	for _, id := range u.Achievements {
		if id == achievementID {
			return true, nil
		}
	}
	u.Achievements = append(u.Achievements, achievementID)
	s.users[userID] = u
	return true, nil
}

func (s *MemoryStore) CreateMatch(match model.Match) (model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	s.matches[match.ID] = match
	return match, nil
}

func (s *MemoryStore) GetMatch(id string) (model.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	return m, ok
}

func (s *MemoryStore) ListMatchesByTeam(teamID string) []model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []model.Match{}
	for _, m := range s.matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			matches = append(matches, m)
		}
	}
	sortMatches(matches)
	return matches
}

func (s *MemoryStore) ListMatchesByUser(userID string) []model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []model.Match{}
	for _, m := range s.matches {
		if m.PlayerID == userID {
			matches = append(matches, m)
		}
	}
	sortMatches(matches)
	return matches
}

func (s *MemoryStore) CompleteMatch(id string, result model.MatchResult) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return false, nil
	}
	applyMatchResult(&m, result)
	s.matches[id] = m
	return true, nil
}

func (s *MemoryStore) CreateTournament(tournament model.Tournament) (model.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	s.tournaments[tournament.ID] = tournament
	return tournament, nil
}

func (s *MemoryStore) GetTournament(id string) (model.Tournament, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tournaments[id]
	return t, ok
}

func (s *MemoryStore) ListTournaments(skip, limit int) []model.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tournaments := make([]model.Tournament, 0, len(s.tournaments))
	for _, t := range s.tournaments {
		tournaments = append(tournaments, t)
	}
	sort.Slice(tournaments, func(i, j int) bool {
		if tournaments[i].CreatedAt.Equal(tournaments[j].CreatedAt) {
			return tournaments[i].ID < tournaments[j].ID
		}
		return tournaments[i].CreatedAt.Before(tournaments[j].CreatedAt)
	})
	return paginate(tournaments, skip, limit)
}

func (s *MemoryStore) CreateCareer(career model.Career) (model.Career, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if career.ID == "" {
		career.ID = uuid.NewString()
	}
	s.careers[career.ID] = career
	return career, nil
}

func (s *MemoryStore) GetCareerByUser(userID string) (model.Career, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.careers {
		if c.UserID == userID {
			return c, true
		}
	}
	return model.Career{}, false
}

func (s *MemoryStore) AdvanceCareerSeason(careerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.careers[careerID]
	if !ok {
		return false, nil
	}
	c.CurrentSeason++
	s.careers[careerID] = c
	return true, nil
}

func (s *MemoryStore) CreateAchievement(achievement model.Achievement) (model.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if achievement.ID == "" {
		achievement.ID = uuid.NewString()
	}
	s.achievements[achievement.ID] = achievement
	return achievement, nil
}

func (s *MemoryStore) ListAchievements(skip, limit int) []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	achievements := make([]model.Achievement, 0, len(s.achievements))
	for _, a := range s.achievements {
		achievements = append(achievements, a)
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].Name < achievements[j].Name })
	return paginate(achievements, skip, limit)
}

func (s *MemoryStore) ListAchievementsByIDs(ids []string) []model.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	achievements := []model.Achievement{}
	for _, a := range s.achievements {
		if wanted[a.ID] {
			achievements = append(achievements, a)
		}
	}
	sort.Slice(achievements, func(i, j int) bool { return achievements[i].Name < achievements[j].Name })
	return achievements
}

func (s *MemoryStore) CountAchievements() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.achievements), nil
}

func (s *MemoryStore) CreateUniform(kit model.UniformKit) (model.UniformKit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if kit.ID == "" {
		kit.ID = uuid.NewString()
	}
	s.uniforms[kit.ID] = kit
	return kit, nil
}

func (s *MemoryStore) ListUniformsByTeam(teamID string) []model.UniformKit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kits := []model.UniformKit{}
	for _, k := range s.uniforms {
		if k.TeamID == teamID {
			kits = append(kits, k)
		}
	}
	sort.Slice(kits, func(i, j int) bool { return kits[i].KitType < kits[j].KitType })
	return kits
}

func (s *MemoryStore) Close() error { return nil }

func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func sortMatches(matches []model.Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
}

func applyMatchResult(m *model.Match, result model.MatchResult) {
	m.Completed = true
	m.HomeScore = result.HomeScore
	m.AwayScore = result.AwayScore
	if result.Statistics != nil {
		m.Statistics = result.Statistics
	}
	if result.Events != nil {
		m.MatchEvents = result.Events
	}
}

func distinctTeamField(teams map[string]model.Team, field func(model.Team) string) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, t := range teams {
		v := field(t)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
