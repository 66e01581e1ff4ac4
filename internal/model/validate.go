package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate rejects any entity whose fields fall outside the declared
// ranges. Values are never clamped here; out-of-range input is an error.
func Validate(v any) error {
	return validate.Struct(v)
}

func (p *Player) ApplyDefaults() {
	if p.Stamina == 0 {
		p.Stamina = 75
	}
	if p.SkillMoves == 0 {
		p.SkillMoves = 2
	}
	if p.WeakFoot == 0 {
		p.WeakFoot = 3
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
}

func (t *Team) ApplyDefaults() {
	if t.Formation == "" {
		t.Formation = Formation442
	}
	if t.PrimaryColor == "" {
		t.PrimaryColor = "#FF0000"
	}
	if t.SecondaryColor == "" {
		t.SecondaryColor = "#FFFFFF"
	}
	if t.Budget == 0 {
		t.Budget = 10000000
	}
	if t.Prestige == 0 {
		t.Prestige = 5
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	for i := range t.Players {
		t.Players[i].ApplyDefaults()
	}
}

func (s *Stadium) ApplyDefaults() {
	if s.SurfaceType == "" {
		s.SurfaceType = "grass"
	}
	if s.RoofType == "" {
		s.RoofType = "open"
	}
	if len(s.WeatherConditions) == 0 {
		s.WeatherConditions = []string{"sunny", "cloudy", "rainy"}
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
}

func (u *UserProfile) ApplyDefaults() {
	if u.Level == 0 {
		u.Level = 1
	}
	if u.PreferredFormation == "" {
		u.PreferredFormation = Formation442
	}
	if u.CareerTeams == nil {
		u.CareerTeams = []string{}
	}
	if u.Achievements == nil {
		u.Achievements = []string{}
	}
	if u.ControlSettings == nil {
		u.ControlSettings = map[string]any{}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.LastLogin.IsZero() {
		u.LastLogin = u.CreatedAt
	}
}

func (m *Match) ApplyDefaults() {
	if m.GameMode == "" {
		m.GameMode = ModeQuickMatch
	}
	if m.Duration == 0 {
		m.Duration = 90
	}
	if m.Difficulty == 0 {
		m.Difficulty = 3
	}
	if m.Weather == "" {
		m.Weather = "sunny"
	}
	if m.TimeOfDay == "" {
		m.TimeOfDay = "day"
	}
	if m.MatchEvents == nil {
		m.MatchEvents = []MatchEvent{}
	}
	if m.Statistics == nil {
		m.Statistics = map[string]any{}
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
}

func (t *Tournament) ApplyDefaults() {
	if t.TournamentType == "" {
		t.TournamentType = "cup"
	}
	if t.CurrentRound == 0 {
		t.CurrentRound = 1
	}
	if t.TotalRounds == 0 {
		t.TotalRounds = 4
	}
	if t.PrizeMoney == 0 {
		t.PrizeMoney = 1000000
	}
	if t.Status == "" {
		t.Status = "upcoming"
	}
	if t.ParticipatingTeams == nil {
		t.ParticipatingTeams = []string{}
	}
	if t.Matches == nil {
		t.Matches = []string{}
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
}

func (c *Career) ApplyDefaults() {
	if c.CurrentSeason == 0 {
		c.CurrentSeason = 1
	}
	if c.Reputation == 0 {
		c.Reputation = 1
	}
	if c.Budget == 0 {
		c.Budget = 5000000
	}
	if c.Objectives == nil {
		c.Objectives = []map[string]any{}
	}
	if c.SeasonStats == nil {
		c.SeasonStats = map[string]any{}
	}
	if c.TransferHistory == nil {
		c.TransferHistory = []map[string]any{}
	}
	if c.ContractEndDate.IsZero() {
		c.ContractEndDate = time.Now().UTC().AddDate(3, 0, 0)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
}

func (a *Achievement) ApplyDefaults() {
	if a.RewardXP == 0 {
		a.RewardXP = 100
	}
	if a.RewardCoins == 0 {
		a.RewardCoins = 1000
	}
	if a.Rarity == "" {
		a.Rarity = "common"
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
}

func (k *UniformKit) ApplyDefaults() {
	if k.KitType == "" {
		k.KitType = "home"
	}
	if k.Pattern == "" {
		k.Pattern = "solid"
	}
	if k.Sponsor == "" {
		k.Sponsor = "Generic"
	}
	if k.NumberFont == "" {
		k.NumberFont = "standard"
	}
	if k.CustomDesign == nil {
		k.CustomDesign = map[string]any{}
	}
	if k.CreatedAt.IsZero() {
		k.CreatedAt = time.Now().UTC()
	}
}
