package model

import (
	"time"
)

type Position string
type Formation string
type GameMode string

const (
	Goalkeeper Position = "goalkeeper"
	Defender   Position = "defender"
	Midfielder Position = "midfielder"
	Forward    Position = "forward"

	Formation442  Formation = "4-4-2"
	Formation433  Formation = "4-3-3"
	Formation352  Formation = "3-5-2"
	Formation4231 Formation = "4-2-3-1"
	Formation541  Formation = "5-4-1"

	ModeQuickMatch GameMode = "quick_match"
	ModeCareer     GameMode = "career"
	ModeTournament GameMode = "tournament"
	ModeFutsal     GameMode = "futsal"
	ModeOnline     GameMode = "online"
)

type Player struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name" validate:"required"`
	Position      Position  `json:"position" bson:"position" validate:"required,oneof=goalkeeper defender midfielder forward"`
	OverallRating int       `json:"overall_rating" bson:"overall_rating" validate:"min=1,max=99"`
	Pace          int       `json:"pace" bson:"pace" validate:"min=1,max=99"`
	Shooting      int       `json:"shooting" bson:"shooting" validate:"min=1,max=99"`
	Passing       int       `json:"passing" bson:"passing" validate:"min=1,max=99"`
	Defending     int       `json:"defending" bson:"defending" validate:"min=1,max=99"`
	Physicality   int       `json:"physicality" bson:"physicality" validate:"min=1,max=99"`
	Age           int       `json:"age" bson:"age" validate:"min=16,max=40"`
	Nationality   string    `json:"nationality" bson:"nationality" validate:"required"`
	Value         int       `json:"value" bson:"value" validate:"min=0"`
	Stamina       int       `json:"stamina" bson:"stamina" validate:"min=1,max=99"`
	SkillMoves    int       `json:"skill_moves" bson:"skill_moves" validate:"min=1,max=5"`
	WeakFoot      int       `json:"weak_foot" bson:"weak_foot" validate:"min=1,max=5"`
	IsCustom      bool      `json:"is_custom" bson:"is_custom"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

type Team struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name" validate:"required"`
	ShortName       string    `json:"short_name" bson:"short_name" validate:"required"`
	Country         string    `json:"country" bson:"country" validate:"required"`
	League          string    `json:"league" bson:"league" validate:"required"`
	OverallRating   int       `json:"overall_rating" bson:"overall_rating" validate:"min=1,max=99"`
	AttackRating    int       `json:"attack_rating" bson:"attack_rating" validate:"min=1,max=99"`
	MidfieldRating  int       `json:"midfield_rating" bson:"midfield_rating" validate:"min=1,max=99"`
	DefenseRating   int       `json:"defense_rating" bson:"defense_rating" validate:"min=1,max=99"`
	Players         []Player  `json:"players" bson:"players" validate:"dive"`
	Formation       Formation `json:"formation" bson:"formation" validate:"oneof=4-4-2 4-3-3 3-5-2 4-2-3-1 5-4-1"`
	PrimaryColor    string    `json:"primary_color" bson:"primary_color"`
	SecondaryColor  string    `json:"secondary_color" bson:"secondary_color"`
	StadiumName     string    `json:"stadium_name" bson:"stadium_name" validate:"required"`
	StadiumCapacity int       `json:"stadium_capacity" bson:"stadium_capacity" validate:"min=1000,max=100000"`
	Budget          int       `json:"budget" bson:"budget" validate:"min=0"`
	Prestige        int       `json:"prestige" bson:"prestige" validate:"min=1,max=10"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

type Stadium struct {
	ID                string    `json:"id" bson:"id"`
	Name              string    `json:"name" bson:"name" validate:"required"`
	Capacity          int       `json:"capacity" bson:"capacity" validate:"min=1000,max=100000"`
	Country           string    `json:"country" bson:"country" validate:"required"`
	City              string    `json:"city" bson:"city" validate:"required"`
	SurfaceType       string    `json:"surface_type" bson:"surface_type"`
	RoofType          string    `json:"roof_type" bson:"roof_type"`
	AtmosphereRating  int       `json:"atmosphere_rating" bson:"atmosphere_rating" validate:"min=1,max=10"`
	WeatherConditions []string  `json:"weather_conditions" bson:"weather_conditions"`
	UniqueFeatures    []string  `json:"unique_features" bson:"unique_features"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
}

type UserProfile struct {
	ID                 string         `json:"id" bson:"id"`
	Username           string         `json:"username" bson:"username" validate:"required"`
	Email              string         `json:"email" bson:"email" validate:"required,email"`
	Level              int            `json:"level" bson:"level" validate:"min=1"`
	Experience         int            `json:"experience" bson:"experience" validate:"min=0"`
	FavoriteTeamID     string         `json:"favorite_team_id,omitempty" bson:"favorite_team_id,omitempty"`
	CareerTeams        []string       `json:"career_teams" bson:"career_teams"`
	Achievements       []string       `json:"achievements" bson:"achievements"`
	TotalMatches       int            `json:"total_matches" bson:"total_matches" validate:"min=0"`
	TotalWins          int            `json:"total_wins" bson:"total_wins" validate:"min=0"`
	TotalDraws         int            `json:"total_draws" bson:"total_draws" validate:"min=0"`
	TotalLosses        int            `json:"total_losses" bson:"total_losses" validate:"min=0"`
	TotalGoalsScored   int            `json:"total_goals_scored" bson:"total_goals_scored" validate:"min=0"`
	TotalGoalsConceded int            `json:"total_goals_conceded" bson:"total_goals_conceded" validate:"min=0"`
	PreferredFormation Formation      `json:"preferred_formation" bson:"preferred_formation" validate:"oneof=4-4-2 4-3-3 3-5-2 4-2-3-1 5-4-1"`
	ControlSettings    map[string]any `json:"control_settings" bson:"control_settings"`
	CreatedAt          time.Time      `json:"created_at" bson:"created_at"`
	LastLogin          time.Time      `json:"last_login" bson:"last_login"`
}

type MatchEvent map[string]any

type Match struct {
	ID          string         `json:"id" bson:"id"`
	HomeTeamID  string         `json:"home_team_id" bson:"home_team_id" validate:"required"`
	AwayTeamID  string         `json:"away_team_id" bson:"away_team_id" validate:"required"`
	HomeScore   int            `json:"home_score" bson:"home_score" validate:"min=0"`
	AwayScore   int            `json:"away_score" bson:"away_score" validate:"min=0"`
	StadiumID   string         `json:"stadium_id" bson:"stadium_id" validate:"required"`
	GameMode    GameMode       `json:"game_mode" bson:"game_mode" validate:"required,oneof=quick_match career tournament futsal online"`
	Duration    int            `json:"duration" bson:"duration" validate:"min=1,max=90"`
	Difficulty  int            `json:"difficulty" bson:"difficulty" validate:"min=1,max=5"`
	Weather     string         `json:"weather" bson:"weather"`
	TimeOfDay   string         `json:"time_of_day" bson:"time_of_day"`
	Completed   bool           `json:"completed" bson:"completed"`
	PlayerID    string         `json:"player_id,omitempty" bson:"player_id,omitempty"`
	MatchEvents []MatchEvent   `json:"match_events" bson:"match_events"`
	Statistics  map[string]any `json:"statistics" bson:"statistics"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

// MatchResult is the payload accepted by the complete-match operation.
type MatchResult struct {
	HomeScore  int            `json:"home_score"`
	AwayScore  int            `json:"away_score"`
	Statistics map[string]any `json:"statistics"`
	Events     []MatchEvent   `json:"events"`
}

type Tournament struct {
	ID                 string    `json:"id" bson:"id"`
	Name               string    `json:"name" bson:"name" validate:"required"`
	TournamentType     string    `json:"tournament_type" bson:"tournament_type"`
	ParticipatingTeams []string  `json:"participating_teams" bson:"participating_teams"`
	CurrentRound       int       `json:"current_round" bson:"current_round" validate:"min=1,ltefield=TotalRounds"`
	TotalRounds        int       `json:"total_rounds" bson:"total_rounds" validate:"min=1"`
	Matches            []string  `json:"matches" bson:"matches"`
	WinnerID           string    `json:"winner_id,omitempty" bson:"winner_id,omitempty"`
	PrizeMoney         int       `json:"prize_money" bson:"prize_money" validate:"min=0"`
	Status             string    `json:"status" bson:"status"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
}

type Career struct {
	ID              string           `json:"id" bson:"id"`
	UserID          string           `json:"user_id" bson:"user_id" validate:"required"`
	CurrentTeamID   string           `json:"current_team_id" bson:"current_team_id" validate:"required"`
	CurrentSeason   int              `json:"current_season" bson:"current_season" validate:"min=1"`
	Reputation      int              `json:"reputation" bson:"reputation" validate:"min=1,max=10"`
	Budget          int              `json:"budget" bson:"budget" validate:"min=0"`
	Objectives      []map[string]any `json:"objectives" bson:"objectives"`
	SeasonStats     map[string]any   `json:"season_stats" bson:"season_stats"`
	TransferHistory []map[string]any `json:"transfer_history" bson:"transfer_history"`
	ContractEndDate time.Time        `json:"contract_end_date" bson:"contract_end_date" validate:"required"`
	CreatedAt       time.Time        `json:"created_at" bson:"created_at"`
}

type Achievement struct {
	ID              string         `json:"id" bson:"id"`
	Name            string         `json:"name" bson:"name" validate:"required"`
	Description     string         `json:"description" bson:"description" validate:"required"`
	Icon            string         `json:"icon" bson:"icon"`
	Category        string         `json:"category" bson:"category" validate:"required"`
	Requirement     map[string]any `json:"requirement" bson:"requirement" validate:"required"`
	RewardXP        int            `json:"reward_xp" bson:"reward_xp" validate:"min=0"`
	RewardCoins     int            `json:"reward_coins" bson:"reward_coins" validate:"min=0"`
	Rarity          string         `json:"rarity" bson:"rarity"`
	UnlockCondition string         `json:"unlock_condition" bson:"unlock_condition" validate:"required"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
}

type UniformKit struct {
	ID             string         `json:"id" bson:"id"`
	TeamID         string         `json:"team_id" bson:"team_id" validate:"required"`
	KitType        string         `json:"kit_type" bson:"kit_type" validate:"oneof=home away third goalkeeper"`
	PrimaryColor   string         `json:"primary_color" bson:"primary_color" validate:"required"`
	SecondaryColor string         `json:"secondary_color" bson:"secondary_color" validate:"required"`
	AccentColor    string         `json:"accent_color" bson:"accent_color"`
	Pattern        string         `json:"pattern" bson:"pattern"`
	Sponsor        string         `json:"sponsor" bson:"sponsor"`
	NumberFont     string         `json:"number_font" bson:"number_font"`
	CustomDesign   map[string]any `json:"custom_design" bson:"custom_design"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
}
