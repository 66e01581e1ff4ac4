package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"football-master-app/internal/model"

	"github.com/google/uuid"
)

// dialect abstracts the two SQL backends over the same (id, data) document
// layout. Queries are written with ? placeholders and rewritten per dialect.
type dialect struct {
	name     string
	dataType string
	noLimit  string
	rebind   func(query string) string
	jsonText func(key string) string
}

var postgresDialect = dialect{
	name:     "postgres",
	dataType: "JSONB",
	noLimit:  "ALL",
	rebind: func(query string) string {
		var b strings.Builder
		n := 0
		for _, r := range query {
			if r == '?' {
				n++
				b.WriteString("$" + strconv.Itoa(n))
				continue
			}
			b.WriteRune(r)
		}
		return b.String()
	},
	jsonText: func(key string) string {
		return "data->>'" + key + "'"
	},
}

var sqliteDialect = dialect{
	name:     "sqlite",
	dataType: "TEXT",
	noLimit:  "-1",
	rebind:   func(query string) string { return query },
	jsonText: func(key string) string {
		return "json_extract(data, '$." + key + "')"
	},
}

var docTables = []string{
	"teams",
	"stadiums",
	"user_profiles",
	"matches",
	"tournaments",
	"careers",
	"achievements",
	"uniform_kits",
}

type sqlStore struct {
	db *sql.DB
	d  dialect
}

func newSQLStore(db *sql.DB, d dialect) (*sqlStore, error) {
	for _, table := range docTables {
		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id TEXT PRIMARY KEY, data %s NOT NULL)", table, d.dataType)
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return &sqlStore{db: db, d: d}, nil
}

func (s *sqlStore) insertDoc(table, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", table, err)
	}
	_, err = s.db.Exec(s.d.rebind("INSERT INTO "+table+" (id, data) VALUES (?, ?)"), id, raw)
	return err
}

func (s *sqlStore) getDoc(table, id string, dest any) bool {
	var raw []byte
	err := s.db.QueryRow(s.d.rebind("SELECT data FROM "+table+" WHERE id = ?"), id).Scan(&raw)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("store: get %s %s: %v", table, id, err)
		}
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *sqlStore) replaceDoc(table, id string, doc any) (bool, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("encode %s document: %w", table, err)
	}
	res, err := s.db.Exec(s.d.rebind("UPDATE "+table+" SET data = ? WHERE id = ?"), raw, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *sqlStore) deleteDoc(table, id string) (bool, error) {
	res, err := s.db.Exec(s.d.rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *sqlStore) countDocs(table string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	return n, err
}

// queryDocs runs a filtered, ordered scan over one table and decodes each
// data column through decode. where may be empty; limit 0 means no cap.
func (s *sqlStore) queryDocs(table, where, orderKey string, skip, limit int, args []any, decode func([]byte)) {
	var b strings.Builder
	b.WriteString("SELECT data FROM " + table)
	if where != "" {
		b.WriteString(" WHERE " + where)
	}
	b.WriteString(" ORDER BY " + s.d.jsonText(orderKey) + ", id")
	// SQLite rejects OFFSET without LIMIT, so a skip always gets a
	// LIMIT clause, unbounded when no cap was asked for.
	if limit > 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(limit))
	} else if skip > 0 {
		b.WriteString(" LIMIT " + s.d.noLimit)
	}
	if skip > 0 {
		b.WriteString(" OFFSET " + strconv.Itoa(skip))
	}
	rows, err := s.db.Query(s.d.rebind(b.String()), args...)
	if err != nil {
		log.Printf("store: query %s: %v", table, err)
		return
	}
	defer rows.Close()
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			continue
		}
		decode(raw)
	}
}

func (s *sqlStore) CreateTeam(team model.Team) (model.Team, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	for i := range team.Players {
		if team.Players[i].ID == "" {
			team.Players[i].ID = uuid.NewString()
		}
	}
	if err := s.insertDoc("teams", team.ID, team); err != nil {
		return model.Team{}, err
	}
	return team, nil
}

func (s *sqlStore) GetTeam(id string) (model.Team, bool) {
	var team model.Team
	ok := s.getDoc("teams", id, &team)
	return team, ok
}

func (s *sqlStore) ListTeams(league string, skip, limit int) []model.Team {
	where := ""
	args := []any{}
	if league != "" {
		where = s.d.jsonText("league") + " = ?"
		args = append(args, league)
	}
	teams := []model.Team{}
	s.queryDocs("teams", where, "name", skip, limit, args, func(raw []byte) {
		var t model.Team
		if json.Unmarshal(raw, &t) == nil {
			teams = append(teams, t)
		}
	})
	return teams
}

func (s *sqlStore) SearchTeams(query string, limit int) []model.Team {
	pattern := "%" + strings.ToLower(query) + "%"
	where := fmt.Sprintf("lower(%s) LIKE ? OR lower(%s) LIKE ? OR lower(%s) LIKE ?",
		s.d.jsonText("name"), s.d.jsonText("league"), s.d.jsonText("country"))
	teams := []model.Team{}
	s.queryDocs("teams", where, "name", 0, limit, []any{pattern, pattern, pattern}, func(raw []byte) {
		var t model.Team
		if json.Unmarshal(raw, &t) == nil {
			teams = append(teams, t)
		}
	})
	return teams
}

func (s *sqlStore) UpdateTeam(team model.Team) (bool, error) {
	return s.replaceDoc("teams", team.ID, team)
}

func (s *sqlStore) DeleteTeam(id string) (bool, error) {
	return s.deleteDoc("teams", id)
}

func (s *sqlStore) AddPlayerToTeam(teamID string, player model.Player) (bool, error) {
	team, ok := s.GetTeam(teamID)
	if !ok {
		return false, nil
	}
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	team.Players = append(team.Players, player)
	return s.replaceDoc("teams", teamID, team)
}

func (s *sqlStore) Leagues() []string {
	return s.distinctTeamValues("league")
}

func (s *sqlStore) Countries() []string {
	return s.distinctTeamValues("country")
}

func (s *sqlStore) distinctTeamValues(key string) []string {
	expr := s.d.jsonText(key)
	rows, err := s.db.Query("SELECT DISTINCT " + expr + " FROM teams ORDER BY 1")
	if err != nil {
		return []string{}
	}
	defer rows.Close()
	values := []string{}
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			continue
		}
		if v.Valid && v.String != "" {
			values = append(values, v.String)
		}
	}
	return values
}

func (s *sqlStore) CountTeams() (int, error) {
	return s.countDocs("teams")
}

func (s *sqlStore) CreateStadium(stadium model.Stadium) (model.Stadium, error) {
	if stadium.ID == "" {
		stadium.ID = uuid.NewString()
	}
	if err := s.insertDoc("stadiums", stadium.ID, stadium); err != nil {
		return model.Stadium{}, err
	}
	return stadium, nil
}

func (s *sqlStore) GetStadium(id string) (model.Stadium, bool) {
	var stadium model.Stadium
	ok := s.getDoc("stadiums", id, &stadium)
	return stadium, ok
}

func (s *sqlStore) ListStadiums(skip, limit int) []model.Stadium {
	stadiums := []model.Stadium{}
	s.queryDocs("stadiums", "", "name", skip, limit, nil, func(raw []byte) {
		var st model.Stadium
		if json.Unmarshal(raw, &st) == nil {
			stadiums = append(stadiums, st)
		}
	})
	return stadiums
}

func (s *sqlStore) CountStadiums() (int, error) {
	return s.countDocs("stadiums")
}

func (s *sqlStore) CreateUser(profile model.UserProfile) (model.UserProfile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if err := s.insertDoc("user_profiles", profile.ID, profile); err != nil {
		return model.UserProfile{}, err
	}
	return profile, nil
}

func (s *sqlStore) GetUser(id string) (model.UserProfile, bool) {
	var profile model.UserProfile
	ok := s.getDoc("user_profiles", id, &profile)
	return profile, ok
}

func (s *sqlStore) GetUserByUsername(username string) (model.UserProfile, bool) {
	where := "lower(" + s.d.jsonText("username") + ") = ?"
	var raw []byte
	err := s.db.QueryRow(s.d.rebind("SELECT data FROM user_profiles WHERE "+where+" LIMIT 1"),
		strings.ToLower(username)).Scan(&raw)
	if err != nil {
		return model.UserProfile{}, false
	}
	var profile model.UserProfile
	if json.Unmarshal(raw, &profile) != nil {
		return model.UserProfile{}, false
	}
	return profile, true
}

func (s *sqlStore) UpdateUserSettings(id string, settings map[string]any) (bool, error) {
	profile, ok := s.GetUser(id)
	if !ok {
		return false, nil
	}
	profile.ControlSettings = settings
	return s.replaceDoc("user_profiles", id, profile)
}

func (s *sqlStore) UnlockAchievement(userID, achievementID string) (bool, error) {
	profile, ok := s.GetUser(userID)
	if !ok {
		return false, nil
	}
	for _, id := range profile.Achievements {
		if id == achievementID {
			return true, nil
		}
	}
	profile.Achievements = append(profile.Achievements, achievementID)
	return s.replaceDoc("user_profiles", userID, profile)
}

func (s *sqlStore) CreateMatch(match model.Match) (model.Match, error) {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if err := s.insertDoc("matches", match.ID, match); err != nil {
		return model.Match{}, err
	}
	return match, nil
}

func (s *sqlStore) GetMatch(id string) (model.Match, bool) {
	var match model.Match
	ok := s.getDoc("matches", id, &match)
	return match, ok
}

func (s *sqlStore) ListMatchesByTeam(teamID string) []model.Match {
	where := s.d.jsonText("home_team_id") + " = ? OR " + s.d.jsonText("away_team_id") + " = ?"
	return s.listMatches(where, []any{teamID, teamID})
}

func (s *sqlStore) ListMatchesByUser(userID string) []model.Match {
	return s.listMatches(s.d.jsonText("player_id")+" = ?", []any{userID})
}

func (s *sqlStore) listMatches(where string, args []any) []model.Match {
	matches := []model.Match{}
	s.queryDocs("matches", where, "created_at", 0, 0, args, func(raw []byte) {
		var m model.Match
		if json.Unmarshal(raw, &m) == nil {
			matches = append(matches, m)
		}
	})
	return matches
}

func (s *sqlStore) CompleteMatch(id string, result model.MatchResult) (bool, error) {
	match, ok := s.GetMatch(id)
	if !ok {
		return false, nil
	}
	applyMatchResult(&match, result)
	return s.replaceDoc("matches", id, match)
}

func (s *sqlStore) CreateTournament(tournament model.Tournament) (model.Tournament, error) {
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if err := s.insertDoc("tournaments", tournament.ID, tournament); err != nil {
		return model.Tournament{}, err
	}
	return tournament, nil
}

func (s *sqlStore) GetTournament(id string) (model.Tournament, bool) {
	var tournament model.Tournament
	ok := s.getDoc("tournaments", id, &tournament)
	return tournament, ok
}

func (s *sqlStore) ListTournaments(skip, limit int) []model.Tournament {
	tournaments := []model.Tournament{}
	s.queryDocs("tournaments", "", "created_at", skip, limit, nil, func(raw []byte) {
		var t model.Tournament
		if json.Unmarshal(raw, &t) == nil {
			tournaments = append(tournaments, t)
		}
	})
	return tournaments
}

func (s *sqlStore) CreateCareer(career model.Career) (model.Career, error) {
	if career.ID == "" {
		career.ID = uuid.NewString()
	}
	if err := s.insertDoc("careers", career.ID, career); err != nil {
		return model.Career{}, err
	}
	return career, nil
}

func (s *sqlStore) GetCareerByUser(userID string) (model.Career, bool) {
	var raw []byte
	err := s.db.QueryRow(s.d.rebind("SELECT data FROM careers WHERE "+s.d.jsonText("user_id")+" = ? LIMIT 1"),
		userID).Scan(&raw)
	if err != nil {
		return model.Career{}, false
	}
	var career model.Career
	if json.Unmarshal(raw, &career) != nil {
		return model.Career{}, false
	}
	return career, true
}

func (s *sqlStore) AdvanceCareerSeason(careerID string) (bool, error) {
	var career model.Career
	if !s.getDoc("careers", careerID, &career) {
		return false, nil
	}
	career.CurrentSeason++
	return s.replaceDoc("careers", careerID, career)
}

func (s *sqlStore) CreateAchievement(achievement model.Achievement) (model.Achievement, error) {
	if achievement.ID == "" {
		achievement.ID = uuid.NewString()
	}
	if err := s.insertDoc("achievements", achievement.ID, achievement); err != nil {
		return model.Achievement{}, err
	}
	return achievement, nil
}

func (s *sqlStore) ListAchievements(skip, limit int) []model.Achievement {
	achievements := []model.Achievement{}
	s.queryDocs("achievements", "", "name", skip, limit, nil, func(raw []byte) {
		var a model.Achievement
		if json.Unmarshal(raw, &a) == nil {
			achievements = append(achievements, a)
		}
	})
	return achievements
}

func (s *sqlStore) ListAchievementsByIDs(ids []string) []model.Achievement {
	if len(ids) == 0 {
		return []model.Achievement{}
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	where := "id IN (" + strings.Join(placeholders, ", ") + ")"
	achievements := []model.Achievement{}
	s.queryDocs("achievements", where, "name", 0, 0, args, func(raw []byte) {
		var a model.Achievement
		if json.Unmarshal(raw, &a) == nil {
			achievements = append(achievements, a)
		}
	})
	return achievements
}

func (s *sqlStore) CountAchievements() (int, error) {
	return s.countDocs("achievements")
}

func (s *sqlStore) CreateUniform(kit model.UniformKit) (model.UniformKit, error) {
	if kit.ID == "" {
		kit.ID = uuid.NewString()
	}
	if err := s.insertDoc("uniform_kits", kit.ID, kit); err != nil {
		return model.UniformKit{}, err
	}
	return kit, nil
}

func (s *sqlStore) ListUniformsByTeam(teamID string) []model.UniformKit {
	kits := []model.UniformKit{}
	s.queryDocs("uniform_kits", s.d.jsonText("team_id")+" = ?", "kit_type", 0, 0, []any{teamID}, func(raw []byte) {
		var k model.UniformKit
		if json.Unmarshal(raw, &k) == nil {
			kits = append(kits, k)
		}
	})
	return kits
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
