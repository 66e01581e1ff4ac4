package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"football-master-app/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoOpTimeout = 10 * time.Second

// MongoStore keeps one collection per entity type. Documents carry the
// application-level id field, Mongo's _id stays internal.
type MongoStore struct {
	client       *mongo.Client
	teams        *mongo.Collection
	stadiums     *mongo.Collection
	users        *mongo.Collection
	matches      *mongo.Collection
	tournaments  *mongo.Collection
	careers      *mongo.Collection
	achievements *mongo.Collection
	uniforms     *mongo.Collection
}

func NewMongoStore(uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:       client,
		teams:        db.Collection("teams"),
		stadiums:     db.Collection("stadiums"),
		users:        db.Collection("user_profiles"),
		matches:      db.Collection("matches"),
		tournaments:  db.Collection("tournaments"),
		careers:      db.Collection("careers"),
		achievements: db.Collection("achievements"),
		uniforms:     db.Collection("uniform_kits"),
	}, nil
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), mongoOpTimeout)
}

// logReadErr surfaces infrastructure failures on read paths that report
// only found/not-found to callers. Missing documents are not failures.
func logReadErr(op string, err error) {
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("store: %s: %v", op, err)
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, op string, filter any, opts *options.FindOptions) []T {
	out := []T{}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		logReadErr(op, err)
		return out
	}
	if err := cur.All(ctx, &out); err != nil {
		logReadErr(op, err)
		return []T{}
	}
	return out
}

func (s *MongoStore) CreateTeam(team model.Team) (model.Team, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	for i := range team.Players {
		if team.Players[i].ID == "" {
			team.Players[i].ID = uuid.NewString()
		}
	}
	if _, err := s.teams.InsertOne(ctx, team); err != nil {
		return model.Team{}, err
	}
	return team, nil
}

func (s *MongoStore) GetTeam(id string) (model.Team, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	var team model.Team
	err := s.teams.FindOne(ctx, bson.M{"id": id}).Decode(&team)
	if err != nil {
		logReadErr("get team", err)
		return model.Team{}, false
	}
	return team, true
}

func (s *MongoStore) ListTeams(league string, skip, limit int) []model.Team {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{}
	if league != "" {
		filter["league"] = league
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return findAll[model.Team](ctx, s.teams, "list teams", filter, opts)
}

func (s *MongoStore) SearchTeams(query string, limit int) []model.Team {
	ctx, cancel := opCtx()
	defer cancel()

	rx := bson.M{"$regex": query, "$options": "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": rx},
		{"league": rx},
		{"country": rx},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return findAll[model.Team](ctx, s.teams, "search teams", filter, opts)
}

func (s *MongoStore) UpdateTeam(team model.Team) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := s.teams.ReplaceOne(ctx, bson.M{"id": team.ID}, team)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) DeleteTeam(id string) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := s.teams.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStore) AddPlayerToTeam(teamID string, player model.Player) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	res, err := s.teams.UpdateOne(ctx, bson.M{"id": teamID},
		bson.M{"$push": bson.M{"players": player}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) Leagues() []string {
	return s.distinctTeams("league")
}

func (s *MongoStore) Countries() []string {
	return s.distinctTeams("country")
}

func (s *MongoStore) distinctTeams(field string) []string {
	ctx, cancel := opCtx()
	defer cancel()

	raw, err := s.teams.Distinct(ctx, field, bson.M{})
	if err != nil {
		logReadErr("distinct teams "+field, err)
		return []string{}
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok && str != "" {
			values = append(values, str)
		}
	}
	return values
}

func (s *MongoStore) CountTeams() (int, error) {
	ctx, cancel := opCtx()
	defer cancel()

	n, err := s.teams.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (s *MongoStore) CreateStadium(stadium model.Stadium) (model.Stadium, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if stadium.ID == "" {
		stadium.ID = uuid.NewString()
	}
	if _, err := s.stadiums.InsertOne(ctx, stadium); err != nil {
		return model.Stadium{}, err
	}
	return stadium, nil
}

func (s *MongoStore) GetStadium(id string) (model.Stadium, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	var stadium model.Stadium
	if err := s.stadiums.FindOne(ctx, bson.M{"id": id}).Decode(&stadium); err != nil {
		logReadErr("get stadium", err)
		return model.Stadium{}, false
	}
	return stadium, true
}

func (s *MongoStore) ListStadiums(skip, limit int) []model.Stadium {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return findAll[model.Stadium](ctx, s.stadiums, "list stadiums", bson.M{}, opts)
}

func (s *MongoStore) CountStadiums() (int, error) {
	ctx, cancel := opCtx()
	defer cancel()

	n, err := s.stadiums.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (s *MongoStore) CreateUser(profile model.UserProfile) (model.UserProfile, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if _, err := s.users.InsertOne(ctx, profile); err != nil {
		return model.UserProfile{}, err
	}
	return profile, nil
}

func (s *MongoStore) GetUser(id string) (model.UserProfile, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	var profile model.UserProfile
	if err := s.users.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		logReadErr("get user", err)
		return model.UserProfile{}, false
	}
	return profile, true
}

func (s *MongoStore) GetUserByUsername(username string) (model.UserProfile, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	filter := bson.M{"username": bson.M{"$regex": "^" + regexp.QuoteMeta(username) + "$", "$options": "i"}}
	var profile model.UserProfile
	if err := s.users.FindOne(ctx, filter).Decode(&profile); err != nil {
		logReadErr("get user by username", err)
		return model.UserProfile{}, false
	}
	return profile, true
}

func (s *MongoStore) UpdateUserSettings(id string, settings map[string]any) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := s.users.UpdateOne(ctx, bson.M{"id": id},
		bson.M{"$set": bson.M{"control_settings": settings}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) UnlockAchievement(userID, achievementID string) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := s.users.UpdateOne(ctx, bson.M{"id": userID},
		bson.M{"$addToSet": bson.M{"achievements": achievementID}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) CreateMatch(match model.Match) (model.Match, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if _, err := s.matches.InsertOne(ctx, match); err != nil {
		return model.Match{}, err
	}
	return match, nil
}

func (s *MongoStore) GetMatch(id string) (model.Match, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	var match model.Match
	if err := s.matches.FindOne(ctx, bson.M{"id": id}).Decode(&match); err != nil {
		logReadErr("get match", err)
		return model.Match{}, false
	}
	return match, true
}

func (s *MongoStore) ListMatchesByTeam(teamID string) []model.Match {
	return s.findMatches(bson.M{"$or": []bson.M{
		{"home_team_id": teamID},
		{"away_team_id": teamID},
	}})
}

func (s *MongoStore) ListMatchesByUser(userID string) []model.Match {
	return s.findMatches(bson.M{"player_id": userID})
}

func (s *MongoStore) findMatches(filter bson.M) []model.Match {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return findAll[model.Match](ctx, s.matches, "list matches", filter, opts)
}

func (s *MongoStore) CompleteMatch(id string, result model.MatchResult) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	set := bson.M{
		"completed":  true,
		"home_score": result.HomeScore,
		"away_score": result.AwayScore,
	}
	if result.Statistics != nil {
		set["statistics"] = result.Statistics
	}
	if result.Events != nil {
		set["match_events"] = result.Events
	}
	res, err := s.matches.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) CreateTournament(tournament model.Tournament) (model.Tournament, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	if _, err := s.tournaments.InsertOne(ctx, tournament); err != nil {
		return model.Tournament{}, err
	}
	return tournament, nil
}

func (s *MongoStore) GetTournament(id string) (model.Tournament, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	var tournament model.Tournament
	if err := s.tournaments.FindOne(ctx, bson.M{"id": id}).Decode(&tournament); err != nil {
		logReadErr("get tournament", err)
		return model.Tournament{}, false
	}
	return tournament, true
}

func (s *MongoStore) ListTournaments(skip, limit int) []model.Tournament {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64(skip))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return findAll[model.Tournament](ctx, s.tournaments, "list tournaments", bson.M{}, opts)
}

func (s *MongoStore) CreateCareer(career model.Career) (model.Career, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if career.ID == "" {
		career.ID = uuid.NewString()
	}
	if _, err := s.careers.InsertOne(ctx, career); err != nil {
		return model.Career{}, err
	}
	return career, nil
}

func (s *MongoStore) GetCareerByUser(userID string) (model.Career, bool) {
	ctx, cancel := opCtx()
	defer cancel()

	var career model.Career
	if err := s.careers.FindOne(ctx, bson.M{"user_id": userID}).Decode(&career); err != nil {
		logReadErr("get career by user", err)
		return model.Career{}, false
	}
	return career, true
}

func (s *MongoStore) AdvanceCareerSeason(careerID string) (bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	res, err := s.careers.UpdateOne(ctx, bson.M{"id": careerID},
		bson.M{"$inc": bson.M{"current_season": 1}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) CreateAchievement(achievement model.Achievement) (model.Achievement, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if achievement.ID == "" {
		achievement.ID = uuid.NewString()
	}
	if _, err := s.achievements.InsertOne(ctx, achievement); err != nil {
		return model.Achievement{}, err
	}
	return achievement, nil
}

func (s *MongoStore) ListAchievements(skip, limit int) []model.Achievement {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return findAll[model.Achievement](ctx, s.achievements, "list achievements", bson.M{}, opts)
}

func (s *MongoStore) ListAchievementsByIDs(ids []string) []model.Achievement {
	ctx, cancel := opCtx()
	defer cancel()

	if len(ids) == 0 {
		return []model.Achievement{}
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return findAll[model.Achievement](ctx, s.achievements, "list achievements by ids", bson.M{"id": bson.M{"$in": ids}}, opts)
}

func (s *MongoStore) CountAchievements() (int, error) {
	ctx, cancel := opCtx()
	defer cancel()

	n, err := s.achievements.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (s *MongoStore) CreateUniform(kit model.UniformKit) (model.UniformKit, error) {
	ctx, cancel := opCtx()
	defer cancel()

	if kit.ID == "" {
		kit.ID = uuid.NewString()
	}
	if _, err := s.uniforms.InsertOne(ctx, kit); err != nil {
		return model.UniformKit{}, err
	}
	return kit, nil
}

func (s *MongoStore) ListUniformsByTeam(teamID string) []model.UniformKit {
	ctx, cancel := opCtx()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "kit_type", Value: 1}})
	return findAll[model.UniformKit](ctx, s.uniforms, "list uniforms", bson.M{"team_id": teamID}, opts)
}

func (s *MongoStore) Close() error {
	ctx, cancel := opCtx()
	defer cancel()
	return s.client.Disconnect(ctx)
}
