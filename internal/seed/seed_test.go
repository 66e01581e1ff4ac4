package seed

import (
	"math/rand"
	"testing"

	"football-master-app/internal/model"
	"football-master-app/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, initialize(st, rand.New(rand.NewSource(99))))
	return st
}

func TestInitializePopulatesEmptyStore(t *testing.T) {
	st := seededStore(t)

	teams, err := st.CountTeams()
	require.NoError(t, err)
	assert.Equal(t, 25, teams)

	stadiums, err := st.CountStadiums()
	require.NoError(t, err)
	assert.Equal(t, 10, stadiums)

	achievements, err := st.CountAchievements()
	require.NoError(t, err)
	assert.Equal(t, 15, achievements)

	for _, team := range st.ListTeams("", 0, 0) {
		assert.Len(t, team.Players, 25, "team %s", team.Name)
		assert.NotEmpty(t, team.ID)
		assert.NoError(t, model.Validate(team), "team %s", team.Name)
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	st := seededStore(t)
	require.NoError(t, initialize(st, rand.New(rand.NewSource(100))))

	teams, err := st.CountTeams()
	require.NoError(t, err)
	assert.Equal(t, 25, teams)

	stadiums, err := st.CountStadiums()
	require.NoError(t, err)
	assert.Equal(t, 10, stadiums)

	achievements, err := st.CountAchievements()
	require.NoError(t, err)
	assert.Equal(t, 15, achievements)
}

func TestFlagshipTeamsUseFixedRosters(t *testing.T) {
	st := seededStore(t)

	for name, roster := range flagshipRosters {
		team := teamByName(t, st, name)
		require.Len(t, team.Players, len(roster), "team %s", name)
		for i, want := range roster {
			got := team.Players[i]
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.Position, got.Position)
			assert.Equal(t, want.OverallRating, got.OverallRating)
			assert.Equal(t, want.Value, got.Value)
		}
	}
}

func TestFlagshipRosterShape(t *testing.T) {
	for name, roster := range flagshipRosters {
		require.Len(t, roster, 25, "roster %s", name)
		counts := map[model.Position]int{}
		for _, p := range roster {
			counts[p.Position]++
		}
		assert.Equal(t, 3, counts[model.Goalkeeper], "roster %s", name)
		assert.Equal(t, 8, counts[model.Defender], "roster %s", name)
		assert.Equal(t, 8, counts[model.Midfielder], "roster %s", name)
		assert.Equal(t, 6, counts[model.Forward], "roster %s", name)
	}
}

func TestGenericTeamStartersNearTeamRating(t *testing.T) {
	st := seededStore(t)

	// London Red has no flagship roster, so its squad is generated.
	team := teamByName(t, st, "London Red")
	require.Len(t, team.Players, 25)

	gk := team.Players[0]
	require.Equal(t, model.Goalkeeper, gk.Position)
	assert.InDelta(t, team.OverallRating, gk.OverallRating, 3)
}

func TestSeedLeavesExistingDataAlone(t *testing.T) {
	st := store.NewMemoryStore()
	existing := model.Team{
		Name: "Custom FC", ShortName: "CUS", Country: "England", League: "Premier League",
		OverallRating: 70, AttackRating: 70, MidfieldRating: 70, DefenseRating: 70,
		StadiumName: "Custom Park", StadiumCapacity: 20000,
	}
	existing.ApplyDefaults()
	_, err := st.CreateTeam(existing)
	require.NoError(t, err)

	require.NoError(t, initialize(st, rand.New(rand.NewSource(5))))

	teams, err := st.CountTeams()
	require.NoError(t, err)
	assert.Equal(t, 1, teams, "non-empty teams collection must not be reseeded")

	// Stadiums and achievements were still empty, so they seed normally.
	stadiums, err := st.CountStadiums()
	require.NoError(t, err)
	assert.Equal(t, 10, stadiums)
}

func TestFixtureTablesAreValid(t *testing.T) {
	for _, stadium := range fixtureStadiums {
		s := stadium
		s.ApplyDefaults()
		assert.NoError(t, model.Validate(s), "stadium %s", s.Name)
	}
	for _, achievement := range fixtureAchievements {
		a := achievement
		a.ApplyDefaults()
		assert.NoError(t, model.Validate(a), "achievement %s", a.Name)
	}
	for _, roster := range flagshipRosters {
		for _, player := range roster {
			p := player
			p.ApplyDefaults()
			assert.NoError(t, model.Validate(p), "player %s", p.Name)
		}
	}
}

func teamByName(t *testing.T, st store.Store, name string) model.Team {
	t.Helper()
	for _, team := range st.ListTeams("", 0, 0) {
		if team.Name == name {
			return team
		}
	}
	t.Fatalf("team %q not seeded", name)
	return model.Team{}
}
