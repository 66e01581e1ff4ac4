package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"football-master-app/internal/model"
	"football-master-app/internal/store"
)

// Initialize populates the store with the fixture universe on first
// start. Each collection is seeded only when its count is zero, so
// calling this on every boot is safe. Records that fail validation are
// skipped and logged; already-inserted records stay in place.
func Initialize(st store.Store) error {
	return initialize(st, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func initialize(st store.Store, rng *rand.Rand) error {
	if err := seedTeams(st, rng); err != nil {
		return err
	}
	if err := seedStadiums(st); err != nil {
		return err
	}
	return seedAchievements(st)
}

func seedTeams(st store.Store, rng *rand.Rand) error {
	n, err := st.CountTeams()
	if err != nil {
		return fmt.Errorf("count teams: %w", err)
	}
	if n > 0 {
		return nil
	}

	created := 0
	for _, team := range fixtureTeams {
		if roster, ok := flagshipRosters[team.Name]; ok {
			team.Players = clonePlayers(roster)
		} else {
			team.Players = GeneratePlayers(rng, team.OverallRating)
		}
		team.ApplyDefaults()
		for i := range team.Players {
			team.Players[i].ApplyDefaults()
		}
		if err := model.Validate(team); err != nil {
			log.Printf("seed: skipping team %q: %v", team.Name, err)
			continue
		}
		if _, err := st.CreateTeam(team); err != nil {
			return fmt.Errorf("seed team %q: %w", team.Name, err)
		}
		created++
	}
	log.Printf("seed: created %d teams", created)
	return nil
}

func seedStadiums(st store.Store) error {
	n, err := st.CountStadiums()
	if err != nil {
		return fmt.Errorf("count stadiums: %w", err)
	}
	if n > 0 {
		return nil
	}

	created := 0
	for _, stadium := range fixtureStadiums {
		stadium.ApplyDefaults()
		if err := model.Validate(stadium); err != nil {
			log.Printf("seed: skipping stadium %q: %v", stadium.Name, err)
			continue
		}
		if _, err := st.CreateStadium(stadium); err != nil {
			return fmt.Errorf("seed stadium %q: %w", stadium.Name, err)
		}
		created++
	}
	log.Printf("seed: created %d stadiums", created)
	return nil
}

func seedAchievements(st store.Store) error {
	n, err := st.CountAchievements()
	if err != nil {
		return fmt.Errorf("count achievements: %w", err)
	}
	if n > 0 {
		return nil
	}

	created := 0
	for _, achievement := range fixtureAchievements {
		achievement.ApplyDefaults()
		if err := model.Validate(achievement); err != nil {
			log.Printf("seed: skipping achievement %q: %v", achievement.Name, err)
			continue
		}
		if _, err := st.CreateAchievement(achievement); err != nil {
			return fmt.Errorf("seed achievement %q: %w", achievement.Name, err)
		}
		created++
	}
	log.Printf("seed: created %d achievements", created)
	return nil
}

func clonePlayers(players []model.Player) []model.Player {
	out := make([]model.Player, len(players))
	copy(out, players)
	return out
}
