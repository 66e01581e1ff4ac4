package seed

import (
	"fmt"
	"math/rand"

	"football-master-app/internal/model"
)

var genFirstNames = []string{
	"Alex", "Marco", "David", "Carlos", "João", "Miguel", "Antonio", "Luis", "Fernando", "Diego",
	"André", "Pedro", "Rafael", "Gabriel", "Daniel", "Ricardo", "Paulo", "Bruno", "Sergio", "Manuel",
	"José", "Francisco", "Roberto", "Eduardo", "Adrián", "Alejandro", "Gonzalo", "Martín", "Nicolás", "Sebastián",
}

var genLastNames = []string{
	"Silva", "Santos", "Oliveira", "Pereira", "Costa", "Rodrigues", "Martins", "Jesus", "Sousa", "Fernandes",
	"Gonçalves", "Gomes", "Lopes", "Marques", "Alves", "Almeida", "Ribeiro", "Pinto", "Carvalho", "Teixeira",
	"Moreira", "Ferreira", "Dias", "Mendes", "Nunes", "Correia", "Reis", "Antunes", "Fonseca", "Pires",
}

var genCountries = []string{
	"Portugal", "Spain", "Brazil", "Argentina", "France", "Italy", "Germany", "England",
	"Netherlands", "Belgium", "Croatia", "Colombia", "Mexico", "Chile", "Uruguay", "Morocco",
}

var squadShape = []struct {
	position model.Position
	count    int
}{
	{model.Goalkeeper, 3},
	{model.Defender, 8},
	{model.Midfielder, 8},
	{model.Forward, 6},
}

// randRange draws uniformly from [lo, hi] after clamping both ends into
// [1, 99]. An inverted range collapses onto hi, never raising it.
func randRange(rng *rand.Rand, lo, hi int) int {
	if lo < 1 {
		lo = 1
	}
	if hi > 99 {
		hi = 99
	}
	if lo > hi {
		lo = hi
	}
	if lo == hi {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GeneratePlayers builds a 25-man squad for a team without a flagship
// roster: 3 goalkeepers, 8 defenders, 8 midfielders, 6 forwards. The
// first two players in each position bucket are starters rated around
// the team rating, the rest sit a tier below.
func GeneratePlayers(rng *rand.Rand, teamRating int) []model.Player {
	players := make([]model.Player, 0, 25)
	for _, bucket := range squadShape {
		for i := 0; i < bucket.count; i++ {
			isStar := i < 2
			rating := teamRating
			if isStar {
				rating += rng.Intn(6) - 2 // -2..3
			} else {
				rating -= 3 + rng.Intn(10) // 3..12
			}
			rating = clamp(rating, 50, 99)

			age := 18 + rng.Intn(18) // 18..35
			skillMoves := 2 + rng.Intn(3)
			if isStar && bucket.position == model.Forward {
				skillMoves = 5
			}
			p := model.Player{
				Name:          fmt.Sprintf("%s %s", genFirstNames[rng.Intn(len(genFirstNames))], genLastNames[rng.Intn(len(genLastNames))]),
				Position:      bucket.position,
				OverallRating: rating,
				Age:           age,
				Nationality:   genCountries[rng.Intn(len(genCountries))],
				Value:         PlayerValue(rating, bucket.position, age),
				Stamina:       75 + rng.Intn(21),
				SkillMoves:    skillMoves,
				WeakFoot:      2 + rng.Intn(3),
			}
			applyPositionStats(rng, &p)
			players = append(players, p)
		}
	}
	return players
}

// applyPositionStats samples the five attribute scores from ranges
// anchored to the overall rating. Primary attributes for the position
// cluster near the rating, secondary ones come from fixed low bands.
func applyPositionStats(rng *rand.Rand, p *model.Player) {
	r := p.OverallRating
	switch p.Position {
	case model.Goalkeeper:
		p.Pace = randRange(rng, 35, 55)
		p.Shooting = randRange(rng, 15, 35)
		p.Passing = randRange(rng, max(50, r-15), min(85, r+5))
		p.Defending = randRange(rng, max(75, r-5), min(95, r+5))
		p.Physicality = randRange(rng, max(70, r-10), min(90, r+5))
	case model.Defender:
		p.Pace = randRange(rng, max(45, r-20), min(85, r))
		p.Shooting = randRange(rng, 25, 65)
		p.Passing = randRange(rng, max(60, r-15), min(90, r+5))
		p.Defending = randRange(rng, max(70, r-5), min(95, r+5))
		p.Physicality = randRange(rng, max(70, r-10), min(95, r+5))
	case model.Midfielder:
		p.Pace = randRange(rng, max(50, r-20), min(85, r+5))
		p.Shooting = randRange(rng, max(45, r-25), min(85, r))
		p.Passing = randRange(rng, max(70, r-5), min(95, r+5))
		p.Defending = randRange(rng, max(40, r-25), min(85, r))
		p.Physicality = randRange(rng, max(55, r-20), min(85, r))
	default:
		p.Pace = randRange(rng, max(60, r-15), min(95, r+5))
		p.Shooting = randRange(rng, max(70, r-5), min(95, r+5))
		p.Passing = randRange(rng, max(50, r-20), min(85, r))
		p.Defending = randRange(rng, 20, 50)
		p.Physicality = randRange(rng, max(60, r-20), min(90, r))
	}
}

// PlayerValue prices a player from rating tier, age and position. The
// multipliers are held in tenths so the arithmetic stays exact. The
// result stays within [100k, 200M].
func PlayerValue(rating int, position model.Position, age int) int {
	var base int
	switch {
	case rating >= 90:
		base = 100000000
	case rating >= 85:
		base = 50000000
	case rating >= 80:
		base = 25000000
	case rating >= 75:
		base = 10000000
	default:
		base = 2000000
	}

	var ageMult int // x1.5 -> 15
	switch {
	case age <= 21:
		ageMult = 15
	case age <= 25:
		ageMult = 12
	case age <= 29:
		ageMult = 10
	case age <= 32:
		ageMult = 7
	default:
		ageMult = 4
	}

	posMult := 10
	switch position {
	case model.Forward:
		posMult = 12
	case model.Defender:
		posMult = 9
	case model.Goalkeeper:
		posMult = 8
	}

	value := base / 100 * ageMult * posMult
	if value < 100000 {
		value = 100000
	}
	if value > 200000000 {
		value = 200000000
	}
	return value
}
