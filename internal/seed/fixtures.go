package seed

import "football-master-app/internal/model"

// Fictionalized starting universe. Names evoke real clubs and venues
// without reproducing them.
var fixtureTeams = []model.Team{
	{
		Name: "London Red", ShortName: "LRD", Country: "England", League: "Premier League",
		OverallRating: 88, AttackRating: 90, MidfieldRating: 87, DefenseRating: 86,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "Emirates Arena",
		StadiumCapacity: 60000, Budget: 200000000, Prestige: 9,
	},
	{
		Name: "Manchester Blue", ShortName: "MCB", Country: "England", League: "Premier League",
		OverallRating: 91, AttackRating: 93, MidfieldRating: 90, DefenseRating: 89,
		PrimaryColor: "#6CABDD", SecondaryColor: "#FFFFFF", StadiumName: "Etihad Stadium",
		StadiumCapacity: 55000, Budget: 250000000, Prestige: 10,
	},
	{
		Name: "Manchester Red", ShortName: "MRD", Country: "England", League: "Premier League",
		OverallRating: 85, AttackRating: 87, MidfieldRating: 84, DefenseRating: 83,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "Old Trafford",
		StadiumCapacity: 75000, Budget: 180000000, Prestige: 9,
	},
	{
		Name: "London Blue", ShortName: "LBL", Country: "England", League: "Premier League",
		OverallRating: 87, AttackRating: 89, MidfieldRating: 86, DefenseRating: 85,
		PrimaryColor: "#034694", SecondaryColor: "#FFFFFF", StadiumName: "Stamford Bridge",
		StadiumCapacity: 42000, Budget: 220000000, Prestige: 8,
	},
	{
		Name: "North London", ShortName: "NLD", Country: "England", League: "Premier League",
		OverallRating: 84, AttackRating: 86, MidfieldRating: 83, DefenseRating: 82,
		PrimaryColor: "#132257", SecondaryColor: "#FFFFFF", StadiumName: "New White Hart Lane",
		StadiumCapacity: 62000, Budget: 150000000, Prestige: 7,
	},
	{
		Name: "Liverpool Red", ShortName: "LIV", Country: "England", League: "Premier League",
		OverallRating: 89, AttackRating: 91, MidfieldRating: 88, DefenseRating: 87,
		PrimaryColor: "#C8102E", SecondaryColor: "#FFFFFF", StadiumName: "Anfield Fortress",
		StadiumCapacity: 54000, Budget: 190000000, Prestige: 9,
	},
	{
		Name: "Madrid White", ShortName: "MDW", Country: "Spain", League: "La Liga",
		OverallRating: 92, AttackRating: 94, MidfieldRating: 91, DefenseRating: 90,
		PrimaryColor: "#FFFFFF", SecondaryColor: "#FFD700", StadiumName: "Royal Bernabeu Arena",
		StadiumCapacity: 81000, Budget: 300000000, Prestige: 10,
	},
	{
		Name: "Barcelona FC", ShortName: "BAR", Country: "Spain", League: "La Liga",
		OverallRating: 90, AttackRating: 92, MidfieldRating: 89, DefenseRating: 88,
		PrimaryColor: "#A50044", SecondaryColor: "#004D98", StadiumName: "Camp Majesty",
		StadiumCapacity: 99000, Budget: 280000000, Prestige: 10,
	},
	{
		Name: "Madrid Red", ShortName: "MDR", Country: "Spain", League: "La Liga",
		OverallRating: 86, AttackRating: 88, MidfieldRating: 85, DefenseRating: 84,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "Wanda Metropolitano",
		StadiumCapacity: 68000, Budget: 150000000, Prestige: 8,
	},
	{
		Name: "Sevilla FC", ShortName: "SEV", Country: "Spain", League: "La Liga",
		OverallRating: 82, AttackRating: 84, MidfieldRating: 81, DefenseRating: 80,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "Ramon Sanchez Pizjuan",
		StadiumCapacity: 43000, Budget: 80000000, Prestige: 7,
	},
	{
		Name: "Villarreal CF", ShortName: "VIL", Country: "Spain", League: "La Liga",
		OverallRating: 80, AttackRating: 82, MidfieldRating: 79, DefenseRating: 78,
		PrimaryColor: "#FFFF00", SecondaryColor: "#003399", StadiumName: "Estadio de la Ceramica",
		StadiumCapacity: 23000, Budget: 60000000, Prestige: 6,
	},
	{
		Name: "Bayern Munich", ShortName: "BAY", Country: "Germany", League: "Bundesliga",
		OverallRating: 90, AttackRating: 92, MidfieldRating: 89, DefenseRating: 88,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "Allianz Fortress",
		StadiumCapacity: 75000, Budget: 250000000, Prestige: 9,
	},
	{
		Name: "Borussia Dortmund", ShortName: "BVB", Country: "Germany", League: "Bundesliga",
		OverallRating: 85, AttackRating: 87, MidfieldRating: 84, DefenseRating: 83,
		PrimaryColor: "#FFFF00", SecondaryColor: "#000000", StadiumName: "Signal Iduna Wall",
		StadiumCapacity: 81000, Budget: 120000000, Prestige: 8,
	},
	{
		Name: "RB Leipzig", ShortName: "RBL", Country: "Germany", League: "Bundesliga",
		OverallRating: 83, AttackRating: 85, MidfieldRating: 82, DefenseRating: 81,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "Red Bull Arena",
		StadiumCapacity: 47000, Budget: 100000000, Prestige: 7,
	},
	{
		Name: "Bayer Leverkusen", ShortName: "B04", Country: "Germany", League: "Bundesliga",
		OverallRating: 84, AttackRating: 86, MidfieldRating: 83, DefenseRating: 82,
		PrimaryColor: "#FF0000", SecondaryColor: "#000000", StadiumName: "BayArena",
		StadiumCapacity: 30000, Budget: 90000000, Prestige: 7,
	},
	{
		Name: "Juventus FC", ShortName: "JUV", Country: "Italy", League: "Serie A",
		OverallRating: 84, AttackRating: 86, MidfieldRating: 83, DefenseRating: 82,
		PrimaryColor: "#FFFFFF", SecondaryColor: "#000000", StadiumName: "Allianz Stadium",
		StadiumCapacity: 41000, Budget: 180000000, Prestige: 8,
	},
	{
		Name: "Milan AC", ShortName: "MIL", Country: "Italy", League: "Serie A",
		OverallRating: 83, AttackRating: 85, MidfieldRating: 82, DefenseRating: 81,
		PrimaryColor: "#FF0000", SecondaryColor: "#000000", StadiumName: "San Siro Cathedral",
		StadiumCapacity: 80000, Budget: 150000000, Prestige: 8,
	},
	{
		Name: "Inter Milan", ShortName: "INT", Country: "Italy", League: "Serie A",
		OverallRating: 85, AttackRating: 87, MidfieldRating: 84, DefenseRating: 83,
		PrimaryColor: "#0066CC", SecondaryColor: "#000000", StadiumName: "San Siro Cathedral",
		StadiumCapacity: 80000, Budget: 140000000, Prestige: 8,
	},
	{
		Name: "SSC Napoli", ShortName: "NAP", Country: "Italy", League: "Serie A",
		OverallRating: 85, AttackRating: 87, MidfieldRating: 84, DefenseRating: 83,
		PrimaryColor: "#0066CC", SecondaryColor: "#FFFFFF", StadiumName: "Stadio Diego Armando Maradona",
		StadiumCapacity: 55000, Budget: 130000000, Prestige: 8,
	},
	{
		Name: "Paris Saint-Germain", ShortName: "PSG", Country: "France", League: "Ligue 1",
		OverallRating: 89, AttackRating: 91, MidfieldRating: 88, DefenseRating: 87,
		PrimaryColor: "#003399", SecondaryColor: "#FF0000", StadiumName: "Parc des Princes",
		StadiumCapacity: 48000, Budget: 400000000, Prestige: 9,
	},
	{
		Name: "Olympique Marseille", ShortName: "OM", Country: "France", League: "Ligue 1",
		OverallRating: 82, AttackRating: 84, MidfieldRating: 81, DefenseRating: 80,
		PrimaryColor: "#009FE3", SecondaryColor: "#FFFFFF", StadiumName: "Orange Velodrome",
		StadiumCapacity: 67000, Budget: 80000000, Prestige: 7,
	},
	{
		Name: "Flamengo", ShortName: "FLA", Country: "Brazil", League: "Brasileirão",
		OverallRating: 83, AttackRating: 85, MidfieldRating: 82, DefenseRating: 81,
		PrimaryColor: "#FF0000", SecondaryColor: "#000000", StadiumName: "Maracanã Temple",
		StadiumCapacity: 78000, Budget: 70000000, Prestige: 8,
	},
	{
		Name: "Santos FC", ShortName: "SAN", Country: "Brazil", League: "Brasileirão",
		OverallRating: 81, AttackRating: 83, MidfieldRating: 80, DefenseRating: 79,
		PrimaryColor: "#FFFFFF", SecondaryColor: "#000000", StadiumName: "Vila Belmiro",
		StadiumCapacity: 16000, Budget: 50000000, Prestige: 7,
	},
	{
		Name: "River Plate", ShortName: "RIV", Country: "Argentina", League: "Primera División",
		OverallRating: 82, AttackRating: 84, MidfieldRating: 81, DefenseRating: 80,
		PrimaryColor: "#FF0000", SecondaryColor: "#FFFFFF", StadiumName: "El Monumental",
		StadiumCapacity: 84000, Budget: 60000000, Prestige: 8,
	},
	{
		Name: "Boca Juniors", ShortName: "BOC", Country: "Argentina", League: "Primera División",
		OverallRating: 82, AttackRating: 84, MidfieldRating: 81, DefenseRating: 80,
		PrimaryColor: "#003399", SecondaryColor: "#FFFF00", StadiumName: "La Bombonera Cauldron",
		StadiumCapacity: 49000, Budget: 60000000, Prestige: 8,
	},
}

var fixtureStadiums = []model.Stadium{
	{
		Name: "Emirates Arena", Capacity: 60000, Country: "England", City: "London",
		SurfaceType: "hybrid_grass", RoofType: "open", AtmosphereRating: 8,
		WeatherConditions: []string{"rainy", "cloudy", "sunny"},
		UniqueFeatures:    []string{"historic_stands", "steep_stands"},
	},
	{
		Name: "Camp Majesty", Capacity: 99000, Country: "Spain", City: "Barcelona",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 10,
		WeatherConditions: []string{"sunny", "windy"},
		UniqueFeatures:    []string{"massive_capacity", "iconic_architecture", "azure_exterior"},
	},
	{
		Name: "Royal Bernabeu Arena", Capacity: 81000, Country: "Spain", City: "Madrid",
		SurfaceType: "natural_grass", RoofType: "retractable", AtmosphereRating: 10,
		WeatherConditions: []string{"sunny", "windy", "hot"},
		UniqueFeatures:    []string{"retractable_roof", "royal_white_exterior", "historic_prestige"},
	},
	{
		Name: "Allianz Fortress", Capacity: 75000, Country: "Germany", City: "Munich",
		SurfaceType: "natural_grass", RoofType: "closed", AtmosphereRating: 9,
		WeatherConditions: []string{"cold", "snow", "sunny"},
		UniqueFeatures:    []string{"color_changing_exterior", "modern_design", "bavarian_atmosphere"},
	},
	{
		Name: "Anfield Fortress", Capacity: 54000, Country: "England", City: "Liverpool",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 10,
		WeatherConditions: []string{"rainy", "cloudy", "windy"},
		UniqueFeatures:    []string{"kop_stand", "you_never_walk_alone", "electric_atmosphere"},
	},
	{
		Name: "San Siro Cathedral", Capacity: 80000, Country: "Italy", City: "Milan",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 9,
		WeatherConditions: []string{"sunny", "rainy", "foggy"},
		UniqueFeatures:    []string{"spiral_towers", "historic_architecture", "dual_heritage"},
	},
	{
		Name: "Parc des Princes", Capacity: 48000, Country: "France", City: "Paris",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 8,
		WeatherConditions: []string{"sunny", "rainy", "windy"},
		UniqueFeatures:    []string{"parisian_elegance", "steep_stands", "modern_facilities"},
	},
	{
		Name: "Maracanã Temple", Capacity: 78000, Country: "Brazil", City: "Rio de Janeiro",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 10,
		WeatherConditions: []string{"hot", "humid", "sunny"},
		UniqueFeatures:    []string{"samba_atmosphere", "world_cup_legacy", "brazilian_passion"},
	},
	{
		Name: "La Bombonera Cauldron", Capacity: 49000, Country: "Argentina", City: "Buenos Aires",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 10,
		WeatherConditions: []string{"sunny", "windy", "hot"},
		UniqueFeatures:    []string{"intimidating_atmosphere", "steep_stands", "argentine_passion"},
	},
	{
		Name: "Signal Iduna Wall", Capacity: 81000, Country: "Germany", City: "Dortmund",
		SurfaceType: "natural_grass", RoofType: "open", AtmosphereRating: 10,
		WeatherConditions: []string{"cold", "rainy", "snow"},
		UniqueFeatures:    []string{"yellow_wall", "standing_section", "thunderous_atmosphere"},
	},
}

var fixtureAchievements = []model.Achievement{
	{
		Name: "First Goal", Description: "Score your first goal in Football Master",
		Icon: "⚽", Category: "Scoring", Requirement: map[string]any{"goals": 1},
		RewardXP: 100, RewardCoins: 500, Rarity: "common",
		UnlockCondition: "Score 1 goal",
	},
	{
		Name: "Hat-Trick Hero", Description: "Score a hat-trick in a single match",
		Icon: "🎩", Category: "Scoring", Requirement: map[string]any{"hat_tricks": 1},
		RewardXP: 500, RewardCoins: 2500, Rarity: "rare",
		UnlockCondition: "Score 3 goals in one match",
	},
	{
		Name: "Goal Machine", Description: "Score 100 goals total",
		Icon: "🏆", Category: "Scoring", Requirement: map[string]any{"goals": 100},
		RewardXP: 1000, RewardCoins: 10000, Rarity: "epic",
		UnlockCondition: "Score 100 goals",
	},
	{
		Name: "Legend Striker", Description: "Score 500 goals total",
		Icon: "👑", Category: "Scoring", Requirement: map[string]any{"goals": 500},
		RewardXP: 2500, RewardCoins: 25000, Rarity: "legendary",
		UnlockCondition: "Score 500 goals",
	},
	{
		Name: "Rainbow Legend", Description: "Perform 25 rainbow flicks",
		Icon: "🌈", Category: "Skills", Requirement: map[string]any{"rainbow_flicks": 25},
		RewardXP: 300, RewardCoins: 1500, Rarity: "rare",
		UnlockCondition: "Perform 25 rainbow flicks",
	},
	{
		Name: "Elastico Expert", Description: "Perform 50 elastico moves",
		Icon: "✨", Category: "Skills", Requirement: map[string]any{"elastico_moves": 50},
		RewardXP: 400, RewardCoins: 2000, Rarity: "rare",
		UnlockCondition: "Perform 50 elastico moves",
	},
	{
		Name: "Skill Master", Description: "Successfully perform 500 skill moves",
		Icon: "🎪", Category: "Skills", Requirement: map[string]any{"skill_moves": 500},
		RewardXP: 1500, RewardCoins: 15000, Rarity: "epic",
		UnlockCondition: "Perform 500 skill moves",
	},
	{
		Name: "New Manager", Description: "Start your first career mode",
		Icon: "💼", Category: "Career", Requirement: map[string]any{"career_started": 1},
		RewardXP: 200, RewardCoins: 1000, Rarity: "common",
		UnlockCondition: "Start career mode",
	},
	{
		Name: "Championship Winner", Description: "Win your first league title",
		Icon: "🏆", Category: "Career", Requirement: map[string]any{"league_titles": 1},
		RewardXP: 1000, RewardCoins: 10000, Rarity: "epic",
		UnlockCondition: "Win a league title",
	},
	{
		Name: "Perfect Season", Description: "Win all matches in a season",
		Icon: "💎", Category: "Career", Requirement: map[string]any{"perfect_seasons": 1},
		RewardXP: 5000, RewardCoins: 50000, Rarity: "mythic",
		UnlockCondition: "Win all matches in a season",
	},
	{
		Name: "Comeback King", Description: "Win 10 matches after being behind",
		Icon: "🔥", Category: "Special", Requirement: map[string]any{"comeback_wins": 10},
		RewardXP: 800, RewardCoins: 5000, Rarity: "epic",
		UnlockCondition: "Win 10 matches from behind",
	},
	{
		Name: "Big Game Player", Description: "Score in 5 finals",
		Icon: "⭐", Category: "Special", Requirement: map[string]any{"final_goals": 5},
		RewardXP: 1200, RewardCoins: 8000, Rarity: "epic",
		UnlockCondition: "Score in 5 finals",
	},
	{
		Name: "Rising Star", Description: "Reach level 10",
		Icon: "⭐", Category: "Level", Requirement: map[string]any{"level": 10},
		RewardXP: 500, RewardCoins: 2500, Rarity: "common",
		UnlockCondition: "Reach level 10",
	},
	{
		Name: "Veteran", Description: "Reach level 25",
		Icon: "🏅", Category: "Level", Requirement: map[string]any{"level": 25},
		RewardXP: 1000, RewardCoins: 7500, Rarity: "rare",
		UnlockCondition: "Reach level 25",
	},
	{
		Name: "Legend", Description: "Reach level 50",
		Icon: "👑", Category: "Level", Requirement: map[string]any{"level": 50},
		RewardXP: 2500, RewardCoins: 25000, Rarity: "legendary",
		UnlockCondition: "Reach level 50",
	},
}
