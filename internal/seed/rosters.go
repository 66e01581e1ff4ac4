package seed

import "football-master-app/internal/model"

func fixedPlayer(name string, pos model.Position, rating, pace, shooting, passing, defending, physicality, age int, nationality string, value, stamina, skillMoves, weakFoot int) model.Player {
	return model.Player{
		Name:          name,
		Position:      pos,
		OverallRating: rating,
		Pace:          pace,
		Shooting:      shooting,
		Passing:       passing,
		Defending:     defending,
		Physicality:   physicality,
		Age:           age,
		Nationality:   nationality,
		Value:         value,
		Stamina:       stamina,
		SkillMoves:    skillMoves,
		WeakFoot:      weakFoot,
	}
}

// flagshipRosters holds hand-tuned squads for a few marquee teams. The
// roster is fixed: seeding a flagship team never touches the generator.
var flagshipRosters = map[string][]model.Player{
	"Manchester Blue": {
		fixedPlayer("Eduardo Morales", model.Goalkeeper, 89, 87, 15, 93, 88, 88, 31, "Brazil", 40000000, 85, 1, 2),
		fixedPlayer("Stefan Ortega", model.Goalkeeper, 76, 44, 13, 78, 77, 74, 31, "Germany", 8000000, 82, 1, 2),
		fixedPlayer("Scott Carson", model.Goalkeeper, 70, 38, 12, 65, 71, 72, 39, "England", 500000, 78, 1, 2),
		fixedPlayer("Jose Guardado", model.Defender, 84, 82, 61, 84, 85, 82, 22, "Croatia", 80000000, 85, 3, 4),
		fixedPlayer("Manuel Akoma", model.Defender, 83, 76, 39, 80, 85, 83, 29, "Switzerland", 35000000, 86, 2, 3),
		fixedPlayer("Roberto Diaz", model.Defender, 88, 68, 54, 85, 91, 88, 27, "Portugal", 80000000, 84, 2, 3),
		fixedPlayer("Nathan Ake", model.Defender, 82, 78, 43, 82, 84, 80, 29, "Netherlands", 40000000, 85, 3, 4),
		fixedPlayer("John Stones", model.Defender, 85, 73, 55, 89, 86, 80, 30, "England", 45000000, 83, 3, 3),
		fixedPlayer("Kyle Walker", model.Defender, 84, 90, 58, 75, 82, 78, 34, "England", 25000000, 87, 2, 3),
		fixedPlayer("Rico Lewis", model.Defender, 75, 78, 64, 81, 72, 65, 20, "England", 20000000, 85, 3, 3),
		fixedPlayer("Sergio Gomez", model.Defender, 76, 84, 69, 82, 71, 62, 24, "Spain", 18000000, 87, 4, 3),
		fixedPlayer("Rodrigo Hernandez", model.Midfielder, 89, 59, 74, 90, 88, 86, 28, "Spain", 120000000, 89, 3, 4),
		fixedPlayer("Bruno Silva", model.Midfielder, 86, 74, 79, 89, 66, 68, 30, "Portugal", 70000000, 93, 4, 4),
		fixedPlayer("Marco Kovacic", model.Midfielder, 84, 74, 71, 87, 78, 72, 30, "Croatia", 35000000, 89, 4, 3),
		fixedPlayer("Mateus Nunes", model.Midfielder, 79, 83, 74, 80, 69, 76, 26, "Portugal", 40000000, 87, 4, 3),
		fixedPlayer("Karl De Berg", model.Midfielder, 91, 76, 88, 96, 64, 78, 33, "Belgium", 85000000, 84, 4, 5),
		fixedPlayer("Ivan Gundogan", model.Midfielder, 85, 63, 81, 91, 73, 69, 34, "Germany", 25000000, 85, 4, 4),
		fixedPlayer("James McAtee", model.Midfielder, 74, 75, 76, 79, 55, 61, 22, "England", 20000000, 84, 4, 3),
		fixedPlayer("Kalvin Phillips", model.Midfielder, 80, 63, 66, 84, 81, 82, 28, "England", 25000000, 87, 2, 3),
		fixedPlayer("Erik Halberg", model.Forward, 91, 89, 94, 65, 45, 88, 24, "Norway", 180000000, 88, 3, 3),
		fixedPlayer("Jack Grealish", model.Forward, 84, 80, 74, 85, 43, 65, 29, "England", 65000000, 85, 4, 3),
		fixedPlayer("Ricardo Mahrez", model.Forward, 86, 80, 84, 82, 38, 61, 33, "Algeria", 35000000, 82, 5, 4),
		fixedPlayer("Julio Alvarez", model.Forward, 82, 85, 83, 78, 58, 70, 24, "Argentina", 70000000, 91, 4, 4),
		fixedPlayer("Jeremy Doku", model.Forward, 78, 93, 68, 74, 32, 65, 22, "Belgium", 35000000, 85, 4, 3),
		fixedPlayer("Oscar Bobb", model.Forward, 72, 82, 71, 76, 28, 58, 21, "Norway", 12000000, 84, 3, 3),
	},
	"Madrid White": {
		fixedPlayer("Tiago Courtois", model.Goalkeeper, 90, 41, 17, 75, 90, 89, 32, "Belgium", 60000000, 85, 1, 2),
		fixedPlayer("Andre Lunin", model.Goalkeeper, 77, 48, 14, 72, 78, 76, 25, "Ukraine", 15000000, 82, 1, 2),
		fixedPlayer("Kike Arrizabalaga", model.Goalkeeper, 79, 52, 19, 78, 79, 71, 30, "Spain", 20000000, 84, 1, 3),
		fixedPlayer("Daniel Carvajal", model.Defender, 84, 78, 68, 82, 85, 79, 32, "Spain", 25000000, 88, 3, 3),
		fixedPlayer("David Alaba", model.Defender, 86, 71, 74, 88, 85, 78, 32, "Austria", 40000000, 81, 4, 4),
		fixedPlayer("Antonio Rudiger", model.Defender, 87, 82, 55, 73, 88, 86, 31, "Germany", 45000000, 89, 2, 3),
		fixedPlayer("Eduardo Militao", model.Defender, 85, 81, 39, 71, 86, 82, 26, "Brazil", 70000000, 86, 2, 3),
		fixedPlayer("Fernando Mendy", model.Defender, 82, 88, 39, 74, 82, 82, 29, "France", 35000000, 86, 3, 3),
		fixedPlayer("Lucas Vazquez", model.Defender, 79, 77, 74, 79, 76, 71, 33, "Spain", 8000000, 91, 3, 3),
		fixedPlayer("Nacho Fernandez", model.Defender, 80, 70, 58, 75, 82, 78, 34, "Spain", 5000000, 85, 2, 3),
		fixedPlayer("Franco Garcia", model.Defender, 76, 84, 52, 79, 74, 68, 25, "Spain", 15000000, 87, 3, 3),
		fixedPlayer("Lucas Modric", model.Midfielder, 88, 68, 76, 91, 72, 65, 39, "Croatia", 10000000, 88, 4, 4),
		fixedPlayer("Toni Kroos", model.Midfielder, 88, 54, 81, 94, 71, 70, 34, "Germany", 15000000, 86, 4, 4),
		fixedPlayer("Federico Valverde", model.Midfielder, 87, 80, 84, 84, 76, 82, 26, "Uruguay", 100000000, 95, 3, 4),
		fixedPlayer("Eduardo Camavinga", model.Midfielder, 82, 82, 64, 81, 78, 78, 22, "France", 80000000, 91, 4, 3),
		fixedPlayer("Aurelien Tchouameni", model.Midfielder, 84, 68, 72, 80, 84, 87, 24, "France", 90000000, 89, 3, 3),
		fixedPlayer("Jake Bellmont", model.Midfielder, 87, 75, 83, 83, 72, 82, 21, "England", 150000000, 92, 4, 4),
		fixedPlayer("Daniel Ceballos", model.Midfielder, 78, 71, 73, 84, 68, 66, 28, "Spain", 15000000, 84, 4, 3),
		fixedPlayer("Arda Guler", model.Midfielder, 74, 74, 76, 82, 42, 56, 19, "Turkey", 25000000, 78, 4, 4),
		fixedPlayer("Kyle Morrison", model.Forward, 91, 97, 89, 80, 39, 77, 26, "France", 180000000, 92, 5, 4),
		fixedPlayer("Victor Santos", model.Forward, 89, 95, 83, 75, 29, 68, 24, "Brazil", 150000000, 87, 5, 3),
		fixedPlayer("Rodrigo Goes", model.Forward, 85, 91, 82, 78, 43, 65, 24, "Brazil", 80000000, 85, 4, 4),
		fixedPlayer("Endrick Felipe", model.Forward, 77, 84, 79, 68, 25, 73, 18, "Brazil", 40000000, 82, 4, 3),
		fixedPlayer("Brahim Diaz", model.Forward, 80, 83, 78, 81, 35, 58, 25, "Morocco", 30000000, 83, 4, 3),
		fixedPlayer("Jose Mato", model.Forward, 78, 65, 82, 72, 42, 84, 34, "Spain", 8000000, 79, 2, 3),
	},
	"Barcelona FC": {
		fixedPlayer("Marcus ter Stefan", model.Goalkeeper, 89, 43, 16, 84, 90, 82, 32, "Germany", 50000000, 85, 1, 2),
		fixedPlayer("Inaki Pena", model.Goalkeeper, 74, 48, 13, 76, 75, 73, 25, "Spain", 8000000, 82, 1, 2),
		fixedPlayer("Andre Astralaga", model.Goalkeeper, 67, 45, 12, 71, 68, 69, 20, "Spain", 2000000, 80, 1, 2),
		fixedPlayer("Ronald Araujo", model.Defender, 85, 82, 48, 71, 87, 89, 25, "Uruguay", 70000000, 87, 2, 3),
		fixedPlayer("Jules Kounde", model.Defender, 84, 83, 43, 78, 85, 78, 26, "France", 65000000, 86, 3, 3),
		fixedPlayer("Andreas Christensen", model.Defender, 81, 74, 41, 82, 83, 77, 28, "Denmark", 35000000, 84, 2, 4),
		fixedPlayer("Alex Balde", model.Defender, 78, 87, 52, 76, 76, 71, 21, "Spain", 35000000, 89, 3, 3),
		fixedPlayer("Joao Cancelo", model.Defender, 86, 84, 74, 87, 77, 73, 30, "Portugal", 45000000, 85, 4, 4),
		fixedPlayer("Marco Alonso", model.Defender, 77, 68, 76, 79, 78, 82, 33, "Spain", 12000000, 81, 3, 4),
		fixedPlayer("Sergio Roberto", model.Defender, 76, 73, 68, 83, 74, 71, 32, "Spain", 8000000, 88, 3, 3),
		fixedPlayer("Inigo Martinez", model.Defender, 82, 66, 45, 78, 86, 84, 33, "Spain", 15000000, 83, 2, 4),
		fixedPlayer("Pablo Gonzales", model.Midfielder, 87, 74, 76, 90, 59, 66, 22, "Spain", 100000000, 88, 4, 4),
		fixedPlayer("Franco de Jong", model.Midfielder, 87, 78, 72, 89, 78, 79, 27, "Netherlands", 80000000, 92, 4, 4),
		fixedPlayer("Gavi", model.Midfielder, 84, 79, 68, 86, 71, 68, 20, "Spain", 90000000, 94, 4, 3),
		fixedPlayer("Ivan Gundogan", model.Midfielder, 85, 63, 81, 91, 73, 69, 34, "Germany", 25000000, 85, 4, 4),
		fixedPlayer("Oriol Romeu", model.Midfielder, 78, 62, 58, 81, 83, 81, 32, "Spain", 12000000, 87, 2, 3),
		fixedPlayer("Fermin Lopez", model.Midfielder, 76, 77, 73, 82, 65, 70, 21, "Spain", 20000000, 86, 3, 3),
		fixedPlayer("Pablo Torre", model.Midfielder, 74, 71, 75, 84, 52, 61, 21, "Spain", 15000000, 82, 4, 3),
		fixedPlayer("Marc Casado", model.Midfielder, 72, 69, 64, 79, 74, 68, 21, "Spain", 8000000, 84, 3, 3),
		fixedPlayer("Robert Lewanski", model.Forward, 90, 77, 94, 79, 43, 84, 36, "Poland", 35000000, 82, 4, 4),
		fixedPlayer("Raphinha", model.Forward, 84, 85, 82, 78, 37, 67, 28, "Brazil", 60000000, 87, 4, 4),
		fixedPlayer("Joao Felix", model.Forward, 83, 83, 81, 82, 31, 65, 25, "Portugal", 70000000, 84, 5, 4),
		fixedPlayer("Fernando Torres", model.Forward, 82, 86, 81, 76, 42, 69, 24, "Spain", 50000000, 88, 3, 3),
		fixedPlayer("Antonio Fati", model.Forward, 80, 84, 79, 74, 26, 62, 22, "Spain", 40000000, 81, 4, 3),
		fixedPlayer("Vitor Roque", model.Forward, 75, 81, 76, 68, 22, 72, 19, "Brazil", 25000000, 83, 3, 3),
	},
	"Liverpool Red": {
		fixedPlayer("Alex Becker", model.Goalkeeper, 90, 51, 18, 80, 91, 86, 31, "Brazil", 55000000, 86, 1, 3),
		fixedPlayer("Caoimhin Kelleher", model.Goalkeeper, 79, 49, 15, 75, 80, 78, 26, "Ireland", 18000000, 83, 1, 2),
		fixedPlayer("Adrian San Miguel", model.Goalkeeper, 71, 42, 14, 68, 72, 74, 37, "Spain", 2000000, 79, 1, 2),
		fixedPlayer("Vincent van Berg", model.Defender, 89, 76, 62, 91, 92, 86, 33, "Netherlands", 55000000, 84, 2, 3),
		fixedPlayer("Mohamed Saladin", model.Defender, 84, 82, 55, 85, 86, 83, 26, "Egypt", 60000000, 87, 2, 3),
		fixedPlayer("Andrew Robertson", model.Defender, 86, 86, 59, 84, 85, 78, 30, "Scotland", 40000000, 92, 3, 4),
		fixedPlayer("Trent Alexander-Arnold", model.Defender, 87, 76, 75, 93, 78, 71, 26, "England", 80000000, 89, 4, 4),
		fixedPlayer("Joel Matip", model.Defender, 81, 68, 48, 79, 84, 87, 33, "Cameroon", 15000000, 82, 2, 3),
		fixedPlayer("Kostas Tsimikas", model.Defender, 77, 82, 56, 78, 76, 73, 28, "Greece", 20000000, 88, 3, 3),
		fixedPlayer("Conor Bradley", model.Defender, 73, 84, 62, 75, 71, 68, 21, "Northern Ireland", 12000000, 87, 3, 3),
		fixedPlayer("Joe Gomez", model.Defender, 79, 78, 44, 74, 81, 82, 27, "England", 25000000, 85, 2, 3),
		fixedPlayer("Fabricio Tavares", model.Midfielder, 85, 68, 73, 86, 88, 83, 31, "Brazil", 35000000, 89, 3, 4),
		fixedPlayer("Jordan Henderson", model.Midfielder, 81, 67, 68, 86, 79, 76, 34, "England", 12000000, 91, 3, 3),
		fixedPlayer("Thiago Alcantara", model.Midfielder, 86, 68, 76, 92, 75, 70, 33, "Spain", 20000000, 81, 5, 4),
		fixedPlayer("Curtis Jones", model.Midfielder, 78, 75, 72, 81, 69, 71, 23, "England", 25000000, 86, 4, 3),
		fixedPlayer("Harvey Elliott", model.Midfielder, 76, 77, 74, 82, 58, 62, 21, "England", 30000000, 84, 4, 4),
		fixedPlayer("Stefan Bajcetic", model.Midfielder, 72, 71, 65, 76, 74, 68, 20, "Spain", 15000000, 83, 3, 3),
		fixedPlayer("Alex Mac Allister", model.Midfielder, 83, 73, 78, 87, 75, 74, 25, "Argentina", 60000000, 88, 4, 4),
		fixedPlayer("Dominik Szoboszlai", model.Midfielder, 81, 78, 82, 84, 68, 75, 24, "Hungary", 55000000, 87, 4, 4),
		fixedPlayer("Mohamed Saladin", model.Forward, 90, 90, 89, 81, 45, 75, 32, "Egypt", 65000000, 88, 4, 4),
		fixedPlayer("Sadio Mane", model.Forward, 88, 91, 85, 76, 44, 77, 32, "Senegal", 50000000, 92, 4, 3),
		fixedPlayer("Darwin Nunez", model.Forward, 82, 89, 83, 68, 38, 82, 25, "Uruguay", 75000000, 89, 3, 3),
		fixedPlayer("Diego Jota", model.Forward, 84, 84, 85, 74, 43, 71, 28, "Portugal", 55000000, 86, 4, 4),
		fixedPlayer("Luis Diaz", model.Forward, 84, 88, 78, 76, 39, 70, 27, "Colombia", 65000000, 87, 4, 3),
		fixedPlayer("Cody Gakpo", model.Forward, 81, 82, 80, 78, 35, 73, 25, "Netherlands", 50000000, 85, 4, 4),
	},
}
