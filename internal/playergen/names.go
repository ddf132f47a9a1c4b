package playergen

// Name pools keyed by region. Coverage is intentionally shallow; the
// generator only needs plausible variety, not a census.
var firstNames = map[string][]string{
	"NA":    {"Tyler", "Jordan", "Austin", "Brandon", "Derek", "Marcus", "Kyle", "Ethan", "Victor", "Diego"},
	"EU":    {"Lucas", "Niklas", "Oliver", "Mateusz", "Erik", "Hugo", "Felix", "Adrian", "Pablo", "Emil"},
	"APAC":  {"Haruto", "Minjun", "Wei", "Somchai", "Arif", "Joshua", "Kenta", "Jihoon", "Ryu", "Daniel"},
	"BR":    {"Gabriel", "Lucas", "Matheus", "Pedro", "Rafael", "Felipe", "Gustavo", "Bruno", "Thiago", "Caio"},
	"LATAM": {"Santiago", "Mateo", "Sebastian", "Nicolas", "Joaquin", "Emiliano", "Tomas", "Benjamin", "Ivan", "Franco"},
}

var lastNames = map[string][]string{
	"NA":    {"Smith", "Johnson", "Miller", "Davis", "Garcia", "Martinez", "Anderson", "Taylor", "Moore", "Clark"},
	"EU":    {"Andersson", "Kowalski", "Muller", "Dubois", "Jensen", "Novak", "Berg", "Fischer", "Moreau", "Lindqvist"},
	"APAC":  {"Tanaka", "Kim", "Chen", "Nakamura", "Park", "Wang", "Sato", "Lee", "Yamamoto", "Nguyen"},
	"BR":    {"Silva", "Santos", "Oliveira", "Souza", "Costa", "Pereira", "Almeida", "Ferreira", "Rodrigues", "Lima"},
	"LATAM": {"Gonzalez", "Rodriguez", "Fernandez", "Lopez", "Diaz", "Torres", "Ramirez", "Flores", "Rojas", "Vargas"},
}
