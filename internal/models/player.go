package models

// Role is one of the four agent classes a player can specialize in.
type Role string

const (
	RoleDuelist    Role = "Duelist"
	RoleController Role = "Controller"
	RoleSentinel   Role = "Sentinel"
	RoleInitiator  Role = "Initiator"
)

// AllRoles lists every role class in a stable order.
var AllRoles = []Role{RoleController, RoleDuelist, RoleInitiator, RoleSentinel}

// RoleAgents maps each role class to its closed agent pool.
var RoleAgents = map[Role][]string{
	RoleController: {"Omen", "Brimstone", "Viper", "Astra", "Harbor"},
	RoleDuelist:    {"Jett", "Phoenix", "Raze", "Reyna", "Yoru", "Neon"},
	RoleInitiator:  {"Sova", "Breach", "Skye", "KAY/O", "Fade", "Gekko"},
	RoleSentinel:   {"Killjoy", "Cypher", "Sage", "Chamber", "Deadlock"},
}

// AllAgents returns the full agent pool across every role class.
func AllAgents() []string {
	agents := make([]string, 0, 22)
	for _, role := range AllRoles {
		agents = append(agents, RoleAgents[role]...)
	}
	return agents
}

// AgentRole returns the role class an agent belongs to.
func AgentRole(agent string) (Role, bool) {
	for role, agents := range RoleAgents {
		for _, a := range agents {
			if a == agent {
				return role, true
			}
		}
	}
	return "", false
}

// Regions maps each competitive region to its member countries.
var Regions = map[string][]string{
	"NA":    {"USA", "Canada", "Mexico"},
	"EU":    {"France", "Germany", "UK", "Spain", "Sweden", "Denmark", "Poland"},
	"APAC":  {"Japan", "Korea", "China", "Thailand", "Indonesia", "Philippines"},
	"BR":    {"Brazil"},
	"LATAM": {"Argentina", "Chile", "Colombia", "Peru"},
}

// CoreStats holds a player's in-game skill ratings, each 0-100.
type CoreStats struct {
	Aim           float64 `json:"aim"`
	GameSense     float64 `json:"game_sense"`
	Movement      float64 `json:"movement"`
	UtilityUsage  float64 `json:"utility_usage"`
	Communication float64 `json:"communication"`
	Clutch        float64 `json:"clutch"`
}

// Mean returns the average of the six core ratings.
func (s CoreStats) Mean() float64 {
	return (s.Aim + s.GameSense + s.Movement + s.UtilityUsage + s.Communication + s.Clutch) / 6
}

// CareerStats holds aggregate historical performance numbers.
type CareerStats struct {
	MatchesPlayed  int     `json:"matches_played"`
	Kills          int     `json:"kills"`
	Deaths         int     `json:"deaths"`
	Assists        int     `json:"assists"`
	FirstBloods    int     `json:"first_bloods"`
	Clutches       int     `json:"clutches"`
	WinRate        float64 `json:"win_rate"`
	KDRatio        float64 `json:"kd_ratio"`
	KDARatio       float64 `json:"kda_ratio"`
	FirstBloodRate float64 `json:"first_blood_rate"`
	ClutchRate     float64 `json:"clutch_rate"`
}

// Player is the engine's input record. It is treated as read-only for
// the duration of a match.
type Player struct {
	ID                 string             `json:"id"`
	FirstName          string             `json:"first_name"`
	LastName           string             `json:"last_name"`
	Age                int                `json:"age"`
	Nationality        string             `json:"nationality"`
	Region             string             `json:"region"`
	PrimaryRole        Role               `json:"primary_role"`
	CoreStats          CoreStats          `json:"core_stats"`
	RoleProficiencies  map[Role]float64   `json:"role_proficiencies"`
	AgentProficiencies map[string]float64 `json:"agent_proficiencies"`
	Salary             float64            `json:"salary"`
	CareerStats        CareerStats        `json:"career_stats"`
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// PrimaryAgent returns the agent with the highest proficiency. Ties
// break by agent name so the answer is stable across runs. Players
// with no recorded proficiencies default to Jett.
func (p *Player) PrimaryAgent() string {
	best := ""
	bestProf := -1.0
	for _, agent := range AllAgents() {
		prof, ok := p.AgentProficiencies[agent]
		if !ok {
			continue
		}
		if prof > bestProf || (prof == bestProf && agent < best) {
			best = agent
			bestProf = prof
		}
	}
	if best == "" {
		return "Jett"
	}
	return best
}
