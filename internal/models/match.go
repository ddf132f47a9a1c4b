package models

import (
	"encoding/json"
	"strings"
)

// Team identifiers used throughout wire payloads.
const (
	TeamA = "team_a"
	TeamB = "team_b"
)

// OtherTeam returns the opposing side.
func OtherTeam(team string) string {
	if team == TeamA {
		return TeamB
	}
	return TeamA
}

// TeamCount holds one integer per side.
type TeamCount struct {
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

// Get returns the count for a side.
func (t TeamCount) Get(team string) int {
	if team == TeamA {
		return t.TeamA
	}
	return t.TeamB
}

// Loadout is what one player carries into a round.
type Loadout struct {
	Weapon     string `json:"weapon"`
	Armor      bool   `json:"armor"`
	TotalSpend int    `json:"total_spend"`
	Agent      string `json:"agent"`
}

// MapEvent is a single timestamped occurrence in a round. Type is one
// of "kill", "plant", "ability". Optional fields apply per type.
type MapEvent struct {
	Type     string   `json:"type"`
	Time     float64  `json:"time"`
	PlayerID string   `json:"player_id"`
	VictimID string   `json:"victim_id,omitempty"`
	Team     string   `json:"team,omitempty"`
	Site     string   `json:"site,omitempty"`
	Impact   string   `json:"impact,omitempty"`
	Position Position `json:"position"`
}

// PlayerPosition is a player's location and facing on the map.
type PlayerPosition struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Alive    bool    `json:"alive"`
	Team     string  `json:"team"`
}

// RoundMapData captures the positional record of one round.
type RoundMapData struct {
	MapName            string                    `json:"map_name"`
	Width              int                       `json:"width"`
	Height             int                       `json:"height"`
	PlayerPositions    map[string]PlayerPosition `json:"player_positions"`
	Events             []MapEvent                `json:"events"`
	SpikePlantPosition *Position                 `json:"spike_plant_position"`
	PlantSite          string                    `json:"plant_site,omitempty"`
}

// RoundResult is the full record of one simulated round.
type RoundResult struct {
	Winner         string                        `json:"winner"`
	RoundNumber    int                           `json:"round_number"`
	SpikePlanted   bool                          `json:"spike_planted"`
	Survivors      TeamCount                     `json:"survivors"`
	Weapons        map[string]map[string]string  `json:"weapons"`
	Armor          map[string]map[string]bool    `json:"armor"`
	PlayerLoadouts map[string]map[string]Loadout `json:"player_loadouts"`
	PlayerCredits  map[string]int                `json:"player_credits"`
	IsPistolRound  bool                          `json:"is_pistol_round"`
	Economy        TeamCount                     `json:"economy"`
	ClutchPlayer   *string                       `json:"clutch_player"`
	MapData        RoundMapData                  `json:"map_data"`
}

// EconomyLog records the money flow of one round. Notes accumulate as
// discrete lines and are joined into a single string only when the
// log is serialized.
type EconomyLog struct {
	RoundNumber  int      `json:"round_number"`
	TeamAStart   int      `json:"team_a_start"`
	TeamBStart   int      `json:"team_b_start"`
	TeamASpend   int      `json:"team_a_spend"`
	TeamBSpend   int      `json:"team_b_spend"`
	TeamAEnd     int      `json:"team_a_end"`
	TeamBEnd     int      `json:"team_b_end"`
	TeamAReward  int      `json:"team_a_reward"`
	TeamBReward  int      `json:"team_b_reward"`
	Winner       string   `json:"winner"`
	SpikePlanted bool     `json:"spike_planted"`
	Notes        []string `json:"-"`
}

// NotesText renders the accumulated note lines for the wire.
func (l EconomyLog) NotesText() string {
	return strings.Join(l.Notes, "; ")
}

// MarshalJSON emits notes as a single joined string.
func (l EconomyLog) MarshalJSON() ([]byte, error) {
	type alias EconomyLog
	return json.Marshal(struct {
		alias
		Notes string `json:"notes"`
	}{alias(l), l.NotesText()})
}

// UnmarshalJSON accepts the wire form and splits notes back into lines.
func (l *EconomyLog) UnmarshalJSON(data []byte) error {
	type alias EconomyLog
	var aux struct {
		alias
		Notes string `json:"notes"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*l = EconomyLog(aux.alias)
	if aux.Notes != "" {
		l.Notes = strings.Split(aux.Notes, "; ")
	}
	return nil
}

// PlayerPerformance accumulates one player's numbers over a match.
type PlayerPerformance struct {
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	Team         string `json:"team"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	FirstBloods  int    `json:"first_bloods"`
	Clutches     int    `json:"clutches"`
	Plants       int    `json:"plants"`
	Defuses      int    `json:"defuses"`
	MoneySpent   int    `json:"money_spent"`
	RoundsPlayed int    `json:"rounds_played"`
}

// MatchAnalytics summarizes a finished match.
type MatchAnalytics struct {
	AvgKillsPerRound float64 `json:"avg_kills_per_round"`
	SpendMean        float64 `json:"spend_mean"`
	SpendStdDev      float64 `json:"spend_std_dev"`
	TotalClutches    int     `json:"total_clutches"`
	TotalPlants      int     `json:"total_plants"`
	PistolRoundsWonA int     `json:"pistol_rounds_won_a"`
	PistolRoundsWonB int     `json:"pistol_rounds_won_b"`
}

// MatchResult is the engine's final output.
type MatchResult struct {
	Score        TeamCount                     `json:"score"`
	Rounds       []RoundResult                 `json:"rounds"`
	Duration     float64                       `json:"duration"` // minutes
	Map          string                        `json:"map"`
	MVP          string                        `json:"mvp"`
	EconomyLogs  []EconomyLog                  `json:"economy_logs"`
	PlayerAgents map[string]string             `json:"player_agents"`
	Performances map[string]*PlayerPerformance `json:"performances"`
	Analytics    *MatchAnalytics               `json:"analytics,omitempty"`
}

// Winner returns the side that reached match point.
func (m *MatchResult) Winner() string {
	if m.Score.TeamA > m.Score.TeamB {
		return TeamA
	}
	return TeamB
}
