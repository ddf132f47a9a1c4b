package models

import (
	"time"

	"gorm.io/datatypes"
)

// MatchHistory is the persisted record of a completed match.
type MatchHistory struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	MatchDate time.Time `json:"match_date"`
	MapName   string    `json:"map_name"`
	Duration  float64   `json:"duration"` // minutes

	TeamAName string `gorm:"index" json:"team_a_name"`
	TeamBName string `gorm:"index" json:"team_b_name"`

	TeamAScore int    `json:"team_a_score"`
	TeamBScore int    `json:"team_b_score"`
	Winner     string `json:"winner"`
	MVPID      string `json:"mvp_id"`
	Seed       int64  `json:"seed"`

	// Round-by-round payload, stored as-is
	RoundsData   datatypes.JSON `json:"rounds_data"`
	PlayerAgents datatypes.JSON `json:"player_agents"`

	EconomyLogs  []EconomyLogRecord       `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"economy_logs,omitempty"`
	Performances []MatchPerformanceRecord `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"performances,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MatchHistory) TableName() string {
	return "match_history"
}

// EconomyLogRecord is one persisted per-round economy row.
type EconomyLogRecord struct {
	ID          string `gorm:"primaryKey" json:"id"`
	MatchID     string `gorm:"index" json:"match_id"`
	RoundNumber int    `json:"round_number"`

	TeamAStart  int `json:"team_a_start"`
	TeamBStart  int `json:"team_b_start"`
	TeamAEnd    int `json:"team_a_end"`
	TeamBEnd    int `json:"team_b_end"`
	TeamASpend  int `json:"team_a_spend"`
	TeamBSpend  int `json:"team_b_spend"`
	TeamAReward int `json:"team_a_reward"`
	TeamBReward int `json:"team_b_reward"`

	Winner       string `json:"winner"`
	SpikePlanted bool   `gorm:"default:false" json:"spike_planted"`
	Notes        string `gorm:"type:text" json:"notes"`
}

func (EconomyLogRecord) TableName() string {
	return "economy_logs"
}

// MatchPerformanceRecord is one player's persisted match line.
type MatchPerformanceRecord struct {
	ID       string `gorm:"primaryKey" json:"id"`
	MatchID  string `gorm:"index" json:"match_id"`
	PlayerID string `gorm:"index" json:"player_id"`
	TeamName string `json:"team_name"`

	PlayerName string `json:"player_name"`
	PlayerRole string `json:"player_role"`

	Kills   int `gorm:"default:0" json:"kills"`
	Deaths  int `gorm:"default:0" json:"deaths"`
	Assists int `gorm:"default:0" json:"assists"`

	FirstBloods int `gorm:"default:0" json:"first_bloods"`
	Clutches    int `gorm:"default:0" json:"clutches"`
	Plants      int `gorm:"default:0" json:"plants"`
	Defuses     int `gorm:"default:0" json:"defuses"`

	MoneySpent int `gorm:"default:0" json:"money_spent"`
}

func (MatchPerformanceRecord) TableName() string {
	return "match_performances"
}

// MapRecord persists a custom map layout so it survives restarts.
// The layout column holds the normalized MapLayout as JSON.
type MapRecord struct {
	ID     string         `gorm:"primaryKey" json:"id"`
	Name   string         `gorm:"uniqueIndex" json:"name"`
	Layout datatypes.JSON `json:"layout"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MapRecord) TableName() string {
	return "maps"
}
