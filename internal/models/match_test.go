package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtherTeam(t *testing.T) {
	assert.Equal(t, TeamB, OtherTeam(TeamA))
	assert.Equal(t, TeamA, OtherTeam(TeamB))
}

func TestEconomyLogNotesSerialization(t *testing.T) {
	log := EconomyLog{
		RoundNumber: 3,
		TeamAStart:  4000,
		Winner:      TeamA,
		Notes:       []string{"Match start", "Pistol round"},
	}

	data, err := json.Marshal(log)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"notes":"Match start; Pistol round"`)

	var decoded EconomyLog
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, log.RoundNumber, decoded.RoundNumber)
	assert.Equal(t, log.Notes, decoded.Notes)
}

func TestEconomyLogEmptyNotes(t *testing.T) {
	data, err := json.Marshal(EconomyLog{RoundNumber: 1})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"notes":""`)

	var decoded EconomyLog
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Empty(t, decoded.Notes)
}

func TestMatchResultWinner(t *testing.T) {
	result := MatchResult{Score: TeamCount{TeamA: 13, TeamB: 7}}
	assert.Equal(t, TeamA, result.Winner())

	result = MatchResult{Score: TeamCount{TeamA: 11, TeamB: 13}}
	assert.Equal(t, TeamB, result.Winner())
}

func TestPrimaryAgent(t *testing.T) {
	p := &Player{AgentProficiencies: map[string]float64{
		"Jett":  80,
		"Omen":  95,
		"Sova":  95,
		"Sage":  60,
		"Reyna": 70,
	}}
	// Tie between Omen and Sova breaks alphabetically.
	assert.Equal(t, "Omen", p.PrimaryAgent())

	empty := &Player{}
	assert.Equal(t, "Jett", empty.PrimaryAgent())
}

func TestAgentRole(t *testing.T) {
	role, ok := AgentRole("Jett")
	require.True(t, ok)
	assert.Equal(t, RoleDuelist, role)

	_, ok = AgentRole("Nobody")
	assert.False(t, ok)
}
