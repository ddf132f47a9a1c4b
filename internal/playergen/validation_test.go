package playergen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorsim/valorsim/internal/models"
)

func validTestPlayer(t *testing.T) *models.Player {
	t.Helper()
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	p, err := gen.GeneratePlayer(Options{})
	require.NoError(t, err)
	return p
}

func TestValidatePlayerPasses(t *testing.T) {
	assert.NoError(t, ValidatePlayer(validTestPlayer(t)))
}

func TestValidatePlayerAggregatesAllFailures(t *testing.T) {
	p := validTestPlayer(t)
	p.Age = 40
	p.Region = "MOON"
	p.CoreStats.Aim = 140
	p.CareerStats.Kills = -5
	p.CareerStats.WinRate = 1.5
	delete(p.RoleProficiencies, models.RoleSentinel)

	err := ValidatePlayer(p)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 6)

	fields := make(map[string]bool)
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	assert.True(t, fields["age"])
	assert.True(t, fields["region"])
	assert.True(t, fields["core_stats.aim"])
	assert.True(t, fields["career_stats.kills"])
	assert.True(t, fields["career_stats.win_rate"])
	assert.True(t, fields["role_proficiencies.Sentinel"])
}

func TestValidatePlayerMissingProficiencies(t *testing.T) {
	p := validTestPlayer(t)
	delete(p.AgentProficiencies, "Jett")

	err := ValidatePlayer(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agent_proficiencies.Jett")
}

func TestValidateOptions(t *testing.T) {
	assert.NoError(t, ValidateOptions(Options{}))
	assert.NoError(t, ValidateOptions(Options{Region: "NA", Role: models.RoleDuelist, MinRating: 60, MaxRating: 90, MaxAge: 28}))

	err := ValidateOptions(Options{Region: "XX", Role: "flex", MinRating: -1})
	require.Error(t, err)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestValidateRosterSize(t *testing.T) {
	assert.NoError(t, ValidateRosterSize(1))
	assert.NoError(t, ValidateRosterSize(10))
	assert.Error(t, ValidateRosterSize(0))
	assert.Error(t, ValidateRosterSize(11))
}

func TestFieldErrorMessage(t *testing.T) {
	fe := FieldError{Field: "age", Message: "must be between 16 and 35"}
	assert.Equal(t, "age: must be between 16 and 35", fe.Error())

	errs := ValidationErrors{fe, {Field: "region", Message: "unknown region \"XX\""}}
	assert.Contains(t, errs.Error(), "; ")
}
