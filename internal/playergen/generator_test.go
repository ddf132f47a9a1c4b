package playergen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valorsim/valorsim/internal/models"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGeneratePlayerDefaults(t *testing.T) {
	gen := newTestGenerator(1)

	for i := 0; i < 20; i++ {
		p, err := gen.GeneratePlayer(Options{})
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.FirstName)
		assert.NotEmpty(t, p.LastName)
		assert.GreaterOrEqual(t, p.Age, MinPlayerAge)
		assert.LessOrEqual(t, p.Age, 30)
		assert.Contains(t, models.Regions, p.Region)
		assert.Contains(t, models.Regions[p.Region], p.Nationality)
		assert.Greater(t, p.Salary, 0.0)

		require.NoError(t, ValidatePlayer(p))
	}
}

func TestGeneratePlayerHonorsConstraints(t *testing.T) {
	gen := newTestGenerator(2)

	for i := 0; i < 20; i++ {
		p, err := gen.GeneratePlayer(Options{
			Region:    "BR",
			Role:      models.RoleSentinel,
			MinRating: 70,
			MaxRating: 80,
			MaxAge:    25,
		})
		require.NoError(t, err)

		assert.Equal(t, "BR", p.Region)
		assert.Equal(t, "Brazil", p.Nationality)
		assert.Equal(t, models.RoleSentinel, p.PrimaryRole)
		assert.LessOrEqual(t, p.Age, 25)

		// Biased stats may exceed the band by the 10% role bump.
		for _, stat := range []float64{
			p.CoreStats.Aim,
			p.CoreStats.GameSense,
			p.CoreStats.Movement,
			p.CoreStats.UtilityUsage,
			p.CoreStats.Communication,
			p.CoreStats.Clutch,
		} {
			assert.GreaterOrEqual(t, stat, 70.0)
			assert.LessOrEqual(t, stat, 88.0)
		}
	}
}

func TestRoleBiasBoostsSignatureStats(t *testing.T) {
	gen := newTestGenerator(3)

	var duelistAim, duelistOther float64
	n := 200
	for i := 0; i < n; i++ {
		p, err := gen.GeneratePlayer(Options{Role: models.RoleDuelist, MinRating: 60, MaxRating: 80})
		require.NoError(t, err)
		duelistAim += p.CoreStats.Aim
		duelistOther += p.CoreStats.GameSense
	}
	assert.Greater(t, duelistAim/float64(n), duelistOther/float64(n),
		"duelist aim should average above an unbiased stat")
}

func TestProficienciesFavorPrimaryRole(t *testing.T) {
	gen := newTestGenerator(4)
	p, err := gen.GeneratePlayer(Options{Role: models.RoleController})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, p.RoleProficiencies[models.RoleController], 80.0)
	for _, agent := range models.RoleAgents[models.RoleController] {
		assert.GreaterOrEqual(t, p.AgentProficiencies[agent], 80.0)
	}
	for _, agent := range models.RoleAgents[models.RoleDuelist] {
		assert.Less(t, p.AgentProficiencies[agent], 85.0)
	}
}

func TestSalaryAgeFactor(t *testing.T) {
	gen := newTestGenerator(5)
	base := &models.Player{Age: 22, CoreStats: models.CoreStats{Aim: 80, GameSense: 80, Movement: 80, UtilityUsage: 80, Communication: 80, Clutch: 80}}

	peak := *base
	peak.Age = 25
	young := *base
	young.Age = 18
	veteran := *base
	veteran.Age = 32

	assert.Greater(t, gen.salary(&peak), gen.salary(base))
	assert.Less(t, gen.salary(&young), gen.salary(base))
	assert.Less(t, gen.salary(&veteran), gen.salary(base))
}

func TestCareerStatsAreCoherent(t *testing.T) {
	gen := newTestGenerator(6)

	for i := 0; i < 20; i++ {
		p, err := gen.GeneratePlayer(Options{})
		require.NoError(t, err)
		cs := p.CareerStats

		assert.GreaterOrEqual(t, cs.MatchesPlayed, 50)
		assert.LessOrEqual(t, cs.MatchesPlayed, 500)
		assert.Positive(t, cs.Kills)
		assert.Positive(t, cs.Deaths)
		assert.InDelta(t, float64(cs.Kills)/float64(cs.Deaths), cs.KDRatio, 1e-9)
		assert.InDelta(t, float64(cs.Kills+cs.Assists)/float64(cs.Deaths), cs.KDARatio, 1e-9)
		assert.LessOrEqual(t, cs.FirstBloodRate, 1.0)
		assert.LessOrEqual(t, cs.ClutchRate, 1.0)
		assert.GreaterOrEqual(t, cs.WinRate, 0.4)
		assert.LessOrEqual(t, cs.WinRate, 0.6)
	}
}

func TestGenerateRosterCoversCoreRoles(t *testing.T) {
	gen := newTestGenerator(7)
	roster, err := gen.GenerateRoster(5, Options{})
	require.NoError(t, err)
	require.Len(t, roster, 5)

	for i, role := range models.AllRoles {
		assert.Equal(t, role, roster[i].PrimaryRole, "slot %d", i)
	}
}

func TestGenerateRosterSizeBounds(t *testing.T) {
	gen := newTestGenerator(8)

	_, err := gen.GenerateRoster(0, Options{})
	assert.Error(t, err)
	_, err = gen.GenerateRoster(11, Options{})
	assert.Error(t, err)

	roster, err := gen.GenerateRoster(2, Options{})
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestGenerationIsDeterministicForASeed(t *testing.T) {
	first, err := newTestGenerator(42).GeneratePlayer(Options{})
	require.NoError(t, err)
	second, err := newTestGenerator(42).GeneratePlayer(Options{})
	require.NoError(t, err)

	// IDs are random UUIDs; everything else must match.
	second.ID = first.ID
	assert.Equal(t, first, second)
}

func TestInvalidOptionsRejected(t *testing.T) {
	gen := newTestGenerator(9)

	_, err := gen.GeneratePlayer(Options{Region: "MARS"})
	assert.Error(t, err)

	_, err = gen.GeneratePlayer(Options{MinRating: 90, MaxRating: 60})
	assert.Error(t, err)

	_, err = gen.GeneratePlayer(Options{MaxAge: 12})
	assert.Error(t, err)
}
