package playergen

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/valorsim/valorsim/internal/models"
)

const (
	defaultMinRating = 50
	defaultMaxRating = 95
	defaultMaxAge    = 30

	baseSalary = 50000
)

// roleBias lists the two core stats each role class leans on. Biased
// stats get a 10% bump, capped at 100.
var roleBias = map[models.Role][2]string{
	models.RoleDuelist:    {"aim", "movement"},
	models.RoleController: {"utility_usage", "game_sense"},
	models.RoleSentinel:   {"game_sense", "clutch"},
	models.RoleInitiator:  {"utility_usage", "communication"},
}

// Options constrains a single generated player. Zero values mean
// "no constraint": random region, random role, default rating band.
type Options struct {
	Region    string
	Role      models.Role
	MinRating float64
	MaxRating float64
	MaxAge    int
}

func (o Options) withDefaults() Options {
	if o.MinRating == 0 {
		o.MinRating = defaultMinRating
	}
	if o.MaxRating == 0 {
		o.MaxRating = defaultMaxRating
	}
	if o.MaxAge == 0 {
		o.MaxAge = defaultMaxAge
	}
	return o
}

// Generator produces synthetic players. All randomness flows through
// one source so seeded generation is reproducible.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// GeneratePlayer builds one player within the given constraints.
func (g *Generator) GeneratePlayer(opts Options) (*models.Player, error) {
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	region := opts.Region
	if region == "" {
		region = g.randomRegion()
	}
	role := opts.Role
	if role == "" {
		role = models.AllRoles[g.rng.Intn(len(models.AllRoles))]
	}

	countries := models.Regions[region]
	age := MinPlayerAge + g.rng.Intn(opts.MaxAge-MinPlayerAge+1)

	p := &models.Player{
		ID:          uuid.NewString(),
		FirstName:   pick(g.rng, firstNames[region]),
		LastName:    pick(g.rng, lastNames[region]),
		Age:         age,
		Nationality: pick(g.rng, countries),
		Region:      region,
		PrimaryRole: role,
	}

	p.CoreStats = g.generateCoreStats(role, opts.MinRating, opts.MaxRating)
	p.RoleProficiencies = g.generateRoleProficiencies(role)
	p.AgentProficiencies = g.generateAgentProficiencies(role)
	p.Salary = g.salary(p)
	p.CareerStats = g.generateCareerStats()

	if err := ValidatePlayer(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GenerateRoster builds a team. The first four slots cover each role
// class once so the roster can field a sensible composition; any
// remaining slots are unconstrained.
func (g *Generator) GenerateRoster(size int, opts Options) ([]*models.Player, error) {
	if err := ValidateRosterSize(size); err != nil {
		return nil, err
	}
	roster := make([]*models.Player, 0, size)
	for i := 0; i < size; i++ {
		slotOpts := opts
		if i < len(models.AllRoles) {
			slotOpts.Role = models.AllRoles[i]
		}
		p, err := g.GeneratePlayer(slotOpts)
		if err != nil {
			return nil, err
		}
		roster = append(roster, p)
	}
	return roster, nil
}

func (g *Generator) generateCoreStats(role models.Role, lo, hi float64) models.CoreStats {
	stats := map[string]float64{
		"aim":           g.uniform(lo, hi),
		"game_sense":    g.uniform(lo, hi),
		"movement":      g.uniform(lo, hi),
		"utility_usage": g.uniform(lo, hi),
		"communication": g.uniform(lo, hi),
		"clutch":        g.uniform(lo, hi),
	}
	for _, biased := range roleBias[role] {
		stats[biased] = min100(stats[biased] * 1.10)
	}
	return models.CoreStats{
		Aim:           stats["aim"],
		GameSense:     stats["game_sense"],
		Movement:      stats["movement"],
		UtilityUsage:  stats["utility_usage"],
		Communication: stats["communication"],
		Clutch:        stats["clutch"],
	}
}

func (g *Generator) generateRoleProficiencies(primary models.Role) map[models.Role]float64 {
	profs := make(map[models.Role]float64, len(models.AllRoles))
	for _, role := range models.AllRoles {
		if role == primary {
			profs[role] = g.uniform(80, 100)
		} else {
			profs[role] = g.uniform(50, 85)
		}
	}
	return profs
}

func (g *Generator) generateAgentProficiencies(primary models.Role) map[string]float64 {
	profs := make(map[string]float64)
	for _, role := range models.AllRoles {
		for _, agent := range models.RoleAgents[role] {
			if role == primary {
				profs[agent] = g.uniform(80, 100)
			} else {
				profs[agent] = g.uniform(50, 85)
			}
		}
	}
	return profs
}

// salary scales a base figure by overall skill and an age factor that
// pays peak-window players a premium.
func (g *Generator) salary(p *models.Player) float64 {
	ageFactor := 1.0
	switch {
	case p.Age >= 23 && p.Age <= 27:
		ageFactor = 1.2
	case p.Age < 20:
		ageFactor = 0.8
	case p.Age > 30:
		ageFactor = 0.7
	}
	return baseSalary * (p.CoreStats.Mean() / 100) * ageFactor
}

func (g *Generator) generateCareerStats() models.CareerStats {
	matches := 50 + g.rng.Intn(451)
	roundsPerMatch := 16 + g.rng.Intn(9)
	totalRounds := matches * roundsPerMatch

	kills := int(g.uniform(0.7, 1.2) * float64(totalRounds))
	deaths := int(g.uniform(0.6, 1.0) * float64(totalRounds))
	assists := int(g.uniform(0.3, 0.7) * float64(totalRounds))
	firstBloods := int(g.uniform(0.15, 0.35) * float64(matches))
	clutches := int(g.uniform(0.02, 0.08) * float64(totalRounds))
	if deaths == 0 {
		deaths = 1
	}

	return models.CareerStats{
		MatchesPlayed:  matches,
		Kills:          kills,
		Deaths:         deaths,
		Assists:        assists,
		FirstBloods:    firstBloods,
		Clutches:       clutches,
		WinRate:        g.uniform(0.4, 0.6),
		KDRatio:        float64(kills) / float64(deaths),
		KDARatio:       float64(kills+assists) / float64(deaths),
		FirstBloodRate: float64(firstBloods) / float64(matches),
		ClutchRate:     float64(clutches) / float64(totalRounds),
	}
}

func (g *Generator) randomRegion() string {
	regions := make([]string, 0, len(models.Regions))
	for region := range models.Regions {
		regions = append(regions, region)
	}
	// Map order is random; sort for a reproducible draw.
	sort.Strings(regions)
	return regions[g.rng.Intn(len(regions))]
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
