package playergen

import (
	"fmt"
	"strings"

	"github.com/valorsim/valorsim/internal/models"
)

// FieldError describes a single failed check on a player or on
// generation options.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every failed check rather than stopping
// at the first one.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// errOrNil keeps callers from comparing a typed nil slice against nil.
func (v ValidationErrors) errOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

const (
	MinPlayerAge = 16
	MaxPlayerAge = 35

	MinRosterSize = 1
	MaxRosterSize = 10
)

// ValidateOptions checks generation options before any player is
// built.
func ValidateOptions(opts Options) error {
	var errs ValidationErrors
	if opts.Region != "" {
		if _, ok := models.Regions[opts.Region]; !ok {
			errs = append(errs, FieldError{"region", fmt.Sprintf("unknown region %q", opts.Region)})
		}
	}
	if opts.Role != "" && !validRole(opts.Role) {
		errs = append(errs, FieldError{"role", fmt.Sprintf("unknown role %q", opts.Role)})
	}
	if opts.MinRating < 0 || opts.MinRating > 100 {
		errs = append(errs, FieldError{"min_rating", "must be between 0 and 100"})
	}
	if opts.MaxRating < 0 || opts.MaxRating > 100 {
		errs = append(errs, FieldError{"max_rating", "must be between 0 and 100"})
	}
	if opts.MinRating > opts.MaxRating && opts.MaxRating != 0 {
		errs = append(errs, FieldError{"min_rating", "must not exceed max_rating"})
	}
	if opts.MaxAge != 0 && (opts.MaxAge < MinPlayerAge || opts.MaxAge > MaxPlayerAge) {
		errs = append(errs, FieldError{"max_age", fmt.Sprintf("must be between %d and %d", MinPlayerAge, MaxPlayerAge)})
	}
	return errs.errOrNil()
}

// ValidateRosterSize bounds roster generation requests.
func ValidateRosterSize(size int) error {
	if size < MinRosterSize || size > MaxRosterSize {
		return ValidationErrors{{"size", fmt.Sprintf("must be between %d and %d", MinRosterSize, MaxRosterSize)}}
	}
	return nil
}

// ValidatePlayer runs every structural check on a player and reports
// all failures together.
func ValidatePlayer(p *models.Player) error {
	var errs ValidationErrors

	if p.Age < MinPlayerAge || p.Age > MaxPlayerAge {
		errs = append(errs, FieldError{"age", fmt.Sprintf("must be between %d and %d", MinPlayerAge, MaxPlayerAge)})
	}
	if _, ok := models.Regions[p.Region]; !ok {
		errs = append(errs, FieldError{"region", fmt.Sprintf("unknown region %q", p.Region)})
	}
	if !validRole(p.PrimaryRole) {
		errs = append(errs, FieldError{"primary_role", fmt.Sprintf("unknown role %q", p.PrimaryRole)})
	}

	for field, value := range map[string]float64{
		"core_stats.aim":           p.CoreStats.Aim,
		"core_stats.game_sense":    p.CoreStats.GameSense,
		"core_stats.movement":      p.CoreStats.Movement,
		"core_stats.utility_usage": p.CoreStats.UtilityUsage,
		"core_stats.communication": p.CoreStats.Communication,
		"core_stats.clutch":        p.CoreStats.Clutch,
	} {
		if value < 0 || value > 100 {
			errs = append(errs, FieldError{field, "must be between 0 and 100"})
		}
	}

	for _, role := range models.AllRoles {
		prof, ok := p.RoleProficiencies[role]
		if !ok {
			errs = append(errs, FieldError{"role_proficiencies." + string(role), "missing"})
			continue
		}
		if prof < 0 || prof > 100 {
			errs = append(errs, FieldError{"role_proficiencies." + string(role), "must be between 0 and 100"})
		}
	}
	for _, agent := range models.AllAgents() {
		prof, ok := p.AgentProficiencies[agent]
		if !ok {
			errs = append(errs, FieldError{"agent_proficiencies." + agent, "missing"})
			continue
		}
		if prof < 0 || prof > 100 {
			errs = append(errs, FieldError{"agent_proficiencies." + agent, "must be between 0 and 100"})
		}
	}

	for field, value := range map[string]int{
		"career_stats.matches_played": p.CareerStats.MatchesPlayed,
		"career_stats.kills":          p.CareerStats.Kills,
		"career_stats.deaths":         p.CareerStats.Deaths,
		"career_stats.assists":        p.CareerStats.Assists,
		"career_stats.first_bloods":   p.CareerStats.FirstBloods,
		"career_stats.clutches":       p.CareerStats.Clutches,
	} {
		if value < 0 {
			errs = append(errs, FieldError{field, "must not be negative"})
		}
	}
	for field, value := range map[string]float64{
		"career_stats.win_rate":         p.CareerStats.WinRate,
		"career_stats.first_blood_rate": p.CareerStats.FirstBloodRate,
		"career_stats.clutch_rate":      p.CareerStats.ClutchRate,
	} {
		if value < 0 || value > 1 {
			errs = append(errs, FieldError{field, "must be between 0 and 1"})
		}
	}

	return errs.errOrNil()
}

func validRole(role models.Role) bool {
	for _, r := range models.AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
