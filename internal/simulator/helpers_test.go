package simulator

import (
	"fmt"

	"github.com/valorsim/valorsim/internal/models"
)

// testPlayer builds a player with uniform proficiencies so tests can
// reason about buy and duel outcomes from core stats alone.
func testPlayer(id string, role models.Role, aim, movement float64) *models.Player {
	p := &models.Player{
		ID:          id,
		FirstName:   "Test",
		LastName:    id,
		Age:         24,
		Region:      "EU",
		Nationality: "Sweden",
		PrimaryRole: role,
		CoreStats: models.CoreStats{
			Aim:           aim,
			GameSense:     70,
			Movement:      movement,
			UtilityUsage:  70,
			Communication: 70,
			Clutch:        70,
		},
		RoleProficiencies:  map[models.Role]float64{},
		AgentProficiencies: map[string]float64{},
		CareerStats: models.CareerStats{
			MatchesPlayed:  100,
			Kills:          2000,
			Deaths:         1800,
			Assists:        900,
			FirstBloods:    25,
			Clutches:       40,
			WinRate:        0.5,
			KDRatio:        2000.0 / 1800.0,
			KDARatio:       2900.0 / 1800.0,
			FirstBloodRate: 0.25,
			ClutchRate:     0.02,
		},
	}
	for _, r := range models.AllRoles {
		if r == role {
			p.RoleProficiencies[r] = 90
		} else {
			p.RoleProficiencies[r] = 60
		}
	}
	for r, agents := range models.RoleAgents {
		for _, agent := range agents {
			if r == role {
				p.AgentProficiencies[agent] = 85
			} else {
				p.AgentProficiencies[agent] = 60
			}
		}
	}
	return p
}

// testTeam builds a five-player roster covering the core roles.
func testTeam(prefix string) []*models.Player {
	roles := []models.Role{
		models.RoleDuelist,
		models.RoleController,
		models.RoleSentinel,
		models.RoleInitiator,
		models.RoleDuelist,
	}
	team := make([]*models.Player, 0, len(roles))
	for i, role := range roles {
		team = append(team, testPlayer(fmt.Sprintf("%s-%d", prefix, i), role, 70+float64(i), 70))
	}
	return team
}
