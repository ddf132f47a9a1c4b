package simulator

import (
	"sort"

	"github.com/valorsim/valorsim/internal/models"
)

// AssignAgents picks one agent per player for a team. Every role class
// gets covered at least once when the roster allows it, agents are
// unique within the team, and pre-seeded overrides are honored.
func AssignAgents(team []*models.Player, overrides map[string]string) map[string]string {
	assigned := make(map[string]string, len(team))
	taken := make(map[string]bool, len(team))

	for _, p := range team {
		if agent, ok := overrides[p.ID]; ok && !taken[agent] {
			assigned[p.ID] = agent
			taken[agent] = true
		}
	}

	// Strongest specialists claim their role class first.
	order := make([]*models.Player, len(team))
	copy(order, team)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].RoleProficiencies[order[i].PrimaryRole] >
			order[j].RoleProficiencies[order[j].PrimaryRole]
	})

	covered := make(map[models.Role]bool, 4)
	for _, agent := range assigned {
		if role, ok := models.AgentRole(agent); ok {
			covered[role] = true
		}
	}

	for _, p := range order {
		if _, done := assigned[p.ID]; done {
			continue
		}
		if covered[p.PrimaryRole] {
			continue
		}
		if agent := bestAgentInRole(p, p.PrimaryRole, taken); agent != "" {
			assigned[p.ID] = agent
			taken[agent] = true
			covered[p.PrimaryRole] = true
		}
	}

	// Everyone else takes their best remaining agent regardless of role.
	for _, p := range order {
		if _, done := assigned[p.ID]; done {
			continue
		}
		agent := bestAgentOverall(p, taken)
		if agent == "" {
			agent = "Jett"
		}
		assigned[p.ID] = agent
		taken[agent] = true
	}

	return assigned
}

func bestAgentInRole(p *models.Player, role models.Role, taken map[string]bool) string {
	best := ""
	bestProf := -1.0
	for _, agent := range models.RoleAgents[role] {
		if taken[agent] {
			continue
		}
		prof, ok := p.AgentProficiencies[agent]
		if !ok {
			continue
		}
		if prof > bestProf || (prof == bestProf && agent < best) {
			best = agent
			bestProf = prof
		}
	}
	return best
}

func bestAgentOverall(p *models.Player, taken map[string]bool) string {
	best := ""
	bestProf := -1.0
	for _, agent := range models.AllAgents() {
		if taken[agent] {
			continue
		}
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
		// No recorded proficiencies: fall back to any free agent,
		// defaulting to Jett when she is available.
		if !taken["Jett"] {
			return "Jett"
		}
		for _, agent := range models.AllAgents() {
			if !taken[agent] {
				return agent
			}
		}
	}
	return best
}
