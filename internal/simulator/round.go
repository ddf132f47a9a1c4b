package simulator

import (
	"math"
	"math/rand"

	"github.com/valorsim/valorsim/internal/models"
)

const (
	roundTimeSeconds = 100
	postPlantSeconds = 45

	engagementChance = 0.7
	plantChance      = 0.3
)

// attackerStrategies and defenderStrategies are chosen per round.
// They influence the engagement odds only; there are no hard branches
// on strategy.
var attackerStrategies = []string{"aggressive_push", "split_push", "fast_execute", "default", "eco"}

var defenderStrategies = []string{"passive_defense", "aggressive_defense", "stack_a", "stack_b", "balanced_defense"}

// strategyModifiers maps a strategy to its attacker-win nudge.
var strategyModifiers = map[string]float64{
	"aggressive_push":    0.10,
	"split_push":         0.05,
	"fast_execute":       0.15,
	"default":            0.0,
	"eco":                -0.10,
	"passive_defense":    -0.05,
	"aggressive_defense": 0.05,
	"stack_a":            -0.10,
	"stack_b":            -0.10,
	"balanced_defense":   -0.15,
}

// abilityImpacts maps an ability-use tier to its win-probability nudge.
var abilityImpacts = map[string]float64{
	"perfect": 0.15,
	"great":   0.10,
	"good":    0.05,
	"bad":     -0.05,
}

var abilityTiers = []string{"perfect", "great", "good", "bad"}

// roundSimulator runs one round against shared match state.
type roundSimulator struct {
	rng     *rand.Rand
	weapons *WeaponCatalog
	advisor *BuyAdvisor
	economy *EconomyEngine
	layout  models.MapLayout
}

type combatant struct {
	player  *models.Player
	team    string
	loadout models.Loadout
	weapon  models.Weapon
	pos     models.Position
	alive   bool
}

type roundOutcome struct {
	result     models.RoundResult
	spends     map[string]int // per-team spend totals
	plantSide  string
	plantCount map[string]int // plants per player
	elapsed    float64        // seconds of simulated round time
}

// AttackerSide returns which side attacks in a round. Sides swap once
// at the half; with no overtime modeled the second-half attacker stays
// team B until the score terminates.
func AttackerSide(roundNumber int) string {
	if roundNumber < 12 {
		return models.TeamA
	}
	return models.TeamB
}

func (rs *roundSimulator) simulateRound(
	teamA, teamB []*models.Player,
	agents map[string]string,
	roundNumber int,
	previousWinner string,
) roundOutcome {
	attackerSide := AttackerSide(roundNumber)
	isPistol := IsPistolRound(roundNumber)

	// Buy phase
	loadouts := map[string]map[string]models.Loadout{
		models.TeamA: make(map[string]models.Loadout, len(teamA)),
		models.TeamB: make(map[string]models.Loadout, len(teamB)),
	}
	spends := map[string]int{models.TeamA: 0, models.TeamB: 0}

	buyForTeam := func(team string, players []*models.Player) {
		roundType := ClassifyRound(roundNumber, rs.economy.TeamEconomy(team), rs.economy.LossStreak(team))
		if isPistol {
			roundType = RoundPistol
		}
		for _, p := range players {
			decision := rs.advisor.Decide(p, rs.economy.Credits(p.ID), roundType)
			rs.economy.Spend(p.ID, decision.TotalSpend)
			loadouts[team][p.ID] = models.Loadout{
				Weapon:     decision.Weapon,
				Armor:      decision.Armor,
				TotalSpend: decision.TotalSpend,
				Agent:      agents[p.ID],
			}
			spends[team] += decision.TotalSpend
		}
	}
	buyForTeam(models.TeamA, teamA)
	buyForTeam(models.TeamB, teamB)

	// Place everyone near their spawn.
	combatants := make([]*combatant, 0, len(teamA)+len(teamB))
	place := func(team string, players []*models.Player) {
		spawn := rs.layout.DefenderSpawn
		if team == attackerSide {
			spawn = rs.layout.AttackerSpawn
		}
		for _, p := range players {
			combatants = append(combatants, &combatant{
				player:  p,
				team:    team,
				loadout: loadouts[team][p.ID],
				weapon:  rs.weapons.Lookup(loadouts[team][p.ID].Weapon),
				pos: clampPos(models.Position{
					X: spawn.X + rs.uniform(-0.05, 0.05),
					Y: spawn.Y + rs.uniform(-0.05, 0.05),
				}),
				alive: true,
			})
		}
	}
	place(models.TeamA, teamA)
	place(models.TeamB, teamB)

	initialRotations := make(map[string]float64, len(combatants))
	for _, c := range combatants {
		initialRotations[c.player.ID] = rs.rng.Float64() * 360
	}

	// Strategy and ability nudges for this round's engagements.
	attackerStrategy := rs.pickStrategy(attackerStrategies, previousWinner, attackerSide)
	defenderStrategy := rs.pickStrategy(defenderStrategies, previousWinner, models.OtherTeam(attackerSide))
	mod := strategyModifiers[attackerStrategy] + strategyModifiers[defenderStrategy]

	events := make([]models.MapEvent, 0, 16)
	simTime := 0.0
	timeLeft := float64(roundTimeSeconds)
	spikePlanted := false
	plantSite := ""
	var plantPos *models.Position
	clutchCandidate := ""
	plantCount := make(map[string]int)

	// One ability roll per side per round.
	for _, side := range []string{attackerSide, models.OtherTeam(attackerSide)} {
		if rs.rng.Float64() >= 0.4 {
			continue
		}
		caster := rs.randomAlive(combatants, side)
		if caster == nil {
			continue
		}
		tier := abilityTiers[rs.rng.Intn(len(abilityTiers))]
		impact := abilityImpacts[tier]
		if side == attackerSide {
			mod += impact
		} else {
			mod -= impact
		}
		events = append(events, models.MapEvent{
			Type:     "ability",
			Time:     simTime,
			PlayerID: caster.player.ID,
			Team:     side,
			Impact:   tier,
			Position: caster.pos,
		})
	}
	mod = clampMod(mod)

	for timeLeft > 0 && !spikePlanted && rs.aliveCount(combatants, attackerSide) > 0 &&
		rs.aliveCount(combatants, models.OtherTeam(attackerSide)) > 0 {

		tick := rs.uniform(5, 15)
		simTime += tick
		timeLeft -= tick

		rs.moveCombatants(combatants, attackerSide)

		if rs.rng.Float64() < engagementChance {
			rs.resolveEngagement(combatants, attackerSide, mod, simTime, &events, &clutchCandidate)
		}

		if !spikePlanted && rs.rng.Float64() < plantChance && rs.aliveCount(combatants, attackerSide) > 0 {
			site, pos, planter := rs.plantSpike(combatants, attackerSide)
			spikePlanted = true
			plantSite = site
			plantPos = &pos
			plantCount[planter.player.ID]++
			events = append(events, models.MapEvent{
				Type:     "plant",
				Time:     simTime,
				PlayerID: planter.player.ID,
				Team:     attackerSide,
				Site:     site,
				Position: pos,
			})
			if timeLeft > postPlantSeconds {
				timeLeft = postPlantSeconds
			}
		}
	}

	// Outcome
	defenderSide := models.OtherTeam(attackerSide)
	var winner string
	switch {
	case rs.aliveCount(combatants, defenderSide) == 0:
		winner = attackerSide
	case rs.aliveCount(combatants, attackerSide) == 0:
		winner = defenderSide
	case spikePlanted:
		winner = attackerSide
	default:
		winner = defenderSide
	}

	var clutchPlayer *string
	if clutchCandidate != "" {
		for _, c := range combatants {
			if c.player.ID == clutchCandidate && c.alive && c.team == winner {
				id := clutchCandidate
				clutchPlayer = &id
				break
			}
		}
	}

	positions := make(map[string]models.PlayerPosition, len(combatants))
	weaponsOut := map[string]map[string]string{models.TeamA: {}, models.TeamB: {}}
	armorOut := map[string]map[string]bool{models.TeamA: {}, models.TeamB: {}}
	for _, c := range combatants {
		positions[c.player.ID] = models.PlayerPosition{
			X:        c.pos.X,
			Y:        c.pos.Y,
			Rotation: initialRotations[c.player.ID],
			Alive:    c.alive,
			Team:     c.team,
		}
		weaponsOut[c.team][c.player.ID] = c.loadout.Weapon
		armorOut[c.team][c.player.ID] = c.loadout.Armor
	}

	plantingSide := ""
	if spikePlanted {
		plantingSide = attackerSide
	}

	return roundOutcome{
		result: models.RoundResult{
			Winner:       winner,
			RoundNumber:  roundNumber,
			SpikePlanted: spikePlanted,
			Survivors: models.TeamCount{
				TeamA: rs.aliveCount(combatants, models.TeamA),
				TeamB: rs.aliveCount(combatants, models.TeamB),
			},
			Weapons:        weaponsOut,
			Armor:          armorOut,
			PlayerLoadouts: loadouts,
			IsPistolRound:  isPistol,
			Economy: models.TeamCount{
				TeamA: rs.economy.TeamEconomy(models.TeamA),
				TeamB: rs.economy.TeamEconomy(models.TeamB),
			},
			ClutchPlayer: clutchPlayer,
			MapData: models.RoundMapData{
				MapName:            rs.layout.Name,
				Width:              rs.layout.Width,
				Height:             rs.layout.Height,
				PlayerPositions:    positions,
				Events:             events,
				SpikePlantPosition: plantPos,
				PlantSite:          plantSite,
			},
		},
		spends:     spends,
		plantSide:  plantingSide,
		plantCount: plantCount,
		elapsed:    simTime,
	}
}

// pickStrategy favors aggressive variants after a lost round.
func (rs *roundSimulator) pickStrategy(pool []string, previousWinner, side string) string {
	if previousWinner != "" && previousWinner != side && rs.rng.Float64() < 0.6 {
		// First two entries in each pool are the aggressive variants.
		return pool[rs.rng.Intn(2)]
	}
	return pool[rs.rng.Intn(len(pool))]
}

func (rs *roundSimulator) moveCombatants(combatants []*combatant, attackerSide string) {
	targets := rs.layout.CalloutsOfType(models.AreaASite, models.AreaBSite, models.AreaCSite, models.AreaMid, models.AreaConnector)
	for _, c := range combatants {
		if !c.alive {
			continue
		}
		var target models.Position
		if len(targets) > 0 {
			target = targets[rs.rng.Intn(len(targets))].Position
		} else {
			target = models.Position{X: 0.5, Y: 0.5}
		}
		step := rs.uniform(0.05, 0.15)
		if c.team != attackerSide {
			// Defenders hold more: half the stride, 30% chance to stay.
			if rs.rng.Float64() < 0.3 {
				continue
			}
			step /= 2
		}
		c.pos = clampPos(stepToward(c.pos, target, step))
	}
}

func (rs *roundSimulator) resolveEngagement(
	combatants []*combatant,
	attackerSide string,
	mod float64,
	simTime float64,
	events *[]models.MapEvent,
	clutchCandidate *string,
) {
	att := rs.randomAlive(combatants, attackerSide)
	def := rs.randomAlive(combatants, models.OtherTeam(attackerSide))
	if att == nil || def == nil {
		return
	}

	r := models.RangeBands[rs.rng.Intn(len(models.RangeBands))]
	attacker := Duelist{Player: att.player, Weapon: att.weapon, Armor: att.loadout.Armor}
	defender := Duelist{Player: def.player, Weapon: def.weapon, Armor: def.loadout.Armor}

	attackerWins := ResolveDuelWithModifier(rs.rng, attacker, defender, r, mod)

	victim, killer := def, att
	if !attackerWins {
		victim, killer = att, def
	}
	victim.alive = false
	*events = append(*events, models.MapEvent{
		Type:     "kill",
		Time:     simTime,
		PlayerID: killer.player.ID,
		VictimID: victim.player.ID,
		Team:     killer.team,
		Position: victim.pos,
	})

	// Clutch detection: one player left facing two or more.
	for _, side := range []string{models.TeamA, models.TeamB} {
		if rs.aliveCount(combatants, side) == 1 && rs.aliveCount(combatants, models.OtherTeam(side)) >= 2 {
			for _, c := range combatants {
				if c.alive && c.team == side {
					*clutchCandidate = c.player.ID
				}
			}
		}
	}
}

func (rs *roundSimulator) plantSpike(combatants []*combatant, attackerSide string) (string, models.Position, *combatant) {
	site := rs.layout.Sites[rs.rng.Intn(len(rs.layout.Sites))]
	base := models.Position{X: 0.5, Y: 0.5}
	if c, ok := rs.layout.SiteCallout(site); ok {
		base = c.Position
	}
	pos := clampPos(models.Position{
		X: base.X + rs.uniform(-0.03, 0.03),
		Y: base.Y + rs.uniform(-0.03, 0.03),
	})

	planter := rs.randomAlive(combatants, attackerSide)
	planter.pos = pos
	for _, c := range combatants {
		if c.alive && c.team == attackerSide && c != planter {
			c.pos = clampPos(models.Position{
				X: pos.X + rs.uniform(-0.10, 0.10),
				Y: pos.Y + rs.uniform(-0.10, 0.10),
			})
		}
	}
	return site, pos, planter
}

func (rs *roundSimulator) aliveCount(combatants []*combatant, team string) int {
	n := 0
	for _, c := range combatants {
		if c.alive && c.team == team {
			n++
		}
	}
	return n
}

func (rs *roundSimulator) randomAlive(combatants []*combatant, team string) *combatant {
	alive := make([]*combatant, 0, 5)
	for _, c := range combatants {
		if c.alive && c.team == team {
			alive = append(alive, c)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	return alive[rs.rng.Intn(len(alive))]
}

func (rs *roundSimulator) uniform(lo, hi float64) float64 {
	return lo + rs.rng.Float64()*(hi-lo)
}

func stepToward(from, to models.Position, step float64) models.Position {
	dx := to.X - from.X
	dy := to.Y - from.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d == 0 {
		return from
	}
	if d <= step {
		return to
	}
	return models.Position{X: from.X + dx/d*step, Y: from.Y + dy/d*step}
}

func clampPos(p models.Position) models.Position {
	return models.Position{X: clamp01(p.X), Y: clamp01(p.Y)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampMod(m float64) float64 {
	if m > 0.3 {
		return 0.3
	}
	if m < -0.3 {
		return -0.3
	}
	return m
}
