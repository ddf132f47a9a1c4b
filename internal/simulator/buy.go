package simulator

import "github.com/valorsim/valorsim/internal/models"

// RoundType classifies a team's spending posture for a round.
type RoundType string

const (
	RoundPistol  RoundType = "pistol"
	RoundEco     RoundType = "eco"
	RoundForce   RoundType = "force_buy"
	RoundHalfBuy RoundType = "half_buy"
	RoundFullBuy RoundType = "full_buy"
	RoundSemiBuy RoundType = "semi_buy"
)

const (
	armorCostPistol = 400
	armorCostFull   = 1000
)

// ClassifyRound picks the default round type from team economy and
// loss streak. Rounds 0 and 12 are always pistol rounds.
func ClassifyRound(roundNumber, teamEconomy, lossStreak int) RoundType {
	if IsPistolRound(roundNumber) {
		return RoundPistol
	}
	switch {
	case teamEconomy >= 4000:
		return RoundFullBuy
	case teamEconomy >= 2000 || lossStreak >= 2:
		return RoundForce
	default:
		return RoundEco
	}
}

// IsPistolRound reports whether a round starts a half.
func IsPistolRound(roundNumber int) bool {
	return roundNumber == 0 || roundNumber == 12
}

// BuyDecision is a buy advisor verdict for one player.
type BuyDecision struct {
	Weapon     string
	Armor      bool
	TotalSpend int
}

// BuyAdvisor decides weapon and armor purchases from per-player
// credits and preferences. It is a pure function of its inputs.
type BuyAdvisor struct {
	weapons *WeaponCatalog
}

// NewBuyAdvisor builds an advisor over a weapon catalog.
func NewBuyAdvisor(weapons *WeaponCatalog) *BuyAdvisor {
	return &BuyAdvisor{weapons: weapons}
}

// Decide picks a weapon, then armor if the remaining credits allow it.
func (a *BuyAdvisor) Decide(p *models.Player, credits int, roundType RoundType) BuyDecision {
	weapon := a.pickWeapon(p, credits, roundType)
	spend := a.weapons.Cost(weapon)
	remaining := credits - spend

	armorCost := armorCostFull
	if roundType == RoundPistol {
		armorCost = armorCostPistol
	}

	buyArmor := false
	if remaining >= armorCost {
		if roundType != RoundEco {
			buyArmor = true
		} else if weapon == "Classic" {
			// Eco rounds skip armor unless the player saved on a free
			// pistol and still has the credits.
			buyArmor = true
		}
	}
	if buyArmor {
		spend += armorCost
	}

	return BuyDecision{Weapon: weapon, Armor: buyArmor, TotalSpend: spend}
}

func (a *BuyAdvisor) pickWeapon(p *models.Player, credits int, roundType RoundType) string {
	aim := p.CoreStats.Aim
	movement := p.CoreStats.Movement
	utility := p.CoreStats.UtilityUsage
	role := p.PrimaryRole
	agent := p.PrimaryAgent()

	switch roundType {
	case RoundPistol:
		return pistolBuy(credits, aim, movement, role)
	case RoundEco:
		return ecoBuy(credits, aim, movement, role, agent)
	case RoundForce, RoundSemiBuy:
		return forceBuy(credits, aim, movement, role, agent)
	case RoundHalfBuy:
		return halfBuy(credits, aim, movement, role, agent)
	default:
		return fullBuy(credits, aim, movement, utility, role, agent)
	}
}

func pistolBuy(credits int, aim, movement float64, role models.Role) string {
	switch {
	case credits >= 800 && aim > 90:
		return "Sheriff"
	case credits >= 500 && aim > 75:
		return "Ghost"
	case credits >= 450 && (role == models.RoleDuelist || movement > 70):
		return "Frenzy"
	case credits >= 200 && (role == models.RoleSentinel || role == models.RoleController):
		return "Shorty"
	default:
		return "Classic"
	}
}

func ecoBuy(credits int, aim, movement float64, role models.Role, agent string) string {
	switch {
	case credits < 400:
		return "Classic"
	case credits >= 800 && aim > 80:
		return "Sheriff"
	case credits >= 700 && aim > 60:
		return "Ghost"
	case credits >= 150 && (agent == "Reyna" || agent == "Raze" || agent == "Jett" || isEntry(role)):
		return "Shorty"
	case credits >= 600 && (isEntry(role) || movement > 70):
		return "Frenzy"
	default:
		return "Classic"
	}
}

func forceBuy(credits int, aim, movement float64, role models.Role, agent string) string {
	switch {
	case credits >= 1600:
		return "Spectre"
	case credits >= 2050 && aim > 80:
		return "Guardian"
	case credits >= 2050:
		return "Bulldog"
	case credits >= 950 && (aim > 85 || agent == "Chamber"):
		return "Marshal"
	case credits >= 950:
		return "Stinger"
	case credits >= 850 && (isEntry(role) || movement > 80):
		return "Bucky"
	default:
		return ecoBuy(credits, aim, movement, role, agent)
	}
}

func halfBuy(credits int, aim, movement float64, role models.Role, agent string) string {
	switch {
	case credits >= 1850 && (agent == "Raze" || agent == "Jett" || agent == "Reyna" || movement > 85):
		return "Judge"
	case credits >= 1600 && (role == models.RoleSentinel || role == models.RoleController):
		return "Ares"
	case credits >= 1600:
		return "Spectre"
	default:
		return forceBuy(credits, aim, movement, role, agent)
	}
}

func fullBuy(credits int, aim, movement, utility float64, role models.Role, agent string) string {
	switch {
	case credits >= 4700 && (agent == "Chamber" || aim > 85):
		return "Operator"
	case credits >= 3200 && (role == models.RoleController || role == models.RoleSentinel):
		return "Odin"
	case credits >= 2900:
		if aim > movement && aim > utility {
			return "Vandal"
		}
		if movement > aim || utility > aim {
			return "Phantom"
		}
		if isEntry(role) || role == models.RoleInitiator {
			return "Vandal"
		}
		return "Phantom"
	case credits >= 2250 && aim > 80:
		return "Guardian"
	case credits >= 2250:
		return "Bulldog"
	case credits >= 1600:
		return "Spectre"
	default:
		return forceBuy(credits, aim, movement, role, agent)
	}
}

// Duelists fill the entry role in this model.
func isEntry(role models.Role) bool {
	return role == models.RoleDuelist
}
