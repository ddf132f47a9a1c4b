package models

// WeaponType categorizes weapons for buy and duel logic.
type WeaponType string

const (
	WeaponSidearm WeaponType = "sidearm"
	WeaponSMG     WeaponType = "smg"
	WeaponRifle   WeaponType = "rifle"
	WeaponSniper  WeaponType = "sniper"
	WeaponShotgun WeaponType = "shotgun"
	WeaponHeavy   WeaponType = "heavy"
)

// RangeBand is the engagement distance for a duel.
type RangeBand string

const (
	RangeClose  RangeBand = "close"
	RangeMedium RangeBand = "medium"
	RangeLong   RangeBand = "long"
)

// RangeBands lists every engagement distance.
var RangeBands = []RangeBand{RangeClose, RangeMedium, RangeLong}

// Weapon describes one catalog entry. Weapons are immutable; the
// catalog hands out copies by value.
type Weapon struct {
	Name             string                `json:"name"`
	Type             WeaponType            `json:"type"`
	Cost             int                   `json:"cost"`
	Damage           float64               `json:"damage"`
	FireRate         float64               `json:"fire_rate"`
	RangeMultipliers map[RangeBand]float64 `json:"range_multipliers"`
	ArmorPenetration float64               `json:"armor_penetration"`
	Accuracy         float64               `json:"accuracy"`
	MovementAccuracy float64               `json:"movement_accuracy"`
	MagazineSize     int                   `json:"magazine_size"`
	ReloadTime       float64               `json:"reload_time"`
	EquipTime        float64               `json:"equip_time"`
	WallPenetration  float64               `json:"wall_penetration"`
}
