package simulator

import (
	"fmt"
	"sort"

	"github.com/valorsim/valorsim/internal/models"
)

// WeaponCatalog is the closed registry of purchasable weapons. It is
// built once and never mutated afterwards, so it is safe to share
// across concurrent simulations.
type WeaponCatalog struct {
	weapons map[string]models.Weapon
}

// NewWeaponCatalog builds the full catalog.
func NewWeaponCatalog() *WeaponCatalog {
	c := &WeaponCatalog{weapons: make(map[string]models.Weapon, len(weaponTable))}
	for _, w := range weaponTable {
		c.weapons[w.Name] = w
	}
	return c
}

// Lookup returns the weapon by name. Asking for a weapon outside the
// closed set is a programming error, so it panics rather than
// returning an error value.
func (c *WeaponCatalog) Lookup(name string) models.Weapon {
	w, ok := c.weapons[name]
	if !ok {
		panic(fmt.Sprintf("simulator: unknown weapon %q", name))
	}
	return w
}

// Names returns every weapon name in sorted order.
func (c *WeaponCatalog) Names() []string {
	names := make([]string, 0, len(c.weapons))
	for name := range c.weapons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cost returns the purchase price of a weapon.
func (c *WeaponCatalog) Cost(name string) int {
	return c.Lookup(name).Cost
}

func bands(close, medium, long float64) map[models.RangeBand]float64 {
	return map[models.RangeBand]float64{
		models.RangeClose:  close,
		models.RangeMedium: medium,
		models.RangeLong:   long,
	}
}

var weaponTable = []models.Weapon{
	// Sidearms
	{
		Name: "Classic", Type: models.WeaponSidearm, Cost: 0,
		Damage: 26, FireRate: 6.75, RangeMultipliers: bands(1.0, 0.8, 0.6),
		ArmorPenetration: 0.5, Accuracy: 0.8, MovementAccuracy: 0.6,
		MagazineSize: 12, ReloadTime: 1.75, EquipTime: 0.75, WallPenetration: 0.2,
	},
	{
		Name: "Shorty", Type: models.WeaponSidearm, Cost: 150,
		Damage: 12, FireRate: 3.3, RangeMultipliers: bands(1.5, 0.5, 0.1),
		ArmorPenetration: 0.3, Accuracy: 0.7, MovementAccuracy: 0.55,
		MagazineSize: 2, ReloadTime: 1.75, EquipTime: 0.75, WallPenetration: 0.1,
	},
	{
		Name: "Frenzy", Type: models.WeaponSidearm, Cost: 450,
		Damage: 26, FireRate: 10.0, RangeMultipliers: bands(1.0, 0.7, 0.5),
		ArmorPenetration: 0.5, Accuracy: 0.7, MovementAccuracy: 0.5,
		MagazineSize: 13, ReloadTime: 1.75, EquipTime: 0.75, WallPenetration: 0.25,
	},
	{
		Name: "Ghost", Type: models.WeaponSidearm, Cost: 500,
		Damage: 30, FireRate: 6.75, RangeMultipliers: bands(1.0, 0.9, 0.75),
		ArmorPenetration: 0.7, Accuracy: 0.85, MovementAccuracy: 0.65,
		MagazineSize: 15, ReloadTime: 1.5, EquipTime: 0.75, WallPenetration: 0.3,
	},
	{
		Name: "Sheriff", Type: models.WeaponSidearm, Cost: 800,
		Damage: 55, FireRate: 4.0, RangeMultipliers: bands(1.0, 0.9, 0.8),
		ArmorPenetration: 0.75, Accuracy: 0.85, MovementAccuracy: 0.5,
		MagazineSize: 6, ReloadTime: 2.25, EquipTime: 1.0, WallPenetration: 0.5,
	},

	// SMGs
	{
		Name: "Stinger", Type: models.WeaponSMG, Cost: 950,
		Damage: 27, FireRate: 18.0, RangeMultipliers: bands(1.0, 0.7, 0.5),
		ArmorPenetration: 0.5, Accuracy: 0.65, MovementAccuracy: 0.7,
		MagazineSize: 20, ReloadTime: 2.25, EquipTime: 0.75, WallPenetration: 0.3,
	},
	{
		Name: "Spectre", Type: models.WeaponSMG, Cost: 1600,
		Damage: 26, FireRate: 13.33, RangeMultipliers: bands(1.2, 0.8, 0.6),
		ArmorPenetration: 0.6, Accuracy: 0.75, MovementAccuracy: 0.75,
		MagazineSize: 30, ReloadTime: 2.25, EquipTime: 1.0, WallPenetration: 0.4,
	},

	// Shotguns
	{
		Name: "Bucky", Type: models.WeaponShotgun, Cost: 850,
		Damage: 20, FireRate: 1.1, RangeMultipliers: bands(1.2, 0.8, 0.4),
		ArmorPenetration: 0.4, Accuracy: 0.6, MovementAccuracy: 0.4,
		MagazineSize: 5, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.2,
	},
	{
		Name: "Judge", Type: models.WeaponShotgun, Cost: 1850,
		Damage: 17, FireRate: 3.5, RangeMultipliers: bands(1.3, 0.7, 0.3),
		ArmorPenetration: 0.5, Accuracy: 0.55, MovementAccuracy: 0.45,
		MagazineSize: 7, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.2,
	},

	// Rifles
	{
		Name: "Bulldog", Type: models.WeaponRifle, Cost: 2050,
		Damage: 35, FireRate: 9.15, RangeMultipliers: bands(1.0, 0.95, 0.85),
		ArmorPenetration: 0.75, Accuracy: 0.85, MovementAccuracy: 0.4,
		MagazineSize: 24, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.6,
	},
	{
		Name: "Guardian", Type: models.WeaponRifle, Cost: 2250,
		Damage: 65, FireRate: 5.25, RangeMultipliers: bands(1.0, 1.0, 0.95),
		ArmorPenetration: 0.85, Accuracy: 0.95, MovementAccuracy: 0.35,
		MagazineSize: 12, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.7,
	},
	{
		Name: "Phantom", Type: models.WeaponRifle, Cost: 2900,
		Damage: 40, FireRate: 9.75, RangeMultipliers: bands(1.0, 1.0, 1.0),
		ArmorPenetration: 0.8, Accuracy: 0.9, MovementAccuracy: 0.4,
		MagazineSize: 25, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.8,
	},
	{
		Name: "Vandal", Type: models.WeaponRifle, Cost: 2900,
		Damage: 40, FireRate: 9.25, RangeMultipliers: bands(1.0, 1.0, 1.0),
		ArmorPenetration: 0.8, Accuracy: 0.85, MovementAccuracy: 0.35,
		MagazineSize: 25, ReloadTime: 2.5, EquipTime: 1.0, WallPenetration: 0.7,
	},

	// Snipers
	{
		Name: "Marshal", Type: models.WeaponSniper, Cost: 950,
		Damage: 101, FireRate: 1.5, RangeMultipliers: bands(1.0, 1.0, 1.0),
		ArmorPenetration: 0.9, Accuracy: 0.95, MovementAccuracy: 0.15,
		MagazineSize: 5, ReloadTime: 2.5, EquipTime: 1.25, WallPenetration: 0.7,
	},
	{
		Name: "Outlaw", Type: models.WeaponSniper, Cost: 2400,
		Damage: 127, FireRate: 1.25, RangeMultipliers: bands(1.0, 1.0, 1.0),
		ArmorPenetration: 0.95, Accuracy: 0.98, MovementAccuracy: 0.12,
		MagazineSize: 5, ReloadTime: 2.76, EquipTime: 1.25, WallPenetration: 0.8,
	},
	{
		Name: "Operator", Type: models.WeaponSniper, Cost: 4700,
		Damage: 150, FireRate: 0.75, RangeMultipliers: bands(1.0, 1.0, 1.0),
		ArmorPenetration: 1.0, Accuracy: 1.0, MovementAccuracy: 0.1,
		MagazineSize: 5, ReloadTime: 3.7, EquipTime: 1.5, WallPenetration: 0.9,
	},

	// Heavy weapons
	{
		Name: "Ares", Type: models.WeaponHeavy, Cost: 1600,
		Damage: 30, FireRate: 10.0, RangeMultipliers: bands(1.0, 0.9, 0.75),
		ArmorPenetration: 0.7, Accuracy: 0.75, MovementAccuracy: 0.3,
		MagazineSize: 50, ReloadTime: 3.25, EquipTime: 1.25, WallPenetration: 0.8,
	},
	{
		Name: "Odin", Type: models.WeaponHeavy, Cost: 3200,
		Damage: 38, FireRate: 12.0, RangeMultipliers: bands(1.0, 0.9, 0.8),
		ArmorPenetration: 0.8, Accuracy: 0.7, MovementAccuracy: 0.25,
		MagazineSize: 100, ReloadTime: 5.0, EquipTime: 1.5, WallPenetration: 0.9,
	},
}
