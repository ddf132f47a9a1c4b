package simulator

import (
	"sort"
	"strings"
	"sync"

	"github.com/valorsim/valorsim/internal/models"
)

// MapCatalog holds the known map layouts. Lookups are concurrent-safe;
// Add exists for custom layouts registered through the service.
type MapCatalog struct {
	mu   sync.RWMutex
	maps map[string]models.MapLayout
}

// NewMapCatalog builds a catalog preloaded with the standard pool.
func NewMapCatalog() *MapCatalog {
	c := &MapCatalog{maps: make(map[string]models.MapLayout)}
	for _, m := range standardMaps() {
		c.maps[m.ID] = m
	}
	return c
}

// MapID normalizes a display name into a catalog key.
func MapID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Lookup returns the layout for a name, or false when unknown.
func (c *MapCatalog) Lookup(name string) (models.MapLayout, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.maps[MapID(name)]
	return m, ok
}

// LookupOrFallback resolves a name, substituting the synthetic layout
// when the name is unknown. The second return reports whether the
// fallback was used.
func (c *MapCatalog) LookupOrFallback(name string) (models.MapLayout, bool) {
	if m, ok := c.Lookup(name); ok {
		return m, false
	}
	return FallbackLayout(name), true
}

// Add registers a layout, overwriting any existing one with the same id.
func (c *MapCatalog) Add(m models.MapLayout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maps[m.ID] = m
}

// AllNames returns every registered map name, sorted.
func (c *MapCatalog) AllNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.maps))
	for _, m := range c.maps {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered layout.
func (c *MapCatalog) All() []models.MapLayout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.MapLayout, 0, len(c.maps))
	for _, m := range c.maps {
		out = append(out, m)
	}
	return out
}

// FallbackLayout builds the synthetic two-site layout used when a
// requested map is not in the catalog.
func FallbackLayout(name string) models.MapLayout {
	return models.MapLayout{
		ID:       MapID(name),
		Name:     name,
		ImageURL: "/static/maps/default.jpg",
		Width:    1024,
		Height:   1024,
		Sites:    []string{"A", "B"},
		Callouts: map[string]models.MapCallout{
			"attacker_spawn": callout("Attacker Spawn", models.AreaAttackerSpawn, 0.5, 0.9),
			"defender_spawn": callout("Defender Spawn", models.AreaDefenderSpawn, 0.5, 0.1),
			"a_site":         callout("A Site", models.AreaASite, 0.25, 0.2),
			"b_site":         callout("B Site", models.AreaBSite, 0.75, 0.2),
		},
		AttackerSpawn: models.Position{X: 0.5, Y: 0.9},
		DefenderSpawn: models.Position{X: 0.5, Y: 0.1},
	}
}

func callout(name string, area models.MapArea, x, y float64) models.MapCallout {
	return models.MapCallout{
		Name:     name,
		AreaType: area,
		Position: models.Position{X: x, Y: y},
		Size:     models.Size{W: 0.1, H: 0.1},
	}
}

type calloutDef struct {
	key  string
	name string
	area models.MapArea
	x, y float64
}

func buildMap(name string, sites []string, attSpawn, defSpawn models.Position, defs []calloutDef) models.MapLayout {
	callouts := make(map[string]models.MapCallout, len(defs))
	for _, d := range defs {
		callouts[d.key] = callout(d.name, d.area, d.x, d.y)
	}
	return models.MapLayout{
		ID:            MapID(name),
		Name:          name,
		ImageURL:      "/static/maps/" + MapID(name) + ".jpg",
		Width:         1024,
		Height:        1024,
		Callouts:      callouts,
		Sites:         sites,
		AttackerSpawn: attSpawn,
		DefenderSpawn: defSpawn,
	}
}

func standardMaps() []models.MapLayout {
	ab := []string{"A", "B"}
	return []models.MapLayout{
		buildMap("Ascent", ab,
			models.Position{X: 0.5, Y: 0.92}, models.Position{X: 0.5, Y: 0.08},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.92},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.08},
				{"a_site", "A Site", models.AreaASite, 0.2, 0.22},
				{"b_site", "B Site", models.AreaBSite, 0.8, 0.25},
				{"mid_courtyard", "Mid Courtyard", models.AreaMid, 0.5, 0.5},
				{"a_main", "A Main", models.AreaConnector, 0.25, 0.55},
				{"b_main", "B Main", models.AreaConnector, 0.78, 0.55},
				{"market", "Market", models.AreaConnector, 0.62, 0.35},
			}),
		buildMap("Bind", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.22, 0.2},
				{"b_site", "B Site", models.AreaBSite, 0.78, 0.2},
				{"a_short", "A Short", models.AreaConnector, 0.3, 0.5},
				{"b_long", "B Long", models.AreaConnector, 0.75, 0.55},
				{"hookah", "Hookah", models.AreaConnector, 0.68, 0.38},
				{"a_teleporter", "A Teleporter", models.AreaFlank, 0.15, 0.45},
			}),
		buildMap("Haven", []string{"A", "B", "C"},
			models.Position{X: 0.5, Y: 0.92}, models.Position{X: 0.5, Y: 0.08},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.92},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.08},
				{"a_site", "A Site", models.AreaASite, 0.18, 0.2},
				{"b_site", "B Site", models.AreaBSite, 0.5, 0.22},
				{"c_site", "C Site", models.AreaCSite, 0.82, 0.2},
				{"mid_window", "Mid Window", models.AreaMid, 0.5, 0.48},
				{"a_long", "A Long", models.AreaConnector, 0.2, 0.55},
				{"c_long", "C Long", models.AreaConnector, 0.82, 0.55},
				{"garage", "Garage", models.AreaConnector, 0.65, 0.42},
			}),
		buildMap("Split", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.22, 0.22},
				{"b_site", "B Site", models.AreaBSite, 0.78, 0.22},
				{"mid_mail", "Mid Mail", models.AreaMid, 0.5, 0.45},
				{"a_ramps", "A Ramps", models.AreaConnector, 0.28, 0.5},
				{"b_main", "B Main", models.AreaConnector, 0.75, 0.52},
				{"sewer", "Sewer", models.AreaConnector, 0.45, 0.6},
			}),
		buildMap("Icebox", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.25, 0.18},
				{"b_site", "B Site", models.AreaBSite, 0.75, 0.22},
				{"mid_boiler", "Mid Boiler", models.AreaMid, 0.5, 0.5},
				{"a_belt", "A Belt", models.AreaConnector, 0.3, 0.42},
				{"b_green", "B Green", models.AreaConnector, 0.68, 0.45},
				{"kitchen", "Kitchen", models.AreaConnector, 0.58, 0.35},
			}),
		buildMap("Breeze", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.2, 0.25},
				{"b_site", "B Site", models.AreaBSite, 0.8, 0.22},
				{"mid_pillar", "Mid Pillar", models.AreaMid, 0.5, 0.48},
				{"a_cave", "A Cave", models.AreaConnector, 0.3, 0.55},
				{"b_tunnel", "B Tunnel", models.AreaConnector, 0.72, 0.55},
				{"halls", "Halls", models.AreaFlank, 0.42, 0.3},
			}),
		buildMap("Fracture", ab,
			models.Position{X: 0.5, Y: 0.92}, models.Position{X: 0.5, Y: 0.5},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.92},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.5},
				{"a_site", "A Site", models.AreaASite, 0.3, 0.3},
				{"b_site", "B Site", models.AreaBSite, 0.7, 0.3},
				{"a_hall", "A Hall", models.AreaConnector, 0.25, 0.55},
				{"b_tower", "B Tower", models.AreaConnector, 0.72, 0.52},
				{"dish", "Dish", models.AreaMid, 0.5, 0.25},
				{"arcade", "Arcade", models.AreaConnector, 0.58, 0.42},
			}),
		buildMap("Pearl", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.25, 0.2},
				{"b_site", "B Site", models.AreaBSite, 0.75, 0.2},
				{"mid_plaza", "Mid Plaza", models.AreaMid, 0.5, 0.5},
				{"a_main", "A Main", models.AreaConnector, 0.28, 0.52},
				{"b_ramp", "B Ramp", models.AreaConnector, 0.72, 0.52},
				{"water", "Water", models.AreaConnector, 0.6, 0.35},
			}),
		buildMap("Lotus", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.2, 0.22},
				{"b_site", "B Site", models.AreaBSite, 0.78, 0.22},
				{"a_main", "A Main", models.AreaConnector, 0.25, 0.5},
				{"b_main", "B Main", models.AreaConnector, 0.75, 0.5},
				{"waterfall", "Waterfall", models.AreaFlank, 0.15, 0.4},
				{"mid_doors", "Mid Doors", models.AreaMid, 0.5, 0.45},
			}),
		buildMap("Sunset", ab,
			models.Position{X: 0.5, Y: 0.9}, models.Position{X: 0.5, Y: 0.1},
			[]calloutDef{
				{"attacker_spawn", "Attacker Side Spawn", models.AreaAttackerSpawn, 0.5, 0.9},
				{"defender_spawn", "Defender Side Spawn", models.AreaDefenderSpawn, 0.5, 0.1},
				{"a_site", "A Site", models.AreaASite, 0.25, 0.2},
				{"b_site", "B Site", models.AreaBSite, 0.75, 0.2},
				{"mid_courtyard", "Mid Courtyard", models.AreaMid, 0.5, 0.5},
				{"a_main", "A Main", models.AreaConnector, 0.28, 0.52},
				{"b_main", "B Main", models.AreaConnector, 0.72, 0.52},
				{"market", "Market", models.AreaConnector, 0.6, 0.38},
			}),
	}
}
