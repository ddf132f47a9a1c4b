package models

import "sort"

// MapArea classifies a named region of a map.
type MapArea string

const (
	AreaAttackerSpawn MapArea = "attacker_spawn"
	AreaDefenderSpawn MapArea = "defender_spawn"
	AreaASite         MapArea = "a_site"
	AreaBSite         MapArea = "b_site"
	AreaCSite         MapArea = "c_site"
	AreaMid           MapArea = "mid"
	AreaConnector     MapArea = "connector"
	AreaFlank         MapArea = "flank"
)

// Position is a point in the unit square.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair in unit-square scale.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// MapCallout is a named region with a centroid and extent.
type MapCallout struct {
	Name        string   `json:"name"`
	AreaType    MapArea  `json:"area_type"`
	Position    Position `json:"position"`
	Size        Size     `json:"size"`
	Description string   `json:"description,omitempty"`
}

// MapLayout defines a playable map. Coordinates are in [0,1]^2; the
// pixel dimensions describe the backing image for rendering only.
type MapLayout struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	ImageURL      string                `json:"image_url"`
	Width         int                   `json:"width"`
	Height        int                   `json:"height"`
	Callouts      map[string]MapCallout `json:"callouts"`
	Sites         []string              `json:"sites"`
	AttackerSpawn Position              `json:"attacker_spawn"`
	DefenderSpawn Position              `json:"defender_spawn"`
}

// SiteCallout returns the callout backing a bomb site, looked up by
// site letter.
func (m *MapLayout) SiteCallout(site string) (MapCallout, bool) {
	var want MapArea
	switch site {
	case "A":
		want = AreaASite
	case "B":
		want = AreaBSite
	case "C":
		want = AreaCSite
	default:
		return MapCallout{}, false
	}
	for _, c := range m.Callouts {
		if c.AreaType == want {
			return c, true
		}
	}
	return MapCallout{}, false
}

// CalloutsOfType returns every callout matching one of the given area
// types, in stable key order.
func (m *MapLayout) CalloutsOfType(types ...MapArea) []MapCallout {
	match := func(t MapArea) bool {
		for _, want := range types {
			if t == want {
				return true
			}
		}
		return false
	}
	keys := make([]string, 0, len(m.Callouts))
	for k, c := range m.Callouts {
		if match(c.AreaType) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]MapCallout, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.Callouts[k])
	}
	return out
}
