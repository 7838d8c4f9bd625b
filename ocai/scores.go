package ocai

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Quadrant is one of the four OCAI culture archetypes
type Quadrant string

const (
	Clan      Quadrant = "Clan"
	Adhocracy Quadrant = "Adhocracy"
	Market    Quadrant = "Market"
	Hierarchy Quadrant = "Hierarchy"
)

// Quadrants lists the archetypes in canonical order (options A to D)
var Quadrants = []Quadrant{Clan, Adhocracy, Market, Hierarchy}

// ScoreSet holds one value per quadrant.
// Used for raw now/preferred allocations as well as means, deltas and congruence.
type ScoreSet struct {
	Clan      float64 `json:"Clan"`
	Adhocracy float64 `json:"Adhocracy"`
	Market    float64 `json:"Market"`
	Hierarchy float64 `json:"Hierarchy"`
}

// Get returns the value for a quadrant, 0 for unknown quadrants
func (s ScoreSet) Get(q Quadrant) float64 {
	switch q {
	case Clan:
		return s.Clan
	case Adhocracy:
		return s.Adhocracy
	case Market:
		return s.Market
	case Hierarchy:
		return s.Hierarchy
	default:
		return 0
	}
}

// Set assigns the value for a quadrant. Unknown quadrants are ignored.
func (s *ScoreSet) Set(q Quadrant, v float64) {
	switch q {
	case Clan:
		s.Clan = v
	case Adhocracy:
		s.Adhocracy = v
	case Market:
		s.Market = v
	case Hierarchy:
		s.Hierarchy = v
	}
}

// Total sums all four quadrants
func (s ScoreSet) Total() float64 {
	return s.Clan + s.Adhocracy + s.Market + s.Hierarchy
}

// Sub returns s - other per quadrant
func (s ScoreSet) Sub(other ScoreSet) ScoreSet {
	return ScoreSet{
		Clan:      s.Clan - other.Clan,
		Adhocracy: s.Adhocracy - other.Adhocracy,
		Market:    s.Market - other.Market,
		Hierarchy: s.Hierarchy - other.Hierarchy,
	}
}

// UnmarshalJSON accepts quadrant keys in any case ("Clan", "clan", "CLAN").
// When a quadrant appears under several spellings the exact-case key wins.
// Missing quadrants stay at 0.
func (s *ScoreSet) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = ScoreSet{}
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if q, ok := ParseQuadrant(key); ok && key != string(q) {
			s.Set(q, raw[key])
		}
	}
	for _, q := range Quadrants {
		if value, ok := raw[string(q)]; ok {
			s.Set(q, value)
		}
	}
	return nil
}

// ParseQuadrant resolves a quadrant name case-insensitively
func ParseQuadrant(name string) (Quadrant, bool) {
	for _, q := range Quadrants {
		if strings.EqualFold(string(q), strings.TrimSpace(name)) {
			return q, true
		}
	}
	return "", false
}
