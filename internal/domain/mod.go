package domain

import "sort"

// GenerationType is the affix slot a mod occupies.
// Only prefix and suffix are craftable; other values (unique, corrupted, ...) pass through.
type GenerationType string

const (
	GenerationPrefix GenerationType = "prefix"
	GenerationSuffix GenerationType = "suffix"
)

// IsAffix reports whether the generation type is a prefix or suffix.
func (g GenerationType) IsAffix() bool {
	return g == GenerationPrefix || g == GenerationSuffix
}

// Stat is one numeric effect of a mod. A nil bound means the table omitted it.
type Stat struct {
	ID  string `json:"id"`
	Min *int64 `json:"min,omitempty"`
	Max *int64 `json:"max,omitempty"`
}

// Bounds returns the numeric range of the stat.
// A missing min takes max, a missing max takes min, both missing mean zero.
func (s Stat) Bounds() (int64, int64) {
	switch {
	case s.Min != nil && s.Max != nil:
		return *s.Min, *s.Max
	case s.Min != nil:
		return *s.Min, *s.Min
	case s.Max != nil:
		return *s.Max, *s.Max
	default:
		return 0, 0
	}
}

// SpawnWeight is the relative chance of a mod spawning on items carrying Tag.
type SpawnWeight struct {
	Tag    string `json:"tag"`
	Weight uint32 `json:"weight"`
}

// Mod is an entry of the mods reference table.
// Key is not part of the JSON object; it is filled from the object key on load.
type Mod struct {
	Key            string         `json:"-"`
	Name           string         `json:"name"`
	Domain         string         `json:"domain"`
	GenerationType GenerationType `json:"generation_type" validate:"affix"`
	IsEssenceOnly  bool           `json:"is_essence_only"`
	RequiredLevel  uint64         `json:"required_level"`
	Groups         []string       `json:"groups"`
	SpawnWeights   []SpawnWeight  `json:"spawn_weights"`
	Stats          []Stat         `json:"stats"`
	Type           string         `json:"type"`
}

// SpawnWeightFor returns the first positive spawn weight whose tag is in tags.
func (m Mod) SpawnWeightFor(tags map[string]struct{}) (uint32, bool) {
	for _, sw := range m.SpawnWeights {
		if sw.Weight == 0 {
			continue
		}
		if _, ok := tags[sw.Tag]; ok {
			return sw.Weight, true
		}
	}
	return 0, false
}

// ModItem is a mod as offered for a concrete item base.
type ModItem struct {
	ModKey         string         `json:"mod_key" validate:"required,modkey"`
	RequiredLevel  uint64         `json:"required_level"`
	Weight         uint32         `json:"weight"`
	GenerationType GenerationType `json:"generation_type" validate:"affix"`
	Representation string         `json:"representation"`
}

// ModKeySet is a set of mod keys.
type ModKeySet map[string]struct{}

// NewModKeySet builds a set from keys.
func NewModKeySet(keys ...string) ModKeySet {
	s := make(ModKeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts key into the set.
func (s ModKeySet) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether key is in the set.
func (s ModKeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in lexicographic order.
func (s ModKeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
