package domain

// FormatIgnore marks a stat position that is not rendered
const FormatIgnore = "ignore"

// Condition bounds the stat values a translation variant applies to.
type Condition struct {
	Min     *int64 `json:"min,omitempty"`
	Max     *int64 `json:"max,omitempty"`
	Negated bool   `json:"negated,omitempty"`
}

// LanguageInstance is one rendering variant of a stat translation.
// Format and IndexHandlers are indexed by the stat position in StatTranslation.IDs.
type LanguageInstance struct {
	Condition     []Condition `json:"condition"`
	Format        []string    `json:"format"`
	IndexHandlers [][]string  `json:"index_handlers"`
	Template      string      `json:"string"`
}

// StatTranslation maps a group of stat ids to English text.
type StatTranslation struct {
	IDs      []string           `json:"ids"`
	Variants []LanguageInstance `json:"English"`
	Hidden   bool               `json:"hidden,omitempty"`
}

// ReferenceTables is the immutable game data the engine works on.
// RepresentationOverrides optionally replaces the rendered text of individual mods.
type ReferenceTables struct {
	Mods                    map[string]Mod
	ItemBases               map[string]ItemBase
	Translations            []StatTranslation
	RepresentationOverrides map[string]string
}
