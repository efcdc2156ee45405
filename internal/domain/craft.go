package domain

// ModsQuery selects mods offered for an item base.
type ModsQuery struct {
	TextFilter      string    `json:"text_filter"`
	ItemLevelCap    uint64    `json:"item_level" validate:"omitempty,max=100"`
	ItemBase        string    `json:"item_base" validate:"required"`
	AlreadySelected []ModItem `json:"selected_mods" validate:"dive"`
}

// ParsedMod carries what the advanced copy format tells about a mod.
type ParsedMod struct {
	ModKey         string         `json:"mod_key"`
	GenerationType GenerationType `json:"generation_type,omitempty"`
	Name           string         `json:"name,omitempty"`
	Tier           int            `json:"tier,omitempty"`
	Tags           string         `json:"tags,omitempty"`
	Description    string         `json:"description,omitempty"`
	Lines          []string       `json:"lines"`
}

// ParsedItem is the result of reading pasted item text.
type ParsedItem struct {
	ItemClass       string      `json:"item_class"`
	ItemBaseName    string      `json:"item_base"`
	ItemDisplayName string      `json:"item_name"`
	ItemTitle       string      `json:"item_title,omitempty"`
	ItemLevel       uint64      `json:"item_level,omitempty"`
	Mods            []string    `json:"mods"`
	RawModLines     []string    `json:"raw_mod_lines"`
	ModDetails      []ParsedMod `json:"mod_details,omitempty"`
}

// VariantEstimation is the chance contributed by one (prefixes, suffixes) outcome.
type VariantEstimation struct {
	Prefixes    int     `json:"prefixes"`
	Suffixes    int     `json:"suffixes"`
	Ratio       float64 `json:"ratio"`
	Probability float64 `json:"probability"`
}

// Estimation is the chance that one reroll hits every target.
type Estimation struct {
	Probability float64             `json:"probability"`
	Variants    []VariantEstimation `json:"variants"`
}

// ExpectedAttempts returns the mean number of rerolls, 0 when the target is unreachable.
func (e Estimation) ExpectedAttempts() float64 {
	if e.Probability <= 0 {
		return 0
	}
	return 1 / e.Probability
}
