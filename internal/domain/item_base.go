package domain

// Item base domains and release states that take part in regular crafting
const (
	DomainItem      = "item"
	DomainHeistNPC  = "heist_npc"
	ReleaseReleased = "released"

	// DefaultRequiredLevel applies to bases without a requirements block
	DefaultRequiredLevel = 100
	// MaxItemLevel is the highest item level the game generates
	MaxItemLevel = 100
	MinItemLevel = 1
)

// Requirements of an item base. Only the level is used.
type Requirements struct {
	Level uint64 `json:"level"`
}

// ItemBase is an entry of the base items reference table.
type ItemBase struct {
	ID           string        `json:"-"`
	Name         string        `json:"name"`
	ItemClass    string        `json:"item_class"`
	Domain       string        `json:"domain"`
	Tags         []string      `json:"tags"`
	ReleaseState string        `json:"release_state"`
	Requirements *Requirements `json:"requirements,omitempty"`
}

// RequiredLevel returns the level requirement, DefaultRequiredLevel when absent.
func (b ItemBase) RequiredLevel() uint64 {
	if b.Requirements == nil {
		return DefaultRequiredLevel
	}
	return b.Requirements.Level
}

// IsCraftable reports whether the base belongs to a domain regular crafting uses.
func (b ItemBase) IsCraftable() bool {
	return b.Domain == DomainItem || b.Domain == DomainHeistNPC
}

// IsReleased reports whether the base is live in the game.
func (b ItemBase) IsReleased() bool {
	return b.ReleaseState == ReleaseReleased
}

// TagSet returns the base tags as a set.
func (b ItemBase) TagSet() map[string]struct{} {
	set := make(map[string]struct{}, len(b.Tags))
	for _, t := range b.Tags {
		set[t] = struct{}{}
	}
	return set
}

// ItemBaseSummary is the view of a base returned to clients.
type ItemBaseSummary struct {
	Name          string `json:"name"`
	ItemClass     string `json:"item_class"`
	RequiredLevel uint64 `json:"required_level"`
}
