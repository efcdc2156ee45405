// Package matcher decides whether a crafted item satisfies a set of target mods.
package matcher

import (
	"fmt"
	"sort"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

// SubsetSource returns a mod plus every mod on the base that rolls equal or better
type SubsetSource interface {
	SubsetOfModsSatisfying(modKey, itemBase string) (domain.ModKeySet, error)
}

// Matcher holds the accepted mods per target. It is read-only after New.
type Matcher struct {
	itemBase string
	// Mapping: target mod key -> mod keys that count as the target
	accepted map[string]domain.ModKeySet
}

// New resolves the accepted set of every target on the base
func New(targets []string, itemBase string, src SubsetSource) (*Matcher, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoModsSelected
	}

	m := &Matcher{itemBase: itemBase, accepted: make(map[string]domain.ModKeySet, len(targets))}
	for _, key := range targets {
		if _, dup := m.accepted[key]; dup {
			continue
		}
		subset, err := src.SubsetOfModsSatisfying(key, itemBase)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s on %s: %w", key, itemBase, err)
		}
		m.accepted[key] = subset
	}
	return m, nil
}

// ItemBase returns the base the matcher was built for
func (m *Matcher) ItemBase() string {
	return m.itemBase
}

// Targets returns the target keys in lexicographic order
func (m *Matcher) Targets() []string {
	keys := make([]string, 0, len(m.accepted))
	for k := range m.accepted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Matches reports whether every target is covered by at least one crafted mod
func (m *Matcher) Matches(crafted []string) bool {
	return len(m.Missing(crafted)) == 0
}

// Missing lists the targets no crafted mod covers, in lexicographic order
func (m *Matcher) Missing(crafted []string) []string {
	missing := []string{}
	for _, target := range m.Targets() {
		if !covered(m.accepted[target], crafted) {
			missing = append(missing, target)
		}
	}
	return missing
}

func covered(accepted domain.ModKeySet, crafted []string) bool {
	for _, c := range crafted {
		if accepted.Contains(c) {
			return true
		}
	}
	return false
}
