package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

// FindMods lists affixes that can roll on the query's base, excluding groups
// already taken by the selected mods, ordered by mod key and narrowed by the text filter.
func (c *Catalog) FindMods(q domain.ModsQuery) ([]domain.ModItem, error) {
	base, ok := c.basesByName[q.ItemBase]
	if !ok {
		return nil, fmt.Errorf(ErrFmtNotFound, domain.ErrItemBaseNotFound, q.ItemBase)
	}

	excluded := make(map[string]struct{})
	for _, sel := range q.AlreadySelected {
		m, ok := c.mods[sel.ModKey]
		if !ok {
			return nil, fmt.Errorf(ErrFmtNotFound, domain.ErrModNotFound, sel.ModKey)
		}
		for _, g := range m.Groups {
			excluded[g] = struct{}{}
		}
	}

	pool := c.pool(base, q.ItemLevelCap, excluded)
	return filterByText(pool, q.TextFilter), nil
}

// pool returns the sorted, unfiltered candidates. The result is cached and shared.
func (c *Catalog) pool(base domain.ItemBase, levelCap uint64, excluded map[string]struct{}) []domain.ModItem {
	key := poolKey(base.Name, levelCap, excluded)
	if cached, ok := c.pools.Get(key); ok {
		return cached
	}

	tags := base.TagSet()
	var items []domain.ModItem
	for _, modKey := range c.candidateKeys(base) {
		m := c.mods[modKey]
		if !c.eligible(m, base, levelCap) || sharesGroup(m, excluded) {
			continue
		}
		weight, ok := m.SpawnWeightFor(tags)
		if !ok {
			continue
		}
		items = append(items, domain.ModItem{
			ModKey:         modKey,
			RequiredLevel:  m.RequiredLevel,
			Weight:         weight,
			GenerationType: m.GenerationType,
			Representation: c.representations[modKey],
		})
	}
	sortByKey(items)

	c.pools.Set(key, items)
	return items
}

// candidateKeys is the union of mods indexed under the base tags
func (c *Catalog) candidateKeys(base domain.ItemBase) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, t := range base.Tags {
		for _, k := range c.modIDsByTag[t] {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Catalog) eligible(m domain.Mod, base domain.ItemBase, levelCap uint64) bool {
	return m.RequiredLevel <= levelCap &&
		len(m.Stats) > 0 &&
		m.Domain == base.Domain &&
		m.GenerationType.IsAffix()
}

func sharesGroup(m domain.Mod, excluded map[string]struct{}) bool {
	for _, g := range m.Groups {
		if _, ok := excluded[g]; ok {
			return true
		}
	}
	return false
}

// sortByKey orders case-insensitively, falling back to the exact key for a total order
func sortByKey(items []domain.ModItem) {
	fold := cases.Fold()
	folded := make(map[string]string, len(items))
	for _, it := range items {
		folded[it.ModKey] = fold.String(it.ModKey)
	}
	sort.SliceStable(items, func(i, j int) bool {
		fi, fj := folded[items[i].ModKey], folded[items[j].ModKey]
		if fi != fj {
			return fi < fj
		}
		return items[i].ModKey < items[j].ModKey
	})
}

// filterByText emits mods containing the whole filter first, then mods containing
// every filter token. Both partitions keep the input order. The result is a fresh slice.
func filterByText(pool []domain.ModItem, filter string) []domain.ModItem {
	needle := strings.ToLower(strings.TrimSpace(filter))
	tokens := strings.Fields(needle)

	exact := make([]domain.ModItem, 0, len(pool))
	var partial []domain.ModItem
	for _, it := range pool {
		text := strings.ToLower(it.Representation)
		switch {
		case strings.Contains(text, needle):
			exact = append(exact, it)
		case containsAll(text, tokens):
			partial = append(partial, it)
		}
	}
	return append(exact, partial...)
}

func containsAll(text string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// WeightOfTargetAndBetter sums the weights of every candidate that is the
// target or an equal-or-better roll of the same kind.
func (c *Catalog) WeightOfTargetAndBetter(q domain.ModsQuery, targetKey string) (uint32, error) {
	base, ok := c.basesByName[q.ItemBase]
	if !ok {
		return 0, fmt.Errorf(ErrFmtNotFound, domain.ErrItemBaseNotFound, q.ItemBase)
	}
	target, ok := c.mods[targetKey]
	if !ok {
		return 0, fmt.Errorf(ErrFmtNotFound, domain.ErrModNotFound, targetKey)
	}

	var total uint32
	for _, it := range c.pool(base, q.ItemLevelCap, nil) {
		m := c.mods[it.ModKey]
		if m.Type != target.Type ||
			m.Domain != target.Domain ||
			m.GenerationType != target.GenerationType ||
			!StatsEqualOrBetter(target.Stats, m.Stats) {
			continue
		}
		total += it.Weight
	}
	return total, nil
}

// SubsetOfModsSatisfying returns the mod itself plus every candidate on the
// base whose stats are equal or better.
func (c *Catalog) SubsetOfModsSatisfying(modKey, itemBase string) (domain.ModKeySet, error) {
	target, ok := c.mods[modKey]
	if !ok {
		return nil, fmt.Errorf(ErrFmtNotFound, domain.ErrModNotFound, modKey)
	}
	base, ok := c.basesByName[itemBase]
	if !ok {
		return nil, fmt.Errorf(ErrFmtNotFound, domain.ErrItemBaseNotFound, itemBase)
	}

	subset := domain.NewModKeySet(modKey)
	for _, it := range c.pool(base, domain.MaxItemLevel, nil) {
		if StatsEqualOrBetter(target.Stats, c.mods[it.ModKey].Stats) {
			subset.Add(it.ModKey)
		}
	}
	return subset, nil
}

// StatsEqualOrBetter reports whether candidate has every target stat id with
// both bounds at least as high.
func StatsEqualOrBetter(target, candidate []domain.Stat) bool {
	if len(target) > len(candidate) {
		return false
	}
	for _, ts := range target {
		tMin, tMax := ts.Bounds()
		found := false
		for _, cs := range candidate {
			if cs.ID != ts.ID {
				continue
			}
			cMin, cMax := cs.Bounds()
			if cMin >= tMin && cMax >= tMax {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
