package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/translation"
)

// Catalog indexes mods and item bases. It is immutable after New and safe
// for concurrent use.
type Catalog struct {
	mods        map[string]domain.Mod
	basesByName map[string]domain.ItemBase

	// Mapping: item class -> craftable bases sorted by name
	basesByClass map[string][]domain.ItemBase
	classes      []string

	// Mapping: spawn tag -> mod keys with positive weight for it
	modIDsByTag map[string][]string

	representations map[string]string
	pools           *poolCache
}

type options struct {
	cacheSize int
	cacheTTL  time.Duration
}

// Option configures a Catalog
type Option func(*options)

// WithPoolCache sets the size and TTL of the candidate pool cache
func WithPoolCache(size int, ttl time.Duration) Option {
	return func(o *options) {
		if size > 0 {
			o.cacheSize = size
		}
		if ttl > 0 {
			o.cacheTTL = ttl
		}
	}
}

// New builds the catalog indexes and renders every mod once.
// Mods whose stats cannot be rendered get a placeholder representation.
func New(tables domain.ReferenceTables, resolver translation.Resolver, opts ...Option) (*Catalog, error) {
	if len(tables.Mods) == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyTable, domain.ErrInvalidTables, "mods")
	}
	if len(tables.ItemBases) == 0 {
		return nil, fmt.Errorf(ErrFmtEmptyTable, domain.ErrInvalidTables, "item bases")
	}
	if resolver == nil {
		return nil, fmt.Errorf(ErrFmtNoResolver, domain.ErrInvalidTables)
	}

	o := options{cacheSize: DefaultCacheSize, cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		mods:            make(map[string]domain.Mod, len(tables.Mods)),
		basesByName:     make(map[string]domain.ItemBase),
		basesByClass:    make(map[string][]domain.ItemBase),
		modIDsByTag:     make(map[string][]string),
		representations: make(map[string]string, len(tables.Mods)),
		pools:           newPoolCache(o.cacheSize, o.cacheTTL),
	}

	for key, m := range tables.Mods {
		m.Key = key
		c.mods[key] = m
	}

	c.indexBases(tables.ItemBases)
	c.indexTags()
	c.renderAll(resolver, tables.RepresentationOverrides)

	return c, nil
}

// indexBases builds name and class lookups. On name collisions a craftable,
// released base wins; remaining ties go to the smallest id.
func (c *Catalog) indexBases(bases map[string]domain.ItemBase) {
	ids := make([]string, 0, len(bases))
	for id := range bases {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		b := bases[id]
		b.ID = id
		if prev, ok := c.basesByName[b.Name]; ok && baseRank(prev) >= baseRank(b) {
			continue
		}
		c.basesByName[b.Name] = b
	}

	for _, b := range c.basesByName {
		if !b.IsCraftable() {
			continue
		}
		c.basesByClass[b.ItemClass] = append(c.basesByClass[b.ItemClass], b)
	}
	for class, list := range c.basesByClass {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
		c.classes = append(c.classes, class)
	}
	sort.Strings(c.classes)
}

func baseRank(b domain.ItemBase) int {
	rank := 0
	if b.IsCraftable() {
		rank += 2
	}
	if b.IsReleased() {
		rank++
	}
	return rank
}

// indexTags maps the tags of released craftable bases to mods that spawn on them
func (c *Catalog) indexTags() {
	liveTags := make(map[string]struct{})
	for _, b := range c.basesByName {
		if !b.IsCraftable() || !b.IsReleased() {
			continue
		}
		for _, t := range b.Tags {
			liveTags[t] = struct{}{}
		}
	}

	keys := c.sortedModKeys()
	for _, key := range keys {
		seen := make(map[string]struct{})
		for _, sw := range c.mods[key].SpawnWeights {
			if sw.Weight == 0 {
				continue
			}
			if _, live := liveTags[sw.Tag]; !live {
				continue
			}
			if _, dup := seen[sw.Tag]; dup {
				continue
			}
			seen[sw.Tag] = struct{}{}
			c.modIDsByTag[sw.Tag] = append(c.modIDsByTag[sw.Tag], key)
		}
	}
}

func (c *Catalog) renderAll(resolver translation.Resolver, overrides map[string]string) {
	for key, m := range c.mods {
		if text, ok := overrides[key]; ok {
			c.representations[key] = text
			continue
		}
		text, err := resolver.ResolveMod(m)
		if err != nil {
			text = fmt.Sprintf(RepresentationErrFmt, key)
		}
		c.representations[key] = text
	}
}

func (c *Catalog) sortedModKeys() []string {
	keys := make([]string, 0, len(c.mods))
	for k := range c.mods {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetItemClasses returns classes of craftable bases in name order
func (c *Catalog) GetItemClasses() []string {
	return append([]string(nil), c.classes...)
}

// GetItemBases returns craftable bases of a class in name order
func (c *Catalog) GetItemBases(itemClass string) []domain.ItemBase {
	return append([]domain.ItemBase(nil), c.basesByClass[itemClass]...)
}

// ItemClassExists reports whether any craftable base belongs to the class
func (c *Catalog) ItemClassExists(itemClass string) bool {
	_, ok := c.basesByClass[itemClass]
	return ok
}

// MatchItemBase finds the base of a class whose name is contained in line.
// The longest name wins so "Silk Gloves" does not shadow "Fingerless Silk Gloves".
func (c *Catalog) MatchItemBase(itemClass, line string) (string, bool) {
	best := ""
	for _, b := range c.basesByClass[itemClass] {
		if len(b.Name) > len(best) && strings.Contains(line, b.Name) {
			best = b.Name
		}
	}
	return best, best != ""
}

// ItemBase looks up a base by display name
func (c *Catalog) ItemBase(name string) (domain.ItemBase, bool) {
	b, ok := c.basesByName[name]
	return b, ok
}

// Mod looks up a mod by key
func (c *Catalog) Mod(key string) (domain.Mod, bool) {
	m, ok := c.mods[key]
	return m, ok
}

// Representation returns the rendered text of a mod
func (c *Catalog) Representation(key string) (string, bool) {
	r, ok := c.representations[key]
	return r, ok
}

// ModCount returns the number of mods in the catalog
func (c *Catalog) ModCount() int {
	return len(c.mods)
}

// ItemBaseCount returns the number of craftable bases in the catalog
func (c *Catalog) ItemBaseCount() int {
	n := 0
	for _, bases := range c.basesByClass {
		n += len(bases)
	}
	return n
}
