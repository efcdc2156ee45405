package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

// poolCache keeps candidate pools for recently queried bases.
// Entries are shared between callers and must never be mutated.
type poolCache struct {
	lru *expirable.LRU[string, []domain.ModItem]
}

func newPoolCache(size int, ttl time.Duration) *poolCache {
	return &poolCache{
		lru: expirable.NewLRU[string, []domain.ModItem](size, nil, ttl),
	}
}

func (c *poolCache) Get(key string) ([]domain.ModItem, bool) {
	return c.lru.Get(key)
}

func (c *poolCache) Set(key string, pool []domain.ModItem) {
	c.lru.Add(key, pool)
}

// Len reports the number of cached pools
func (c *poolCache) Len() int {
	return c.lru.Len()
}

// poolKey identifies a pool by base, level cap and excluded groups
func poolKey(itemBase string, levelCap uint64, excluded map[string]struct{}) string {
	groups := make([]string, 0, len(excluded))
	for g := range excluded {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	parts := append([]string{itemBase, strconv.FormatUint(levelCap, 10)}, groups...)
	return strings.Join(parts, poolKeySeparator)
}
