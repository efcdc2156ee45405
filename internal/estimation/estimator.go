package estimation

import (
	"fmt"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

// Catalog is the part of the mod catalog the estimator reads
type Catalog interface {
	FindMods(q domain.ModsQuery) ([]domain.ModItem, error)
	WeightOfTargetAndBetter(q domain.ModsQuery, targetKey string) (uint32, error)
}

// Estimator computes the chance that one full reroll hits a set of target mods.
// It holds no mutable state.
type Estimator struct {
	catalog Catalog
}

// New creates an estimator over the catalog
func New(catalog Catalog) *Estimator {
	return &Estimator{catalog: catalog}
}

// VariantRatio returns the share of rerolls that end with the given affix counts
func VariantRatio(prefixes, suffixes int) float64 {
	return variantRatios[[2]int{prefixes, suffixes}]
}

// Estimate sums, over every reachable (prefixes, suffixes) outcome, the outcome
// ratio times the chance that its slots contain every target or a better roll.
func (e *Estimator) Estimate(q domain.ModsQuery, targets []domain.ModItem) (*domain.Estimation, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoModsSelected
	}

	seen := make(map[string]struct{}, len(targets))
	var prefixes, suffixes []domain.ModItem
	for _, t := range targets {
		if _, dup := seen[t.ModKey]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicate, domain.ErrInvalidInput, t.ModKey)
		}
		seen[t.ModKey] = struct{}{}

		switch t.GenerationType {
		case domain.GenerationPrefix:
			prefixes = append(prefixes, t)
		case domain.GenerationSuffix:
			suffixes = append(suffixes, t)
		default:
			return nil, fmt.Errorf(ErrFmtNotAffix, domain.ErrInvalidInput, t.ModKey)
		}
	}
	if len(prefixes) > MaxAffixesPerType || len(suffixes) > MaxAffixesPerType {
		return nil, fmt.Errorf(ErrFmtTooManyAffixes, domain.ErrTooManyAffixes, len(prefixes), len(suffixes))
	}

	poolQuery := domain.ModsQuery{ItemBase: q.ItemBase, ItemLevelCap: q.ItemLevelCap}
	if poolQuery.ItemLevelCap == 0 {
		poolQuery.ItemLevelCap = domain.MaxItemLevel
	}

	prefixTotal, suffixTotal, err := e.poolTotals(poolQuery)
	if err != nil {
		return nil, err
	}
	prefixWeights, err := e.targetWeights(poolQuery, prefixes)
	if err != nil {
		return nil, err
	}
	suffixWeights, err := e.targetWeights(poolQuery, suffixes)
	if err != nil {
		return nil, err
	}

	result := &domain.Estimation{Variants: []domain.VariantEstimation{}}
	for pc := len(prefixes); pc <= MaxAffixesPerType; pc++ {
		for sc := len(suffixes); sc <= MaxAffixesPerType; sc++ {
			ratio := VariantRatio(pc, sc)
			if ratio == 0 {
				continue
			}
			p := slotsProbability(prefixTotal, prefixWeights, pc) *
				slotsProbability(suffixTotal, suffixWeights, sc)
			result.Variants = append(result.Variants, domain.VariantEstimation{
				Prefixes:    pc,
				Suffixes:    sc,
				Ratio:       ratio,
				Probability: p,
			})
			result.Probability += ratio * p
		}
	}
	return result, nil
}

func (e *Estimator) poolTotals(q domain.ModsQuery) (prefix, suffix float64, err error) {
	pool, err := e.catalog.FindMods(q)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrFmtPool, err)
	}
	for _, m := range pool {
		switch m.GenerationType {
		case domain.GenerationPrefix:
			prefix += float64(m.Weight)
		case domain.GenerationSuffix:
			suffix += float64(m.Weight)
		}
	}
	return prefix, suffix, nil
}

func (e *Estimator) targetWeights(q domain.ModsQuery, targets []domain.ModItem) ([]float64, error) {
	weights := make([]float64, 0, len(targets))
	for _, t := range targets {
		w, err := e.catalog.WeightOfTargetAndBetter(q, t.ModKey)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtTargetWeight, t.ModKey, err)
		}
		weights = append(weights, float64(w))
	}
	return weights, nil
}
