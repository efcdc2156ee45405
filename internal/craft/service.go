// Package craft is the single entry point the transports use for catalog
// queries, item parsing, estimation and auto-craft matching.
package craft

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/logger"
	"github.com/antonguzun/lazy-crafter/internal/matcher"
	"github.com/antonguzun/lazy-crafter/internal/metrics"
	"github.com/antonguzun/lazy-crafter/internal/preset"
)

// Service defines the interface for crafting operations
type Service interface {
	FindMods(ctx context.Context, q domain.ModsQuery) ([]domain.ModItem, error)
	GetItemClasses(ctx context.Context) []string
	GetItemBases(ctx context.Context, itemClass string) []domain.ItemBase
	ParseItem(ctx context.Context, raw string) (*domain.ParsedItem, error)
	Estimate(ctx context.Context, q domain.ModsQuery, targets []domain.ModItem) (*domain.Estimation, error)
	SubsetOfModsSatisfying(ctx context.Context, modKey, itemBase string) (domain.ModKeySet, error)
	NewMatcher(ctx context.Context, itemBase string, targets []string) (*matcher.Matcher, error)
	ParseItemLevel(raw string) (uint64, error)
	ListPresets(ctx context.Context) ([]preset.Preset, error)
	EstimatePreset(ctx context.Context, name string) (*PresetEstimation, error)
	CheckHealth(ctx context.Context) error
}

// Catalog is the mod catalog the service reads
type Catalog interface {
	FindMods(q domain.ModsQuery) ([]domain.ModItem, error)
	GetItemClasses() []string
	GetItemBases(itemClass string) []domain.ItemBase
	SubsetOfModsSatisfying(modKey, itemBase string) (domain.ModKeySet, error)
	ModCount() int
	ItemBaseCount() int
}

// ItemParser turns copied item text into mod keys
type ItemParser interface {
	Parse(raw string) (*domain.ParsedItem, error)
}

// Estimator computes reroll probabilities
type Estimator interface {
	Estimate(q domain.ModsQuery, targets []domain.ModItem) (*domain.Estimation, error)
}

// PresetStore serves saved target sets
type PresetStore interface {
	Get(name string) (*preset.Preset, error)
	All() ([]preset.Preset, error)
}

// PresetEstimation is an estimate for a saved preset
type PresetEstimation struct {
	Preset     preset.Preset      `json:"preset"`
	Targets    []domain.ModItem   `json:"targets"`
	Estimation *domain.Estimation `json:"estimation"`
}

type service struct {
	catalog   Catalog
	parser    ItemParser
	estimator Estimator
	presets   PresetStore
}

// NewService creates a new crafting service. presets may be nil.
func NewService(catalog Catalog, parser ItemParser, estimator Estimator, presets PresetStore) Service {
	metrics.CatalogModsLoaded.Set(float64(catalog.ModCount()))
	metrics.CatalogBasesLoaded.Set(float64(catalog.ItemBaseCount()))

	return &service{
		catalog:   catalog,
		parser:    parser,
		estimator: estimator,
		presets:   presets,
	}
}

// withLevelCap treats a missing cap as the highest item level
func withLevelCap(q domain.ModsQuery) domain.ModsQuery {
	if q.ItemLevelCap == 0 {
		q.ItemLevelCap = domain.MaxItemLevel
	}
	return q
}

func (s *service) FindMods(ctx context.Context, q domain.ModsQuery) ([]domain.ModItem, error) {
	log := logger.FromContext(ctx)

	mods, err := s.catalog.FindMods(withLevelCap(q))
	if err != nil {
		return nil, err
	}
	metrics.ModsSearched.Inc()

	log.Debug(LogMsgModsFound,
		"item_base", q.ItemBase,
		"filter", q.TextFilter,
		"selected", len(q.AlreadySelected),
		"count", len(mods))
	return mods, nil
}

func (s *service) GetItemClasses(_ context.Context) []string {
	return s.catalog.GetItemClasses()
}

func (s *service) GetItemBases(_ context.Context, itemClass string) []domain.ItemBase {
	return s.catalog.GetItemBases(itemClass)
}

func (s *service) ParseItem(ctx context.Context, raw string) (*domain.ParsedItem, error) {
	log := logger.FromContext(ctx)

	item, err := s.parser.Parse(raw)
	metrics.ItemsParsed.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		log.Debug(LogMsgItemParseFailed, "error", err)
		return nil, err
	}

	log.Debug(LogMsgItemParsed,
		"item_class", item.ItemClass,
		"item_base", item.ItemBaseName,
		"mods", item.Mods)
	return item, nil
}

func (s *service) Estimate(ctx context.Context, q domain.ModsQuery, targets []domain.ModItem) (*domain.Estimation, error) {
	log := logger.FromContext(ctx)

	est, err := s.estimator.Estimate(withLevelCap(q), targets)
	metrics.Estimations.WithLabelValues(metrics.ResultLabel(err)).Inc()
	if err != nil {
		log.Debug(LogMsgEstimationFailed, "item_base", q.ItemBase, "targets", len(targets), "error", err)
		return nil, err
	}
	metrics.EstimationProbability.Observe(est.Probability)

	log.Info(LogMsgEstimated,
		"item_base", q.ItemBase,
		"item_level", q.ItemLevelCap,
		"targets", len(targets),
		"probability", est.Probability)
	return est, nil
}

func (s *service) SubsetOfModsSatisfying(_ context.Context, modKey, itemBase string) (domain.ModKeySet, error) {
	return s.catalog.SubsetOfModsSatisfying(modKey, itemBase)
}

func (s *service) NewMatcher(ctx context.Context, itemBase string, targets []string) (*matcher.Matcher, error) {
	m, err := matcher.New(targets, itemBase, s.catalog)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgMatcherBuilt, "item_base", itemBase, "targets", m.Targets())
	return m, nil
}

// ParseItemLevel reads a user supplied item level in 1..100
func (s *service) ParseItemLevel(raw string) (uint64, error) {
	return ParseItemLevel(raw)
}

// ParseItemLevel reads a user supplied item level in 1..100
func ParseItemLevel(raw string) (uint64, error) {
	level, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || level < MinItemLevel || level > domain.MaxItemLevel {
		return 0, fmt.Errorf(ErrFmtItemLevel, domain.ErrInvalidItemLevel, raw, MinItemLevel, domain.MaxItemLevel)
	}
	return level, nil
}

func (s *service) ListPresets(_ context.Context) ([]preset.Preset, error) {
	if s.presets == nil {
		return []preset.Preset{}, nil
	}
	return s.presets.All()
}

// EstimatePreset resolves the preset's mod keys on its base and estimates them
func (s *service) EstimatePreset(ctx context.Context, name string) (*PresetEstimation, error) {
	if s.presets == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, ErrMsgNoPresetStore)
	}

	p, err := s.presets.Get(name)
	if err != nil {
		if errors.Is(err, domain.ErrPresetNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrFmtPresetLookup, name, err)
	}

	q := domain.ModsQuery{ItemBase: p.ItemBase, ItemLevelCap: p.ItemLevel}
	pool, err := s.catalog.FindMods(withLevelCap(q))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtPresetPool, name, err)
	}
	byKey := make(map[string]domain.ModItem, len(pool))
	for _, it := range pool {
		byKey[it.ModKey] = it
	}

	targets := make([]domain.ModItem, 0, len(p.Mods))
	for _, key := range p.Mods {
		it, ok := byKey[key]
		if !ok {
			return nil, fmt.Errorf(ErrFmtPresetMod, domain.ErrModNotFound, name, key, p.ItemBase)
		}
		targets = append(targets, it)
	}

	est, err := s.Estimate(ctx, q, targets)
	if err != nil {
		return nil, err
	}
	return &PresetEstimation{Preset: *p, Targets: targets, Estimation: est}, nil
}

// CheckHealth reports whether the catalog holds data to serve
func (s *service) CheckHealth(_ context.Context) error {
	if s.catalog.ModCount() == 0 {
		return fmt.Errorf(ErrFmtCatalogEmpty, "mods")
	}
	if s.catalog.ItemBaseCount() == 0 {
		return fmt.Errorf(ErrFmtCatalogEmpty, "item bases")
	}
	return nil
}
