package craft

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/internal/catalog"
	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/estimation"
	"github.com/antonguzun/lazy-crafter/internal/metrics"
	"github.com/antonguzun/lazy-crafter/internal/parser"
	"github.com/antonguzun/lazy-crafter/internal/preset"
	"github.com/antonguzun/lazy-crafter/internal/testing/fixture"
	"github.com/antonguzun/lazy-crafter/internal/translation"
)

const bootsText = `Item Class: Boots
Rarity: Rare
Gale Stride
Carnal Boots
--------
Item Level: 84
--------
+45 to maximum Life
22% increased Movement Speed
`

func newTestService(t *testing.T, presets PresetStore) Service {
	t.Helper()
	c, err := catalog.New(fixture.Tables(), translation.NewResolver(fixture.Translations()))
	require.NoError(t, err)
	p, err := parser.New(c)
	require.NoError(t, err)
	return NewService(c, p, estimation.New(c), presets)
}

func writePresets(t *testing.T, files map[string]string) *preset.Loader {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return preset.NewLoader(dir)
}

func TestNewService_SetsCatalogGauges(t *testing.T) {
	newTestService(t, nil)

	assert.Equal(t, float64(len(fixture.Mods())), testutil.ToFloat64(metrics.CatalogModsLoaded))
	assert.Equal(t, float64(9), testutil.ToFloat64(metrics.CatalogBasesLoaded))
}

func TestFindMods(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.ModsSearched)

	t.Run("missing level cap means every level", func(t *testing.T) {
		all, err := svc.FindMods(ctx, domain.ModsQuery{ItemBase: fixture.CarnalBoots})
		require.NoError(t, err)
		capped, err := svc.FindMods(ctx, domain.ModsQuery{ItemBase: fixture.CarnalBoots, ItemLevelCap: domain.MaxItemLevel})
		require.NoError(t, err)
		assert.Equal(t, capped, all)
		assert.NotEmpty(t, all)
	})

	t.Run("unknown base", func(t *testing.T) {
		_, err := svc.FindMods(ctx, domain.ModsQuery{ItemBase: "Nope"})
		assert.ErrorIs(t, err, domain.ErrItemBaseNotFound)
	})

	assert.Equal(t, before+2, testutil.ToFloat64(metrics.ModsSearched))
}

func TestItemClassesAndBases(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	assert.Contains(t, svc.GetItemClasses(ctx), "Boots")
	bases := svc.GetItemBases(ctx, "Boots")
	require.Len(t, bases, 2)
	assert.Equal(t, fixture.CarnalBoots, bases[0].Name)
	assert.Empty(t, svc.GetItemBases(ctx, "Nope"))
}

func TestParseItem(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	ok := metrics.ItemsParsed.WithLabelValues(metrics.ResultSuccess)
	failed := metrics.ItemsParsed.WithLabelValues(metrics.ResultError)
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	item, err := svc.ParseItem(ctx, bootsText)
	require.NoError(t, err)
	assert.Equal(t, fixture.CarnalBoots, item.ItemBaseName)
	assert.Equal(t, []string{"IncreasedLife4", "MovementVelocity3"}, item.Mods)

	_, err = svc.ParseItem(ctx, "not an item")
	assert.ErrorIs(t, err, domain.ErrNoItemClass)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}

func TestEstimate(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	q := domain.ModsQuery{ItemBase: fixture.CarnalBoots}
	pool, err := svc.FindMods(ctx, q)
	require.NoError(t, err)

	var life domain.ModItem
	for _, it := range pool {
		if it.ModKey == "IncreasedLife4" {
			life = it
		}
	}
	require.Equal(t, "IncreasedLife4", life.ModKey)

	success := metrics.Estimations.WithLabelValues(metrics.ResultSuccess)
	failure := metrics.Estimations.WithLabelValues(metrics.ResultError)
	successBefore, failureBefore := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	est, err := svc.Estimate(ctx, q, []domain.ModItem{life})
	require.NoError(t, err)
	assert.InDelta(t, 0.44677556855100714, est.Probability, 1e-9)

	_, err = svc.Estimate(ctx, q, nil)
	assert.ErrorIs(t, err, domain.ErrNoModsSelected)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(success))
	assert.Equal(t, failureBefore+1, testutil.ToFloat64(failure))
}

func TestSubsetAndMatcher(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	subset, err := svc.SubsetOfModsSatisfying(ctx, "IncreasedLife4", fixture.CarnalBoots)
	require.NoError(t, err)
	assert.Equal(t, []string{"IncreasedLife4", "IncreasedLife5"}, subset.Sorted())

	m, err := svc.NewMatcher(ctx, fixture.CarnalBoots, []string{"IncreasedLife4", "MovementVelocity3"})
	require.NoError(t, err)
	assert.True(t, m.Matches([]string{"IncreasedLife5", "MovementVelocity4"}))
	assert.Equal(t, []string{"MovementVelocity3"}, m.Missing([]string{"IncreasedLife4"}))

	_, err = svc.NewMatcher(ctx, fixture.CarnalBoots, nil)
	assert.ErrorIs(t, err, domain.ErrNoModsSelected)
}

func TestParseItemLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint64
		wantErr bool
	}{
		{"1", 1, false},
		{"84", 84, false},
		{" 100 ", 100, false},
		{"0", 0, true},
		{"101", 0, true},
		{"-5", 0, true},
		{"eighty", 0, true},
		{"", 0, true},
	}

	svc := newTestService(t, nil)
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := svc.ParseItemLevel(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidItemLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresets(t *testing.T) {
	ctx := context.Background()
	presets := writePresets(t, map[string]string{
		"boots.yaml": "label: Boots\nitem_base: Carnal Boots\nmods: [IncreasedLife4, MovementVelocity3]\n",
		"bow.yaml":   "label: Bow\nitem_base: Carnal Boots\nmods: [LocalAddedColdDamageTwoHand5]\n",
	})
	svc := newTestService(t, presets)

	all, err := svc.ListPresets(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	res, err := svc.EstimatePreset(ctx, "boots")
	require.NoError(t, err)
	assert.Equal(t, "boots", res.Preset.Name)
	require.Len(t, res.Targets, 2)
	assert.Equal(t, "IncreasedLife4", res.Targets[0].ModKey)
	assert.Equal(t, "MovementVelocity3", res.Targets[1].ModKey)
	assert.InDelta(t, 0.19561632860215716, res.Estimation.Probability, 1e-9)

	_, err = svc.EstimatePreset(ctx, "bow")
	assert.ErrorIs(t, err, domain.ErrModNotFound)

	_, err = svc.EstimatePreset(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

func TestPresets_Disabled(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	all, err := svc.ListPresets(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.EstimatePreset(ctx, "boots")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

type brokenPresets struct{}

func (brokenPresets) Get(string) (*preset.Preset, error) { return nil, errors.New("disk on fire") }
func (brokenPresets) All() ([]preset.Preset, error)      { return nil, errors.New("disk on fire") }

func TestPresets_StoreError(t *testing.T) {
	svc := newTestService(t, brokenPresets{})

	_, err := svc.EstimatePreset(context.Background(), "boots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up preset boots")
}

type countingCatalog struct {
	Catalog
	mods, bases int
}

func (c countingCatalog) ModCount() int      { return c.mods }
func (c countingCatalog) ItemBaseCount() int { return c.bases }

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, newTestService(t, nil).CheckHealth(ctx))

	empty := &service{catalog: countingCatalog{mods: 0, bases: 3}}
	assert.ErrorContains(t, empty.CheckHealth(ctx), "mods")

	noBases := &service{catalog: countingCatalog{mods: 3, bases: 0}}
	assert.ErrorContains(t, noBases.CheckHealth(ctx), "item bases")
}
