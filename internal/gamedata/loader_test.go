package gamedata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/internal/catalog"
	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/translation"
	"github.com/antonguzun/lazy-crafter/internal/validation"
)

const testdataDir = "testdata"

func copyTestdata(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{ModsFile, BaseItemsFile, TranslationsFile, RepresentationsFile} {
		data, err := os.ReadFile(filepath.Join(testdataDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	tables, err := NewLoader(FilesIn(testdataDir)).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, tables.Mods, 5)
	life := tables.Mods["IncreasedLife4"]
	assert.Equal(t, "IncreasedLife4", life.Key)
	assert.Equal(t, domain.GenerationPrefix, life.GenerationType)
	assert.Equal(t, uint64(30), life.RequiredLevel)
	assert.Equal(t, []domain.SpawnWeight{{Tag: "boots", Weight: 1000}, {Tag: "default", Weight: 0}}, life.SpawnWeights)

	unique := tables.Mods["UniqueBootsLife"]
	require.Len(t, unique.Stats, 1)
	lo, hi := unique.Stats[0].Bounds()
	assert.Equal(t, int64(60), lo)
	assert.Equal(t, int64(60), hi)

	require.Len(t, tables.ItemBases, 2)
	boots := tables.ItemBases["Metadata/Items/Armours/Boots/BootsDexInt10"]
	assert.Equal(t, "Metadata/Items/Armours/Boots/BootsDexInt10", boots.ID)
	assert.Equal(t, uint64(55), boots.RequiredLevel())
	gem := tables.ItemBases["Metadata/Items/Gems/SkillGemFireball"]
	assert.Nil(t, gem.Requirements)
	assert.False(t, gem.IsCraftable())

	require.Len(t, tables.Translations, 4)
	assert.Equal(t, []string{"base_maximum_life"}, tables.Translations[0].IDs)
	require.Len(t, tables.Translations[0].Variants, 1)
	assert.Equal(t, "{0} to maximum Life", tables.Translations[0].Variants[0].Template)
	assert.Equal(t, []string{"negate"}, tables.Translations[1].Variants[1].IndexHandlers[0])
	require.NotNil(t, tables.Translations[1].Variants[1].Condition[0].Max)
	assert.Equal(t, int64(-1), *tables.Translations[1].Variants[1].Condition[0].Max)
	assert.True(t, tables.Translations[3].Hidden)

	assert.Equal(t, map[string]string{"FireResist1": "+(6-11)% to Fire Resistance"}, tables.RepresentationOverrides)
}

func TestLoad_WithSchemaValidation(t *testing.T) {
	loader := NewLoader(FilesIn(testdataDir), WithSchemaValidation(validation.NewSchemaValidator(), DefaultSchemaDir))

	tables, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, tables.Mods, 5)
}

func TestLoad_FeedsCatalog(t *testing.T) {
	tables, err := NewLoader(FilesIn(testdataDir)).Load(context.Background())
	require.NoError(t, err)

	c, err := catalog.New(tables, translation.NewResolver(tables.Translations))
	require.NoError(t, err)

	assert.Equal(t, []string{"Boots"}, c.GetItemClasses())

	mods, err := c.FindMods(domain.ModsQuery{ItemBase: "Carnal Boots", ItemLevelCap: 100})
	require.NoError(t, err)
	got := make(map[string]string, len(mods))
	for _, m := range mods {
		got[m.ModKey] = m.Representation
	}
	assert.Equal(t, map[string]string{
		"FireResist1":       "+(6-11)% to Fire Resistance",
		"IncreasedLife3":    "+(25-39) to maximum Life",
		"IncreasedLife4":    "+(40-54) to maximum Life",
		"MovementVelocity3": "(20-24)% increased Movement Speed",
	}, got)
}

func TestLoad_OptionalRepresentations(t *testing.T) {
	dir := copyTestdata(t)
	require.NoError(t, os.Remove(filepath.Join(dir, RepresentationsFile)))

	tables, err := NewLoader(FilesIn(dir)).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tables.RepresentationOverrides)

	files := FilesIn(dir)
	files.Representations = ""
	tables, err = NewLoader(files).Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tables.RepresentationOverrides)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		validate bool
		wantErr  error
	}{
		{"malformed mods", ModsFile, `{"A": [}`, false, ErrInvalidData},
		{"empty mods", ModsFile, `{}`, false, ErrInvalidData},
		{"empty bases", BaseItemsFile, `{}`, false, ErrInvalidData},
		{"translations not an array", TranslationsFile, `{"ids": []}`, false, ErrInvalidData},
		{"translation without ids", TranslationsFile, `[{"English": []}]`, false, ErrInvalidData},
		{"translations malformed", TranslationsFile, `[{"ids": ["a"]`, false, ErrInvalidData},
		{"representation not a string", RepresentationsFile, `{"A": 1}`, false, ErrInvalidData},
		{"schema violation", ModsFile, `{"A": {"domain": "item"}}`, true, validation.ErrSchemaViolation},
		{"schema violation is invalid data", BaseItemsFile, `{"X": {"name": ""}}`, true, ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyTestdata(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.file), []byte(tt.content), 0o644))

			var opts []Option
			if tt.validate {
				opts = append(opts, WithSchemaValidation(validation.NewSchemaValidator(), DefaultSchemaDir))
			}

			_, err := NewLoader(FilesIn(dir), opts...).Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	dir := copyTestdata(t)
	require.NoError(t, os.Remove(filepath.Join(dir, ModsFile)))

	_, err := NewLoader(FilesIn(dir)).Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(FilesIn(testdataDir)).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
