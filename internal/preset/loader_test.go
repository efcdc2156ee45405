package preset

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

func writePreset(t *testing.T, dir, file, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "boots.yaml", `
name: life-boots
label: Life and movement boots
item_base: Carnal Boots
item_level: 84
mods:
  - IncreasedLife4
  - MovementVelocity3
`)
	writePreset(t, dir, "rapier.yaml", `
label: Cold rapier
item_base: Antique Rapier
mods: [ColdResist3]
`)
	writePreset(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	l := NewLoader(dir)

	p, err := l.Get("life-boots")
	require.NoError(t, err)
	assert.Equal(t, &Preset{
		Name:      "life-boots",
		Label:     "Life and movement boots",
		ItemBase:  "Carnal Boots",
		ItemLevel: 84,
		Mods:      []string{"IncreasedLife4", "MovementVelocity3"},
	}, p)

	rapier, err := l.Get("rapier")
	require.NoError(t, err)
	assert.Equal(t, uint64(domain.MaxItemLevel), rapier.ItemLevel)

	all, err := l.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "life-boots", all[0].Name)
	assert.Equal(t, "rapier", all[1].Name)

	_, err = l.Get("nope")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

func TestLoader_ReturnsCopies(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "a.yaml", "item_base: Carnal Boots\nmods: [IncreasedLife4]\n")
	l := NewLoader(dir)

	p, err := l.Get("a")
	require.NoError(t, err)
	p.Mods[0] = "Changed"

	again, err := l.Get("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"IncreasedLife4"}, again.Mods)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{"no base", map[string]string{"a.yaml": "mods: [A]"}, domain.ErrInvalidInput},
		{"no mods", map[string]string{"a.yaml": "item_base: Carnal Boots"}, domain.ErrNoModsSelected},
		{"level too high", map[string]string{"a.yaml": "item_base: B\nitem_level: 101\nmods: [A]"}, domain.ErrInvalidItemLevel},
		{"duplicate name", map[string]string{
			"a.yaml": "name: x\nitem_base: B\nmods: [A]",
			"b.yaml": "name: x\nitem_base: B\nmods: [A]",
		}, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for file, content := range tt.files {
				writePreset(t, dir, file, content)
			}
			err := NewLoader(dir).Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		writePreset(t, dir, "a.yaml", "mods: [unclosed")
		err := NewLoader(dir).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "missing")).All()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read preset directory")
	})
}

func TestLoader_ConcurrentLazyLoad(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "a.yaml", "item_base: Carnal Boots\nmods: [IncreasedLife4]\n")
	l := NewLoader(dir)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Get("a")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestShippedPresets(t *testing.T) {
	all, err := NewLoader(filepath.Join("..", "..", "configs", "presets")).All()
	require.NoError(t, err)
	assert.NotEmpty(t, all)
	for _, p := range all {
		assert.NotEmpty(t, p.Label, p.Name)
	}
}
