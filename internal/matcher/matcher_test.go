package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/internal/catalog"
	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/testing/fixture"
	"github.com/antonguzun/lazy-crafter/internal/translation"
)

type failingSource struct {
	err error
}

func (f failingSource) SubsetOfModsSatisfying(string, string) (domain.ModKeySet, error) {
	return nil, f.err
}

func newFixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(fixture.Tables(), translation.NewResolver(fixture.Translations()))
	require.NoError(t, err)
	return c
}

func TestMatcher(t *testing.T) {
	c := newFixtureCatalog(t)
	m, err := New([]string{"IncreasedLife4", "FireResist3"}, fixture.CarnalBoots, c)
	require.NoError(t, err)

	assert.Equal(t, fixture.CarnalBoots, m.ItemBase())
	assert.Equal(t, []string{"FireResist3", "IncreasedLife4"}, m.Targets())

	tests := []struct {
		name        string
		crafted     []string
		wantMatch   bool
		wantMissing []string
	}{
		{"exact targets", []string{"IncreasedLife4", "FireResist3"}, true, []string{}},
		{"better tiers", []string{"IncreasedLife5", "FireResist4", "MovementVelocity1"}, true, []string{}},
		{"lower tier life", []string{"IncreasedLife3", "FireResist3"}, false, []string{"IncreasedLife4"}},
		{"nothing crafted", nil, false, []string{"FireResist3", "IncreasedLife4"}},
		{"unrelated mods", []string{"ColdResist4", "MovementVelocity5"}, false, []string{"FireResist3", "IncreasedLife4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, m.Matches(tt.crafted))
			assert.Equal(t, tt.wantMissing, m.Missing(tt.crafted))
		})
	}
}

func TestNew_DuplicateTargets(t *testing.T) {
	m, err := New([]string{"IncreasedLife4", "IncreasedLife4"}, fixture.CarnalBoots, newFixtureCatalog(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"IncreasedLife4"}, m.Targets())
}

func TestNew_Errors(t *testing.T) {
	c := newFixtureCatalog(t)

	_, err := New(nil, fixture.CarnalBoots, c)
	assert.ErrorIs(t, err, domain.ErrNoModsSelected)

	_, err = New([]string{"Nope"}, fixture.CarnalBoots, c)
	assert.ErrorIs(t, err, domain.ErrModNotFound)

	_, err = New([]string{"IncreasedLife4"}, "Nope", c)
	assert.ErrorIs(t, err, domain.ErrItemBaseNotFound)

	boom := errors.New("boom")
	_, err = New([]string{"IncreasedLife4"}, fixture.CarnalBoots, failingSource{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "IncreasedLife4 on Carnal Boots")
}
