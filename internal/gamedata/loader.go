// Package gamedata reads the mods, base items and stat translation tables
// exported from the game files.
package gamedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/logger"
	"github.com/antonguzun/lazy-crafter/internal/validation"
)

// ErrInvalidData is returned when a table is malformed or empty
var ErrInvalidData = errors.New("invalid game data")

// Files locates the data tables. Representations is optional.
type Files struct {
	Mods            string
	BaseItems       string
	Translations    string
	Representations string
}

// FilesIn returns the default file names inside dir
func FilesIn(dir string) Files {
	return Files{
		Mods:            filepath.Join(dir, ModsFile),
		BaseItems:       filepath.Join(dir, BaseItemsFile),
		Translations:    filepath.Join(dir, TranslationsFile),
		Representations: filepath.Join(dir, RepresentationsFile),
	}
}

// Loader reads and decodes the tables
type Loader struct {
	files     Files
	validator validation.SchemaValidator
	schemaDir string
}

// Option configures a Loader
type Option func(*Loader)

// WithSchemaValidation validates every file against its schema in dir before decoding
func WithSchemaValidation(v validation.SchemaValidator, dir string) Option {
	return func(l *Loader) {
		l.validator = v
		l.schemaDir = dir
	}
}

// NewLoader creates a loader for files
func NewLoader(files Files, opts ...Option) *Loader {
	l := &Loader{files: files}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every table concurrently and returns them together
func (l *Loader) Load(ctx context.Context) (domain.ReferenceTables, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	var tables domain.ReferenceTables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		mods, err := l.loadMods(gctx)
		tables.Mods = mods
		return err
	})
	g.Go(func() error {
		bases, err := l.loadBaseItems(gctx)
		tables.ItemBases = bases
		return err
	})
	g.Go(func() error {
		translations, err := l.loadTranslations(gctx)
		tables.Translations = translations
		return err
	})
	g.Go(func() error {
		overrides, err := l.loadRepresentations(gctx)
		tables.RepresentationOverrides = overrides
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.ReferenceTables{}, err
	}

	log.Info("Game data loaded",
		"mods", len(tables.Mods),
		"item_bases", len(tables.ItemBases),
		"translations", len(tables.Translations),
		"representation_overrides", len(tables.RepresentationOverrides),
		"duration", time.Since(start))
	return tables, nil
}

func (l *Loader) read(ctx context.Context, path, schema string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if l.validator != nil {
		if err := l.validator.ValidateBytes(data, filepath.Join(l.schemaDir, schema)); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, path, err)
		}
	}
	return data, nil
}

func (l *Loader) loadMods(ctx context.Context) (map[string]domain.Mod, error) {
	data, err := l.read(ctx, l.files.Mods, ModsSchema)
	if err != nil {
		return nil, err
	}

	var mods map[string]domain.Mod
	if err := json.Unmarshal(data, &mods); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, l.files.Mods, err)
	}
	if len(mods) == 0 {
		return nil, fmt.Errorf("%w: %s has no mods", ErrInvalidData, l.files.Mods)
	}
	for key, m := range mods {
		m.Key = key
		mods[key] = m
	}
	return mods, nil
}

func (l *Loader) loadBaseItems(ctx context.Context) (map[string]domain.ItemBase, error) {
	data, err := l.read(ctx, l.files.BaseItems, BaseItemsSchema)
	if err != nil {
		return nil, err
	}

	var bases map[string]domain.ItemBase
	if err := json.Unmarshal(data, &bases); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, l.files.BaseItems, err)
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: %s has no item bases", ErrInvalidData, l.files.BaseItems)
	}
	for id, b := range bases {
		b.ID = id
		bases[id] = b
	}
	return bases, nil
}

// loadTranslations decodes only the English variants; the file carries every
// client language and most of it is never used
func (l *Loader) loadTranslations(ctx context.Context) ([]domain.StatTranslation, error) {
	data, err := l.read(ctx, l.files.Translations, TranslationsSchema)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidData, l.files.Translations)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: %s must hold an array", ErrInvalidData, l.files.Translations)
	}

	var translations []domain.StatTranslation
	var decodeErr error
	root.ForEach(func(idx, entry gjson.Result) bool {
		t, err := decodeTranslation(entry)
		if err != nil {
			decodeErr = fmt.Errorf("%w: %s entry %d: %w", ErrInvalidData, l.files.Translations, idx.Int(), err)
			return false
		}
		translations = append(translations, t)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return translations, nil
}

func decodeTranslation(entry gjson.Result) (domain.StatTranslation, error) {
	t := domain.StatTranslation{Hidden: entry.Get(fieldHidden).Bool()}
	for _, id := range entry.Get(fieldIDs).Array() {
		t.IDs = append(t.IDs, id.String())
	}
	if len(t.IDs) == 0 {
		return t, errors.New("no stat ids")
	}

	english := entry.Get(fieldEnglish)
	if !english.Exists() {
		return t, nil
	}
	if err := json.Unmarshal([]byte(english.Raw), &t.Variants); err != nil {
		return t, fmt.Errorf("english variants: %w", err)
	}
	return t, nil
}

// loadRepresentations reads hand-written mod texts. A missing file is not an error.
func (l *Loader) loadRepresentations(ctx context.Context) (map[string]string, error) {
	if l.files.Representations == "" {
		return nil, nil
	}
	if _, err := os.Stat(l.files.Representations); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	data, err := l.read(ctx, l.files.Representations, RepresentationsSchema)
	if err != nil {
		return nil, err
	}

	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidData, l.files.Representations, err)
	}
	return overrides, nil
}
