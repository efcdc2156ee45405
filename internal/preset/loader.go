// Package preset loads named crafting targets from YAML files.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

const fileExt = ".yaml"

// Preset is a saved set of target mods for one item base
type Preset struct {
	Name      string   `yaml:"name" json:"name"`
	Label     string   `yaml:"label" json:"label"`
	ItemBase  string   `yaml:"item_base" json:"item_base"`
	ItemLevel uint64   `yaml:"item_level" json:"item_level"`
	Mods      []string `yaml:"mods" json:"mods"`
}

// Loader reads presets from a directory and caches them
type Loader struct {
	dir     string
	cache   map[string]*Preset
	cacheMu sync.RWMutex
	loaded  bool
}

// NewLoader creates a preset loader for dir
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:   dir,
		cache: make(map[string]*Preset),
	}
}

// Load reads every YAML file in the directory, replacing the cache
func (l *Loader) Load() error {
	l.cacheMu.Lock()
	defer l.cacheMu.Unlock()
	return l.loadLocked()
}

func (l *Loader) loadLocked() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("failed to read preset directory: %w", err)
	}

	presets := make(map[string]*Preset)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}

		p, err := loadFile(filepath.Join(l.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to load preset %s: %w", entry.Name(), err)
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(entry.Name(), fileExt)
		}
		if _, dup := presets[p.Name]; dup {
			return fmt.Errorf("%w: duplicate preset name %q", domain.ErrInvalidInput, p.Name)
		}
		presets[p.Name] = p
	}

	l.cache = presets
	l.loaded = true
	return nil
}

func loadFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	switch {
	case p.ItemBase == "":
		return nil, fmt.Errorf("%w: item_base is required", domain.ErrInvalidInput)
	case len(p.Mods) == 0:
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrNoModsSelected)
	case p.ItemLevel > domain.MaxItemLevel:
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidItemLevel, p.ItemLevel)
	}
	if p.ItemLevel == 0 {
		p.ItemLevel = domain.MaxItemLevel
	}
	return &p, nil
}

// ensureLoaded lazily loads the directory on first read
func (l *Loader) ensureLoaded() error {
	l.cacheMu.RLock()
	loaded := l.loaded
	l.cacheMu.RUnlock()
	if loaded {
		return nil
	}

	l.cacheMu.Lock()
	defer l.cacheMu.Unlock()
	if l.loaded {
		return nil
	}
	return l.loadLocked()
}

// Get returns a preset by name
func (l *Loader) Get(name string) (*Preset, error) {
	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	p, ok := l.cache[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPresetNotFound, name)
	}
	cp := *p
	cp.Mods = append([]string(nil), p.Mods...)
	return &cp, nil
}

// All returns every preset ordered by name
func (l *Loader) All() ([]Preset, error) {
	if err := l.ensureLoaded(); err != nil {
		return nil, err
	}

	l.cacheMu.RLock()
	defer l.cacheMu.RUnlock()

	out := make([]Preset, 0, len(l.cache))
	for _, p := range l.cache {
		cp := *p
		cp.Mods = append([]string(nil), p.Mods...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
