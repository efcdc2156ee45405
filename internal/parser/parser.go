package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

var (
	itemClassPattern = regexp.MustCompile(`Item Class: ([^\n]*)`)
	itemLevelPattern = regexp.MustCompile(`(?m)^Item Level: (\d+)`)

	// { Prefix Modifier "Thirsty" (Tier: 1) — Life, Physical, Attack }
	headerPattern = regexp.MustCompile(
		`^\{\s*(.+?)\s+Modifier(?:\s+"([^"]*)")?(?:\s+\((?:Tier|Rank):\s*(\d+)\))?(?:\s+—\s+(.*?))?\s*\}$`)

	// Sections the game appends after the mods
	trailerPattern = regexp.MustCompile(`^(Corrupted|Mirrored|Split|Unidentified|Synthesised Item|Note:.*)$`)
)

// Catalog is the read side of the mod catalog the parser needs
type Catalog interface {
	ItemClassExists(itemClass string) bool
	MatchItemBase(itemClass, line string) (string, bool)
	FindMods(q domain.ModsQuery) ([]domain.ModItem, error)
}

// Parser maps copied item text back to mod keys. Safe for concurrent use.
type Parser struct {
	catalog Catalog

	// Mapping: item base -> templates indexed by line signature
	templates *lru.Cache[string, map[string][]template]
}

type options struct {
	cacheSize int
}

// Option configures a Parser
type Option func(*options)

// WithTemplateCacheSize sets how many item bases keep prepared templates
func WithTemplateCacheSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.cacheSize = size
		}
	}
}

// New creates a parser over the catalog
func New(catalog Catalog, opts ...Option) (*Parser, error) {
	o := options{cacheSize: DefaultTemplateCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := lru.New[string, map[string][]template](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}
	return &Parser{catalog: catalog, templates: cache}, nil
}

// Parse reads the item class, base and mods from copied item text
func (p *Parser) Parse(raw string) (*domain.ParsedItem, error) {
	text := strings.ReplaceAll(raw, "\r\n", "\n")

	itemClass, err := p.itemClass(text)
	if err != nil {
		return nil, err
	}

	item := &domain.ParsedItem{ItemClass: itemClass, Mods: []string{}}
	prev := ""
	for _, l := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(l)
		if base, ok := p.catalog.MatchItemBase(itemClass, trimmed); ok {
			item.ItemBaseName = base
			item.ItemDisplayName = trimmed
			// rare and unique items carry their own name above the base line
			if prev != "" && prev != SectionSeparator && !strings.HasPrefix(prev, RarityPrefix) {
				item.ItemTitle = prev
			}
			break
		}
		prev = trimmed
	}
	if item.ItemBaseName == "" {
		return nil, fmt.Errorf(ErrFmtUnknownClass, domain.ErrNoItemBase, itemClass)
	}

	if m := itemLevelPattern.FindStringSubmatch(text); m != nil {
		if lvl, err := strconv.ParseUint(m[1], 10, 64); err == nil {
			item.ItemLevel = lvl
		}
	}

	block := modsBlock(text)
	item.RawModLines = block

	var details []domain.ParsedMod
	if hasHeaders(block) {
		details, err = p.parseHeaderBlock(item.ItemBaseName, block)
	} else {
		details, err = p.parsePlainBlock(item.ItemBaseName, block)
	}
	if err != nil {
		return nil, err
	}

	for _, d := range details {
		item.Mods = append(item.Mods, d.ModKey)
	}
	item.ModDetails = details
	return item, nil
}

// itemClass tries the captured class as is, then with surrounding
// whitespace and a stray trailing character removed
func (p *Parser) itemClass(text string) (string, error) {
	m := itemClassPattern.FindStringSubmatch(text)
	if m == nil {
		return "", domain.ErrNoItemClass
	}

	literal := m[1]
	trimmed := strings.TrimSpace(literal)
	candidates := []string{literal, trimmed}
	if _, size := utf8.DecodeLastRuneInString(trimmed); size > 0 {
		candidates = append(candidates, strings.TrimSpace(trimmed[:len(trimmed)-size]))
	}

	for _, c := range candidates {
		if c != "" && p.catalog.ItemClassExists(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf(ErrFmtUnknownClass, domain.ErrUnknownItemClass, trimmed)
}

// modsBlock returns the non-empty lines of the last section, skipping
// trailing sections such as "Corrupted" or a price note
func modsBlock(text string) []string {
	sections := strings.Split(text, SectionSeparator)
	for i := len(sections) - 1; i >= 0; i-- {
		lines := nonEmptyLines(sections[i])
		if i > 0 && allTrailers(lines) {
			continue
		}
		return lines
	}
	return nil
}

func nonEmptyLines(section string) []string {
	var out []string
	for _, l := range strings.Split(section, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func allTrailers(lines []string) bool {
	for _, l := range lines {
		if !trailerPattern.MatchString(l) {
			return false
		}
	}
	return true
}

func hasHeaders(lines []string) bool {
	for _, l := range lines {
		if headerPattern.MatchString(l) {
			return true
		}
	}
	return false
}

type segment struct {
	modKey string
	lines  []string
}

// parsePlainBlock splits lines into mods. A mod spans up to maxModLines adjacent
// lines; the split backtracks so a greedy single-line match cannot block the rest.
func (p *Parser) parsePlainBlock(itemBase string, lines []string) ([]domain.ParsedMod, error) {
	segments, ok := p.segment(itemBase, lines)
	if !ok && len(lines) > 0 && strings.Contains(lines[len(lines)-1], ImplicitMarker) {
		segments, ok = p.segment(itemBase, lines[:len(lines)-1])
	}
	if !ok {
		return nil, fmt.Errorf(ErrFmtWrongModCount, domain.ErrWrongModCount, len(lines), itemBase)
	}

	details := make([]domain.ParsedMod, 0, len(segments))
	for _, s := range segments {
		details = append(details, domain.ParsedMod{ModKey: s.modKey, Lines: s.lines})
	}
	return details, nil
}

func (p *Parser) segment(itemBase string, lines []string) ([]segment, bool) {
	failed := make(map[int]bool)

	var walk func(i int) ([]segment, bool)
	walk = func(i int) ([]segment, bool) {
		if i == len(lines) {
			return nil, true
		}
		if failed[i] {
			return nil, false
		}
		for size := 1; size <= maxModLines && i+size <= len(lines); size++ {
			key, err := p.StringToMod(itemBase, strings.Join(lines[i:i+size], "\n"))
			if err != nil {
				continue
			}
			if rest, ok := walk(i + size); ok {
				return append([]segment{{modKey: key, lines: lines[i : i+size]}}, rest...), true
			}
		}
		failed[i] = true
		return nil, false
	}

	return walk(0)
}

type headerBlock struct {
	kind        string
	name        string
	tier        int
	tags        string
	lines       []string
	description []string
}

// parseHeaderBlock handles the advanced copy format where every mod is
// introduced by a "{ ... Modifier ... }" header
func (p *Parser) parseHeaderBlock(itemBase string, lines []string) ([]domain.ParsedMod, error) {
	var blocks []*headerBlock
	var current *headerBlock
	stray := 0
	for _, l := range lines {
		if m := headerPattern.FindStringSubmatch(l); m != nil {
			tier, _ := strconv.Atoi(m[3])
			current = &headerBlock{kind: m[1], name: m[2], tier: tier, tags: m[4]}
			blocks = append(blocks, current)
			continue
		}
		if current == nil {
			if strings.TrimSpace(l) != "" && !strings.Contains(l, ImplicitMarker) {
				stray++
			}
			continue
		}
		if strings.HasPrefix(l, "(") && strings.HasSuffix(l, ")") {
			current.description = append(current.description, strings.Trim(l, "()"))
			continue
		}
		current.lines = append(current.lines, strings.TrimSuffix(l, UnscalableSuffix))
	}

	// Non-affix blocks may only carry implicit lines.
	for _, b := range blocks {
		if headerGenerationType(b.kind).IsAffix() {
			continue
		}
		for _, l := range b.lines {
			if strings.TrimSpace(l) != "" && !strings.Contains(l, ImplicitMarker) {
				stray++
			}
		}
	}
	if stray > 0 {
		return nil, fmt.Errorf(ErrFmtWrongModCount, domain.ErrWrongModCount, stray, itemBase)
	}

	var details []domain.ParsedMod
	for _, b := range blocks {
		gen := headerGenerationType(b.kind)
		if !gen.IsAffix() || len(b.lines) == 0 {
			continue
		}
		key, err := p.StringToMod(itemBase, strings.Join(b.lines, "\n"))
		if err != nil {
			return nil, fmt.Errorf(ErrFmtHeaderMod, domain.ErrWrongModCount, b.kind, b.name)
		}
		details = append(details, domain.ParsedMod{
			ModKey:         key,
			GenerationType: gen,
			Name:           b.name,
			Tier:           b.tier,
			Tags:           b.tags,
			Description:    strings.Join(b.description, " "),
			Lines:          b.lines,
		})
	}
	return details, nil
}

// headerGenerationType reads "Prefix" from "Master Crafted Prefix"
func headerGenerationType(kind string) domain.GenerationType {
	words := strings.Fields(kind)
	if len(words) == 0 {
		return ""
	}
	return domain.GenerationType(strings.ToLower(words[len(words)-1]))
}

// StringToMod finds the mod of an item base whose representation matches the
// text. A mod whose displayed range equals the text wins over one that merely contains it.
func (p *Parser) StringToMod(itemBase, text string) (string, error) {
	index, err := p.templatesFor(itemBase)
	if err != nil {
		return "", err
	}

	input := normalizeText(text)
	if len(input) == 0 {
		return "", fmt.Errorf(ErrFmtModLines, domain.ErrModNotRecognized, text, itemBase)
	}

	fallback := ""
	for _, t := range index[signature(input)] {
		switch t.match(input) {
		case exactMatch:
			return t.modKey, nil
		case containedMatch:
			if fallback == "" {
				fallback = t.modKey
			}
		}
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf(ErrFmtModLines, domain.ErrModNotRecognized, text, itemBase)
}

// templatesFor prepares and caches the templates of every mod that can roll on the base
func (p *Parser) templatesFor(itemBase string) (map[string][]template, error) {
	if index, ok := p.templates.Get(itemBase); ok {
		return index, nil
	}

	mods, err := p.catalog.FindMods(domain.ModsQuery{ItemBase: itemBase, ItemLevelCap: lookupLevel})
	if err != nil {
		return nil, err
	}

	index := make(map[string][]template)
	for _, m := range mods {
		t := newTemplate(m.ModKey, m.Representation)
		sig := signature(t.lines)
		index[sig] = append(index[sig], t)
	}
	p.templates.Add(itemBase, index)
	return index, nil
}
