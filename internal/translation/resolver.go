package translation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

var placeholderPattern = regexp.MustCompile(`\{(\d+)(?::[^}]*)?\}`)

// Resolver renders mod stats as the text the game shows
type Resolver interface {
	// Resolve renders a list of stats, one line per stat translation, lines sorted
	Resolve(stats []domain.Stat) (string, error)

	// ResolveMod renders every stat of a mod
	ResolveMod(mod domain.Mod) (string, error)

	// HasTranslation reports whether a stat id can be rendered
	HasTranslation(statID string) bool
}

type resolver struct {
	translations []domain.StatTranslation

	// Mapping: stat id -> index into translations
	byStatID map[string]int
}

// NoTranslationError reports stats the translation table cannot render
type NoTranslationError struct {
	StatIDs []string
}

func (e *NoTranslationError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrMsgNoTranslation, strings.Join(e.StatIDs, ", "))
}

func (e *NoTranslationError) Unwrap() error {
	return domain.ErrNoTranslation
}

// NewResolver indexes translations by stat id. When a stat id appears in
// several translations the first one wins.
func NewResolver(translations []domain.StatTranslation) Resolver {
	r := &resolver{
		translations: translations,
		byStatID:     make(map[string]int),
	}
	for i, t := range translations {
		for _, id := range t.IDs {
			if _, exists := r.byStatID[id]; !exists {
				r.byStatID[id] = i
			}
		}
	}
	return r
}

// HasTranslation reports whether a stat id can be rendered
func (r *resolver) HasTranslation(statID string) bool {
	_, ok := r.byStatID[statID]
	return ok
}

// ResolveMod renders every stat of a mod
func (r *resolver) ResolveMod(mod domain.Mod) (string, error) {
	text, err := r.Resolve(mod.Stats)
	if err != nil {
		return "", fmt.Errorf("mod %s: %w", mod.Key, err)
	}
	return text, nil
}

// Resolve groups stats by translation, renders each group and joins the
// non-empty lines in lexicographic order.
func (r *resolver) Resolve(stats []domain.Stat) (string, error) {
	groups := make(map[int][]domain.Stat)
	var order []int
	var missing []string

	for _, s := range stats {
		idx, ok := r.byStatID[s.ID]
		if !ok {
			missing = append(missing, s.ID)
			continue
		}
		if _, seen := groups[idx]; !seen {
			order = append(order, idx)
		}
		groups[idx] = append(groups[idx], s)
	}
	if len(missing) > 0 {
		return "", &NoTranslationError{StatIDs: missing}
	}

	lines := make([]string, 0, len(order))
	for _, idx := range order {
		line, err := resolveGroup(&r.translations[idx], groups[idx])
		if err != nil {
			return "", err
		}
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}

// resolveGroup renders stats that share one translation.
// Later variants are more specific, so they are tried first.
func resolveGroup(t *domain.StatTranslation, stats []domain.Stat) (string, error) {
	positions := make(map[string]int, len(t.IDs))
	for pos, id := range t.IDs {
		if _, exists := positions[id]; !exists {
			positions[id] = pos
		}
	}

	for i := len(t.Variants) - 1; i >= 0; i-- {
		variant := &t.Variants[i]
		accepted, raw := variantApplies(variant, stats, positions)
		if raw {
			return variant.Template, nil
		}
		if accepted {
			return render(variant, stats, positions), nil
		}
	}

	ids := make([]string, 0, len(stats))
	for _, s := range stats {
		ids = append(ids, s.ID)
	}
	return "", &NoTranslationError{StatIDs: ids}
}

// variantApplies checks the variant conditions against every present stat.
// raw is set when a negated condition selects the template as-is.
func variantApplies(v *domain.LanguageInstance, stats []domain.Stat, positions map[string]int) (accepted, raw bool) {
	accepted = true
	for _, s := range stats {
		pos := positions[s.ID]
		if formatAt(v, pos) == domain.FormatIgnore || pos >= len(v.Condition) {
			continue
		}
		cond := v.Condition[pos]
		if cond.Negated {
			return true, true
		}
		lo, hi := s.Bounds()
		if cond.Min != nil && lo < *cond.Min {
			accepted = false
		}
		if cond.Max != nil && hi > *cond.Max {
			accepted = false
		}
	}
	return accepted, false
}

func render(v *domain.LanguageInstance, stats []domain.Stat, positions map[string]int) string {
	values := make(map[int]string, len(stats))
	for _, s := range stats {
		pos := positions[s.ID]
		format := formatAt(v, pos)
		if format == domain.FormatIgnore {
			continue
		}
		handler := handlerAt(v, pos)
		lo, hi := s.Bounds()

		negative := hi < 0
		if FlipsSign(handler) {
			negative = !negative
		}

		value := ApplyHandler(handler, abs(lo))
		if lo != hi {
			value = fmt.Sprintf(rangeFormat, value, ApplyHandler(handler, abs(hi)))
		}

		if negative {
			format = flipSign(format)
		}
		if strings.Contains(format, ValueSlot) {
			value = strings.Replace(format, ValueSlot, value, 1)
		}
		values[pos] = value
	}

	return placeholderPattern.ReplaceAllStringFunc(v.Template, func(ph string) string {
		m := placeholderPattern.FindStringSubmatch(ph)
		pos, err := strconv.Atoi(m[1])
		if err != nil {
			return ph
		}
		if value, ok := values[pos]; ok {
			return value
		}
		return ph
	})
}

func formatAt(v *domain.LanguageInstance, pos int) string {
	if pos < len(v.Format) {
		return v.Format[pos]
	}
	return ValueSlot
}

func handlerAt(v *domain.LanguageInstance, pos int) string {
	if pos < len(v.IndexHandlers) && len(v.IndexHandlers[pos]) > 0 {
		return v.IndexHandlers[pos][0]
	}
	return ""
}

// flipSign swaps the sign literal right before the value slot
func flipSign(format string) string {
	i := strings.Index(format, ValueSlot)
	if i <= 0 {
		return format
	}
	switch format[i-1] {
	case '+':
		return format[:i-1] + "-" + format[i:]
	case '-':
		return format[:i-1] + "+" + format[i:]
	}
	return format
}

func abs(v int64) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}
