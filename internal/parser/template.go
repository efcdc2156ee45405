package parser

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// numberPattern matches "15(12-17)", "(12-17)" and "15". Signs outside a range are
// kept as literal text, so "-7" and "+7" stay distinguishable after normalizing.
var numberPattern = regexp.MustCompile(
	`(\d+(?:\.\d+)?)?\(([-−]?\d+(?:\.\d+)?)[-−]([-−]?\d+(?:\.\d+)?)\)|(\d+(?:\.\d+)?)`)

var spacePattern = regexp.MustCompile(`\s+`)

// interval is a closed numeric range of a displayed value
type interval struct {
	lo, hi float64
}

func (i interval) contains(v interval) bool {
	return v.lo >= i.lo-valueEpsilon && v.hi <= i.hi+valueEpsilon
}

func (i interval) equals(v interval) bool {
	return math.Abs(i.lo-v.lo) <= valueEpsilon && math.Abs(i.hi-v.hi) <= valueEpsilon
}

// line is one text line with its numbers replaced by ValuePlaceholder
type line struct {
	normalized string
	values     []interval
}

// template is the normalized representation of a catalog mod
type template struct {
	modKey string
	lines  []line
}

type matchKind int

const (
	noMatch matchKind = iota
	containedMatch
	exactMatch
)

func normalizeLine(raw string) line {
	raw = spacePattern.ReplaceAllString(strings.TrimSpace(raw), " ")
	var values []interval
	normalized := numberPattern.ReplaceAllStringFunc(raw, func(tok string) string {
		values = append(values, tokenInterval(numberPattern.FindStringSubmatch(tok)))
		return ValuePlaceholder
	})
	return line{normalized: normalized, values: values}
}

// tokenInterval reads the value a token stands for. A value with a range in
// brackets counts as the value only; a bare range spans both ends.
func tokenInterval(m []string) interval {
	switch {
	case m[1] != "":
		v := parseMagnitude(m[1])
		return interval{v, v}
	case m[2] != "":
		a, b := parseMagnitude(m[2]), parseMagnitude(m[3])
		return interval{math.Min(a, b), math.Max(a, b)}
	default:
		v := parseMagnitude(m[4])
		return interval{v, v}
	}
}

func parseMagnitude(s string) float64 {
	s = strings.TrimLeft(s, "-−")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func normalizeText(text string) []line {
	var out []line
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		out = append(out, normalizeLine(raw))
	}
	return out
}

func newTemplate(modKey, representation string) template {
	return template{modKey: modKey, lines: normalizeText(representation)}
}

// signature identifies a template regardless of line order
func signature(lines []line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.normalized
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}

// match compares input lines against the template in any line order
func (t template) match(input []line) matchKind {
	if len(input) != len(t.lines) {
		return noMatch
	}
	used := make([]bool, len(t.lines))
	return t.matchFrom(input, 0, used, exactMatch)
}

func (t template) matchFrom(input []line, i int, used []bool, best matchKind) matchKind {
	if i == len(input) {
		return best
	}
	result := noMatch
	for j := range t.lines {
		if used[j] {
			continue
		}
		kind := matchLine(input[i], t.lines[j])
		if kind == noMatch {
			continue
		}
		used[j] = true
		if k := t.matchFrom(input, i+1, used, min(best, kind)); k > result {
			result = k
		}
		used[j] = false
		if result == exactMatch {
			break
		}
	}
	return result
}

// matchLine checks text equality and then values in natural or reversed order
func matchLine(in, tpl line) matchKind {
	if in.normalized != tpl.normalized || len(in.values) != len(tpl.values) {
		return noMatch
	}
	n := len(in.values)
	natural := compareValues(in.values, tpl.values, func(i int) int { return i })
	if natural == exactMatch || n < 2 {
		return natural
	}
	reversed := compareValues(in.values, tpl.values, func(i int) int { return n - 1 - i })
	return max(natural, reversed)
}

func compareValues(in, bounds []interval, index func(int) int) matchKind {
	kind := exactMatch
	for i, v := range in {
		b := bounds[index(i)]
		if !b.contains(v) {
			return noMatch
		}
		if !b.equals(v) {
			kind = containedMatch
		}
	}
	return kind
}
