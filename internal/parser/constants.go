package parser

// Item text markers
const (
	SectionSeparator = "--------"
	ImplicitMarker   = "(implicit)"
	RarityPrefix     = "Rarity:"
	UnscalableSuffix = " — Unscalable Value"
	ValuePlaceholder = "#"
)

// Matching limits
const (
	// maxModLines is the largest number of text lines one mod renders to
	maxModLines = 3
	// DefaultTemplateCacheSize is the number of item bases whose templates are kept
	DefaultTemplateCacheSize = 64
	// valueEpsilon absorbs rounding of displayed fractional values
	valueEpsilon = 1e-6
	// lookupLevel includes every tier when matching text to mods
	lookupLevel = 100
)

// Error message formats
const (
	ErrFmtUnknownClass  = "%w: %s"
	ErrFmtModLines      = "%w: %q on %s"
	ErrFmtWrongModCount = "%w: %d lines left unrecognized on %s"
	ErrFmtHeaderMod     = "%w: %s modifier %q not recognized"
)
