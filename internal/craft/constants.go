package craft

// Log messages
const (
	LogMsgModsFound        = "Mods found"
	LogMsgItemParsed       = "Item parsed"
	LogMsgItemParseFailed  = "Item parse failed"
	LogMsgEstimated        = "Estimation computed"
	LogMsgEstimationFailed = "Estimation failed"
	LogMsgMatcherBuilt     = "Matcher built"
)

// Error message formats
const (
	ErrFmtItemLevel     = "%w: %q must be a whole number between %d and %d"
	ErrFmtPresetMod     = "%w: preset %s targets %s which cannot roll on %s"
	ErrFmtPresetLookup  = "failed to look up preset %s: %w"
	ErrFmtPresetPool    = "failed to load mods for preset %s: %w"
	ErrFmtCatalogEmpty  = "catalog has no %s"
	ErrMsgNoPresetStore = "presets are disabled"
)

// MinItemLevel is the lowest level an item can drop at
const MinItemLevel = 1
