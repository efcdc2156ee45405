package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Catalog operation error messages
	ErrMsgSearchModsFailed = "Failed to search mods"
	ErrMsgSubsetFailed     = "Failed to resolve equal or better mods"

	// Parser operation error messages
	ErrMsgParseItemFailed = "Failed to parse item"

	// Estimation error messages
	ErrMsgEstimateFailed = "Failed to estimate"

	// Preset error messages
	ErrMsgListPresetsFailed    = "Failed to list presets"
	ErrMsgEstimatePresetFailed = "Failed to estimate preset"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode %s request"
	LogMsgRequestDecoded   = "%s request decoded"
	LogMsgMissingParam     = "Missing %s query parameter"
	LogMsgServiceError     = "%s failed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgOddRequestFields = "LogRequestFields called with odd number of arguments"
)

// Request and path parameter names
const (
	ParamItemBase  = "item_base"
	ParamItemClass = "class"
	ParamModKey    = "modKey"
	ParamPreset    = "name"
)

// Operation names used in logs
const (
	OpSearchMods     = "Search mods"
	OpParseItem      = "Parse item"
	OpEstimate       = "Estimate"
	OpSatisfying     = "Equal or better mods"
	OpListPresets    = "List presets"
	OpEstimatePreset = "Estimate preset"
)
