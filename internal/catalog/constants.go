package catalog

import "time"

// Pool cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Minute
)

// Error message formats
const (
	ErrFmtNotFound       = "%w: %s"
	ErrFmtEmptyTable     = "%w: %s table is empty"
	ErrFmtNoResolver     = "%w: no stat resolver"
	RepresentationErrFmt = "representation_err: %s"
)

// poolKeySeparator joins the parts of a pool cache key
const poolKeySeparator = "|"
