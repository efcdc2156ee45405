package estimation

const (
	// MaxAffixesPerType is the number of prefix (and suffix) slots on a rare item
	MaxAffixesPerType = 3

	// OtherModWeightShare approximates the pool weight removed by one non-target roll
	OtherModWeightShare = 0.1
)

// variantRatios is the observed share of rerolls ending with (prefixes, suffixes)
var variantRatios = map[[2]int]float64{
	{1, 3}: 0.2814,
	{2, 2}: 0.2836,
	{2, 3}: 0.1725,
	{3, 1}: 0.1016,
	{3, 2}: 0.0775,
	{3, 3}: 0.0833,
}

// Error message formats
const (
	ErrFmtTooManyAffixes = "%w: %d prefixes, %d suffixes"
	ErrFmtNotAffix       = "%w: %s is not a prefix or suffix"
	ErrFmtDuplicate      = "%w: %s selected twice"
	ErrFmtPool           = "failed to load mod pool: %w"
	ErrFmtTargetWeight   = "failed to weigh %s: %w"
)
