package gamedata

// Default file names inside the data directory
const (
	ModsFile            = "mods.json"
	BaseItemsFile       = "base_items.json"
	TranslationsFile    = "stat_translations.json"
	RepresentationsFile = "mods_representation.json"
)

// Schema file names inside the schema directory
const (
	ModsSchema            = "mods.schema.json"
	BaseItemsSchema       = "base_items.schema.json"
	TranslationsSchema    = "stat_translations.schema.json"
	RepresentationsSchema = "mods_representation.schema.json"

	// DefaultSchemaDir is relative to the module root
	DefaultSchemaDir = "configs/schemas"
)

// Translation fields read from each stat_translations.json entry
const (
	fieldIDs     = "ids"
	fieldHidden  = "hidden"
	fieldEnglish = "English"
)
