package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Parser errors
	ErrMsgNoItemClass      = "no item class matches"
	ErrMsgUnknownItemClass = "item class not found in catalog"
	ErrMsgNoItemBase       = "no item base found"
	ErrMsgWrongModCount    = "wrong count of mods"
	ErrMsgModNotRecognized = "mod not recognized"

	// Catalog errors
	ErrMsgItemBaseNotFound = "item base not found"
	ErrMsgModNotFound      = "mod not found"
	ErrMsgInvalidTables    = "invalid reference tables"

	// Translation errors
	ErrMsgNoTranslation = "no translation"

	// Estimation errors
	ErrMsgNoModsSelected   = "no mods selected"
	ErrMsgTooManyAffixes   = "too many affixes selected"
	ErrMsgPresetNotFound   = "preset not found"
	ErrMsgInvalidItemLevel = "invalid item level"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Parser errors
	ErrNoItemClass      = errors.New(ErrMsgNoItemClass)
	ErrUnknownItemClass = errors.New(ErrMsgUnknownItemClass)
	ErrNoItemBase       = errors.New(ErrMsgNoItemBase)
	ErrWrongModCount    = errors.New(ErrMsgWrongModCount)
	ErrModNotRecognized = errors.New(ErrMsgModNotRecognized)

	// Catalog errors
	ErrItemBaseNotFound = errors.New(ErrMsgItemBaseNotFound)
	ErrModNotFound      = errors.New(ErrMsgModNotFound)
	ErrInvalidTables    = errors.New(ErrMsgInvalidTables)

	// Translation errors
	ErrNoTranslation = errors.New(ErrMsgNoTranslation)

	// Estimation errors
	ErrNoModsSelected   = errors.New(ErrMsgNoModsSelected)
	ErrTooManyAffixes   = errors.New(ErrMsgTooManyAffixes)
	ErrPresetNotFound   = errors.New(ErrMsgPresetNotFound)
	ErrInvalidItemLevel = errors.New(ErrMsgInvalidItemLevel)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
