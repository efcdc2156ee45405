package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

type targetStruct struct {
	Key  string                `validate:"required,modkey"`
	Kind domain.GenerationType `validate:"affix"`
	Tier int                   `validate:"min=1,max=10"`
}

func TestValidator_ModKey(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"plain key", "IncreasedLife4", false},
		{"trailing underscores", "LifeRegeneration11____", false},
		{"inner underscore", "Local_Added_Cold", false},
		{"empty", "", true},
		{"leading digit", "4Life", true},
		{"space", "Increased Life", true},
		{"punctuation", "Life;DROP", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(targetStruct{Key: tt.key, Kind: domain.GenerationPrefix, Tier: 1})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Affix(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		kind    domain.GenerationType
		wantErr bool
	}{
		{domain.GenerationPrefix, false},
		{domain.GenerationSuffix, false},
		{"", false},
		{"unique", true},
		{"corrupted", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := v.ValidateStruct(targetStruct{Key: "IncreasedLife4", Kind: tt.kind, Tier: 1})
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(targetStruct{Key: "", Kind: "unique", Tier: 11})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"key":  "This field is required",
		"kind": "Must be a prefix or a suffix",
		"tier": "Must be at most 10",
	}, FormatValidationError(err))

	err = v.ValidateStruct(targetStruct{Key: "A", Kind: domain.GenerationSuffix, Tier: 0})
	assert.Equal(t, map[string]string{"tier": "Must be at least 1"}, FormatValidationError(err))

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
