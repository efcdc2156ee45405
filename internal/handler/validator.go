package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/antonguzun/lazy-crafter/internal/domain"
)

// modKeyPattern matches mod ids such as "IncreasedLife4" or "LifeRegeneration8_"
var modKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("modkey", validateModKey)
	_ = v.RegisterValidation("affix", validateAffix)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the lower-cased field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "modkey":
			errs[field] = "Invalid mod key"
		case "affix":
			errs[field] = "Must be a prefix or a suffix"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateModKey(fl validator.FieldLevel) bool {
	return modKeyPattern.MatchString(fl.Field().String())
}

// validateAffix accepts an empty generation type; the estimator reports those itself
func validateAffix(fl validator.FieldLevel) bool {
	switch domain.GenerationType(fl.Field().String()) {
	case "", domain.GenerationPrefix, domain.GenerationSuffix:
		return true
	}
	return false
}
