package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/antonguzun/lazy-crafter/internal/domain"
	"github.com/antonguzun/lazy-crafter/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceError, opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceError, opName), "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Parser messages
	ErrMsgNoItemClassError      = "Could not find the item class. Copy the item with Ctrl+C in game."
	ErrMsgUnknownItemClassError = "That item class cannot be crafted"
	ErrMsgNoItemBaseError       = "Could not find the item base"
	ErrMsgModNotRecognizedError = "Some mods were not recognized"
	ErrMsgWrongModCountError    = "Mod headers and mod lines do not line up"

	// Catalog messages
	ErrMsgItemBaseNotFoundError = "Item base not found"
	ErrMsgModNotFoundError      = "Mod not found"

	// Estimation messages
	ErrMsgNoModsSelectedError   = "Select at least one mod"
	ErrMsgTooManyAffixesError   = "At most three prefixes and three suffixes can be targeted"
	ErrMsgInvalidItemLevelError = "Item level must be between 1 and 100"
	ErrMsgPresetNotFoundError   = "Preset not found"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoItemClass):
		return http.StatusUnprocessableEntity, ErrMsgNoItemClassError
	case errors.Is(err, domain.ErrUnknownItemClass):
		return http.StatusUnprocessableEntity, ErrMsgUnknownItemClassError
	case errors.Is(err, domain.ErrNoItemBase):
		return http.StatusUnprocessableEntity, ErrMsgNoItemBaseError
	case errors.Is(err, domain.ErrModNotRecognized):
		return http.StatusUnprocessableEntity, ErrMsgModNotRecognizedError
	case errors.Is(err, domain.ErrWrongModCount):
		return http.StatusUnprocessableEntity, ErrMsgWrongModCountError
	case errors.Is(err, domain.ErrItemBaseNotFound):
		return http.StatusNotFound, ErrMsgItemBaseNotFoundError
	case errors.Is(err, domain.ErrModNotFound):
		return http.StatusNotFound, ErrMsgModNotFoundError
	case errors.Is(err, domain.ErrPresetNotFound):
		return http.StatusNotFound, ErrMsgPresetNotFoundError
	case errors.Is(err, domain.ErrNoModsSelected):
		return http.StatusBadRequest, ErrMsgNoModsSelectedError
	case errors.Is(err, domain.ErrTooManyAffixes):
		return http.StatusBadRequest, ErrMsgTooManyAffixesError
	case errors.Is(err, domain.ErrInvalidItemLevel):
		return http.StatusBadRequest, ErrMsgInvalidItemLevelError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
