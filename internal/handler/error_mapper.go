package handler

import (
	"errors"

	"github.com/forgo/realmkeep/internal/model"
	"github.com/forgo/realmkeep/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrSubjectRequired):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrWorldNotFound):
		return model.NewNotFoundError("world")
	case errors.Is(err, service.ErrItemNotFound):
		return model.NewNotFoundError("item")
	case errors.Is(err, service.ErrCampaignNotFound):
		return model.NewNotFoundError("campaign")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrEventSummaryRequired):
		return model.NewValidationError([]model.FieldError{{Field: "summary", Message: err.Error()}})
	case errors.Is(err, service.ErrPromptRequired):
		return model.NewValidationError([]model.FieldError{{Field: "prompt", Message: err.Error()}})

	// ===== Provider/External Errors → 502 =====
	case errors.Is(err, service.ErrGenerationFailed),
		errors.Is(err, service.ErrEmptyCompletion):
		return model.NewBadGatewayError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
