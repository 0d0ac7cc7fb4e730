package handler

import (
	"errors"

	"github.com/forgo/datematch/api/internal/database"
	"github.com/forgo/datematch/api/internal/model"
	"github.com/forgo/datematch/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	// Absence and unauthorized mutation attempts both land here; the service
	// never tells them apart.
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrParticipantNotFound):
		return model.NewNotFoundError("event or participant")

	// ===== Storage Errors → 503 =====
	case errors.Is(err, database.ErrConnection):
		return model.NewStorageError()

	default:
		return model.NewInternalError("")
	}
}
