package utils

import (
	"errors"

	"logitrans-backend/services/lifecycle"
	"logitrans-backend/store"
)

// MapDomainError translates service and store errors into an HTTP status and
// a client-facing message. Unrecognized errors come back as 500 with a
// generic message so internals never leak to the client.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		return 400, err.Error()
	case errors.Is(err, lifecycle.ErrDuplicateTrack):
		return 409, "Cargo with this track already exists"
	case errors.Is(err, lifecycle.ErrSlotOccupied):
		return 409, "Slot is already occupied at this point"
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return 409, "Status transition not allowed"
	case errors.Is(err, lifecycle.ErrCargoInUse):
		return 409, "Cargo still has live shipments"
	case errors.Is(err, store.ErrDuplicate):
		return 409, "Record already exists"
	case errors.Is(err, store.ErrNotFound):
		return 404, "Record not found"
	default:
		return 500, "Database error"
	}
}
