package handlers

import (
	"errors"
	"net/http"

	"herohud/internal/game"
)

// errorKind is the metric label for a failed command.
func errorKind(err error) string {
	switch {
	case errors.Is(err, game.ErrInsufficientResource):
		return "insufficient_resource"
	case errors.Is(err, game.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, game.ErrUnknownCommand):
		return "unknown_command"
	default:
		return "error"
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrInsufficientResource):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, game.ErrUnknownCommand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
