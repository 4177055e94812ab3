package controller

import (
	"errors"
	"fmt"
	"net/http"

	"inventario-activos/service"
	"inventario-activos/utils"
)

// statusForError maps service and validation errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, utils.ErrInvalidTagFormat),
		errors.Is(err, utils.ErrDuplicateTag),
		errors.Is(err, utils.ErrQuantityMismatch),
		errors.Is(err, utils.ErrEmptyField):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRowNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrNoToken):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes an error response with the status mapped from err
func respondError(w http.ResponseWriter, action string, err error) {
	http.Error(w, fmt.Sprintf("Failed to %s: %v", action, err), statusForError(err))
}
