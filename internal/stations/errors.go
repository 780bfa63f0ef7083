package stations

import (
	"errors"
	"net/http"
)

// Domain errors for station operations.
var (
	ErrNotFound  = errors.New("station not found")
	ErrDuplicate = errors.New("station already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
