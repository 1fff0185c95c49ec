package handlers

import (
	"errors"
	"net/http"

	"github.com/wanderstay/wanderstay/internal/application"
	"github.com/wanderstay/wanderstay/internal/domain/repository"
)

// statusFor maps domain error kinds to HTTP status codes. This is the only
// place the mapping lives; handlers never pick codes ad hoc.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateEmail), errors.Is(err, application.ErrWrongPassword):
		return http.StatusUnprocessableEntity
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, application.ErrSearchUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
