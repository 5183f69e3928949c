package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/brand-checker/internal/engine"
	"github.com/jonathan/brand-checker/internal/profile"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		emptyContent *engine.EmptyContentError
		notFound     *profile.NotFoundError
		parseErr     *profile.ParseError
		versionErr   *profile.VersionError
	)
	switch {
	case errors.As(err, &emptyContent):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &parseErr), errors.As(err, &versionErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
