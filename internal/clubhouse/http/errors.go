package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

// writeServiceError maps a service error onto its API response. missing is
// the response used for ErrMissingField, which differs per endpoint.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, missing *clubsdk.APIError) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		missing.WriteError(w)
	case errors.Is(err, service.ErrReservedEmail):
		clubsdk.ErrInvalidEmail.WriteError(w)
	case errors.Is(err, service.ErrDuplicateRegistration):
		clubsdk.ErrEmailRegistered.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		clubsdk.ErrInternal.WriteError(w)
	}
}
