package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Landing Registration Endpoint
//	@Description	Register from the landing form. Email and password are both required.
//	@Description	Records are keyed by the bare email and are not visible to the member listings.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.RegisterRequest	true	"email, password"
//	@Success		200		{object}	clubsdk.MessageResponse	"message"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"missing field, reserved email prefix, duplicate email or invalid JSON"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"storage failure"
//	@Router			/ [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req clubsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		clubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	if _, err := h.RegistrationService.Register(r.Context(), req.Email, req.Password); err != nil {
		writeServiceError(w, r, err, clubsdk.ErrMissingCredentials)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.MessageResponse{Message: clubsdk.MessageRegistered})
}
