package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type SignUpHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Member Sign-up Endpoint
//	@Description	Register a member. Email and password are required; name is optional.
//	@Description	Shares the member namespace with /api/join.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.JoinRequest		true	"email, password, name"
//	@Success		200		{object}	clubsdk.JoinResponse	"success, message, data"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"missing field, duplicate email or invalid JSON"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"storage failure"
//	@Router			/join [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req clubsdk.JoinRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		clubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	rec, err := h.RegistrationService.SignUp(r.Context(), service.JoinRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeServiceError(w, r, err, clubsdk.ErrMissingCredentials)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.JoinResponse{
		Success: true,
		Message: clubsdk.MessageRegistered,
		Data: clubsdk.JoinData{
			Email:     rec.Email,
			Name:      rec.Name,
			Timestamp: rec.Timestamp,
		},
	})
}
