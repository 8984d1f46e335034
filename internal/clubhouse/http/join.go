package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

type JoinHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Join Endpoint
//	@Description	Join the club. Only the email is required; password and name are optional.
//	@Tags			Registrations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.JoinRequest		true	"email, password, name"
//	@Success		200		{object}	clubsdk.JoinResponse	"success, message, data"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"missing email, duplicate email or invalid JSON"
//	@Failure		500		{object}	clubsdk.ErrorResponse	"storage failure"
//	@Router			/api/join [post].
func (h *JoinHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req clubsdk.JoinRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		clubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	rec, err := h.RegistrationService.Join(r.Context(), service.JoinRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeServiceError(w, r, err, clubsdk.ErrEmailRequired)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.JoinResponse{
		Success: true,
		Message: clubsdk.MessageJoined,
		Data: clubsdk.JoinData{
			Email:     rec.Email,
			Name:      rec.Name,
			Timestamp: rec.Timestamp,
		},
	})
}
