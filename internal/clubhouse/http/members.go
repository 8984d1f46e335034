package http

import (
	"net/http"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
)

// MembersHandler serves the two listings of joined members.
type MembersHandler struct {
	RegistrationService *service.RegistrationService
}

// HandleJoinRequests godoc
//
//	@Summary		List Join Requests
//	@Description	Every member registered through the join API, with status, in storage order.
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	clubsdk.JoinRequestsResponse	"total, requests"
//	@Failure		500	{object}	clubsdk.ErrorResponse			"storage failure"
//	@Router			/api/join-requests [get].
func (h *MembersHandler) HandleJoinRequests(w http.ResponseWriter, r *http.Request) {
	members, err := h.RegistrationService.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, clubsdk.ErrInternal)
		return
	}

	rows := make([]clubsdk.JoinRequestRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, clubsdk.JoinRequestRow{
			Email:     m.Email,
			Name:      m.Name,
			Timestamp: m.Timestamp,
			Status:    string(m.Status),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.JoinRequestsResponse{Total: len(rows), Requests: rows})
}

// HandleUsers godoc
//
//	@Summary		List Users
//	@Description	Every member registered through the join API, without passwords.
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	clubsdk.UsersResponse	"total, users"
//	@Failure		500	{object}	clubsdk.ErrorResponse	"storage failure"
//	@Router			/api/users [get].
func (h *MembersHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	members, err := h.RegistrationService.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, clubsdk.ErrInternal)
		return
	}

	users := make([]clubsdk.User, 0, len(members))
	for _, m := range members {
		users = append(users, clubsdk.User{Email: m.Email, Name: m.Name, Timestamp: m.Timestamp})
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.UsersResponse{Total: len(users), Users: users})
}
