package clubsdk

import (
	"context"
	"net/http"
)

// Register submits the landing form. A second call with the same email
// returns ErrEmailRegistered.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/", req)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Join registers a member through the join API.
func (c *Client) Join(ctx context.Context, req JoinRequest) (*JoinResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/join", req)
	if err != nil {
		return nil, err
	}

	var out JoinResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp registers a member through POST /join, which also requires a
// password.
func (c *Client) SignUp(ctx context.Context, req JoinRequest) (*JoinResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/join", req)
	if err != nil {
		return nil, err
	}

	var out JoinResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListJoinRequests returns every member with its status.
func (c *Client) ListJoinRequests(ctx context.Context) (*JoinRequestsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/join-requests", nil, nil)
	if err != nil {
		return nil, err
	}

	var out JoinRequestsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns every member without status.
func (c *Client) ListUsers(ctx context.Context) (*UsersResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var out UsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
