package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/service"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store/drivers/memory"
	"github.com/aussiebroadwan/clubhouse/pkg/clubsdk"
	"github.com/aussiebroadwan/clubhouse/pkg/httpx"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, st store.Store) *Router {
	t.Helper()
	r := NewRouter("test", st, httpx.DefaultCORS, slogx.Discard())
	r.RegistrationService = &service.RegistrationService{
		Store: st,
		Now:   func() time.Time { return fixedNow },
	}
	r.ApplyRoutes()
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&v))
	return v
}

func TestJoin(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.NewStore())

	// Joining with email and password.
	rec := do(t, h, http.MethodPost, "/api/join", `{"email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[clubsdk.JoinResponse](t, rec)
	require.True(t, resp.Success)
	require.Equal(t, clubsdk.MessageJoined, resp.Message)
	require.Equal(t, "a@x.com", resp.Data.Email)
	require.Equal(t, "", resp.Data.Name)
	require.Equal(t, "2025-06-01T12:00:00Z", resp.Data.Timestamp)

	// The same request again is a duplicate.
	rec = do(t, h, http.MethodPost, "/api/join", `{"email":"a@x.com","password":"p"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/join", `{"password":"p","name":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Email is required"}`, rec.Body.String())
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("empty object is missing fields", func(t *testing.T) {
		st := memory.NewStore()
		h := newTestRouter(t, st)

		rec := do(t, h, http.MethodPost, "/", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Missing email or password"}`, rec.Body.String())

		all, err := st.Registrations().GetAll(t.Context())
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("success then duplicate", func(t *testing.T) {
		h := newTestRouter(t, memory.NewStore())

		rec := do(t, h, http.MethodPost, "/", `{"email":"b@x.com","password":"p"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Registration successful"}`, rec.Body.String())

		rec = do(t, h, http.MethodPost, "/", `{"email":"b@x.com","password":"q"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())
	})

	t.Run("landing registrations stay out of the members namespace", func(t *testing.T) {
		st := memory.NewStore()
		h := newTestRouter(t, st)

		rec := do(t, h, http.MethodPost, "/", `{"email":"b@x.com","password":"p"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		ok, err := st.Registrations().Exists(t.Context(), "user:b@x.com")
		require.NoError(t, err)
		require.False(t, ok)

		users := decode[clubsdk.UsersResponse](t, do(t, h, http.MethodGet, "/api/users", ""))
		require.Zero(t, users.Total)
	})

	t.Run("reserved prefix is rejected", func(t *testing.T) {
		st := memory.NewStore()
		h := newTestRouter(t, st)

		rec := do(t, h, http.MethodPost, "/", `{"email":"user:b@x.com","password":"p"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"error":"Invalid email"}`, rec.Body.String())

		all, err := st.Registrations().GetAll(t.Context())
		require.NoError(t, err)
		require.Empty(t, all)

		rec = do(t, h, http.MethodPost, "/api/join", `{"email":"b@x.com"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		jr := decode[clubsdk.JoinRequestsResponse](t, do(t, h, http.MethodGet, "/api/join-requests", ""))
		require.Equal(t, 1, jr.Total)
		require.Equal(t, "b@x.com", jr.Requests[0].Email)
	})

	t.Run("invalid json", func(t *testing.T) {
		st := memory.NewStore()
		h := newTestRouter(t, st)

		for _, path := range []string{"/", "/api/join", "/join"} {
			for _, body := range []string{
				`{"email":`,
				`{"email":"a@x.com","password":"p"} trailing-garbage`,
			} {
				rec := do(t, h, http.MethodPost, path, body)
				require.Equal(t, http.StatusBadRequest, rec.Code, path)
				require.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String(), path)
			}
		}

		all, err := st.Registrations().GetAll(t.Context())
		require.NoError(t, err)
		require.Empty(t, all)
	})
}

func TestSignUp(t *testing.T) {
	t.Parallel()
	st := memory.NewStore()
	h := newTestRouter(t, st)

	for _, body := range []string{`{"email":"a@x.com","name":"Alice"}`, `{"password":"p"}`, `{}`} {
		rec := do(t, h, http.MethodPost, "/join", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.JSONEq(t, `{"error":"Missing email or password"}`, rec.Body.String(), body)
	}

	rec := do(t, h, http.MethodPost, "/join", `{"email":"a@x.com","password":"p","name":"Alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[clubsdk.JoinResponse](t, rec)
	require.True(t, resp.Success)
	require.Equal(t, clubsdk.MessageRegistered, resp.Message)
	require.Equal(t, clubsdk.JoinData{Email: "a@x.com", Name: "Alice", Timestamp: "2025-06-01T12:00:00Z"}, resp.Data)

	ok, err := st.Registrations().Exists(t.Context(), "user:a@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	// /join and /api/join share the members namespace.
	rec = do(t, h, http.MethodPost, "/api/join", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"Email already registered"}`, rec.Body.String())
}

func TestListings(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.NewStore())

	for _, body := range []string{
		`{"email":"a@x.com","name":"Alice"}`,
		`{"email":"b@x.com","name":"Bob","password":"secret"}`,
	} {
		require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/join", body).Code)
	}
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/", `{"email":"c@x.com","password":"p"}`).Code)

	rec := do(t, h, http.MethodGet, "/api/join-requests", "")
	require.Equal(t, http.StatusOK, rec.Code)
	jr := decode[clubsdk.JoinRequestsResponse](t, rec)
	require.Equal(t, 2, jr.Total)
	require.Equal(t, []clubsdk.JoinRequestRow{
		{Email: "a@x.com", Name: "Alice", Timestamp: "2025-06-01T12:00:00Z", Status: "active"},
		{Email: "b@x.com", Name: "Bob", Timestamp: "2025-06-01T12:00:00Z", Status: "active"},
	}, jr.Requests)

	rec = do(t, h, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret")
	users := decode[clubsdk.UsersResponse](t, rec)
	require.Equal(t, 2, users.Total)
	require.Equal(t, "b@x.com", users.Users[1].Email)
}

func TestEmptyListingsAreArrays(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.NewStore())

	rec := do(t, h, http.MethodGet, "/api/join-requests", "")
	require.JSONEq(t, `{"total":0,"requests":[]}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/users", "")
	require.JSONEq(t, `{"total":0,"users":[]}`, rec.Body.String())
}

type brokenStore struct {
	*memory.Store
	err error
}

func (b brokenStore) Registrations() store.Registrations { return brokenRegs{err: b.err} }

func (b brokenStore) Ping(context.Context) error { return b.err }

type brokenRegs struct {
	store.Registrations
	err error
}

func (b brokenRegs) PutIfAbsent(context.Context, string, domain.Registration) error { return b.err }

func (b brokenRegs) GetAll(context.Context) ([]store.Entry, error) { return nil, b.err }

func TestStorageFailures(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, brokenStore{Store: memory.NewStore(), err: errors.New("backend unreachable")})

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/", `{"email":"a@x.com","password":"p"}`},
		{http.MethodPost, "/api/join", `{"email":"a@x.com"}`},
		{http.MethodPost, "/join", `{"email":"a@x.com","password":"p"}`},
		{http.MethodGet, "/api/join-requests", ""},
		{http.MethodGet, "/api/users", ""},
	} {
		rec := do(t, h, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusInternalServerError, rec.Code, tc.path)
		require.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String(), tc.path)
	}

	rec := do(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	ready := decode[clubsdk.HealthResponse](t, rec)
	require.Equal(t, "degraded", ready.Status)
	require.Contains(t, ready.Checks.Storage, "backend unreachable")
}

func TestSystemEndpoints(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.NewStore())

	rec := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[clubsdk.ServiceHealthResponse](t, rec)
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, memory.Backend, health.Database)
	_, err := time.Parse(time.RFC3339, health.Timestamp)
	require.NoError(t, err)

	rec = do(t, h, http.MethodGet, "/livez", "")
	require.Equal(t, http.StatusOK, rec.Code)
	live := decode[clubsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	rec = do(t, h, http.MethodGet, "/readyz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode[clubsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", ready.Checks.Storage)
}

func TestPages(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.NewStore())

	rec := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), `<form id="register">`)

	rec = do(t, h, http.MethodGet, "/thank-you", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Thank You for Joining!")

	rec = do(t, h, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSAndRequestID(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, memory.NewStore())

	rec := do(t, h, http.MethodGet, "/livez", "")
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))

	req := httptest.NewRequest(http.MethodOptions, "/api/join", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	pre := httptest.NewRecorder()
	h.ServeHTTP(pre, req)
	require.Equal(t, http.StatusNoContent, pre.Code)
	require.Equal(t, "GET, POST, PUT, DELETE", pre.Header().Get("Access-Control-Allow-Methods"))
}
