package clubsdk

// ============================================================================
// Registration
// ============================================================================

// RegisterRequest is the body of POST / (landing form).
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is returned by POST / on success.
type MessageResponse struct {
	Message string `json:"message"`
}

// JoinRequest is the body of POST /api/join. Only Email is required.
type JoinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

// JoinResponse is returned by POST /api/join on success.
type JoinResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    JoinData `json:"data"`
}

// JoinData echoes the stored member without the password.
type JoinData struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// ============================================================================
// Listings
// ============================================================================

// JoinRequestsResponse is returned by GET /api/join-requests.
type JoinRequestsResponse struct {
	Total    int              `json:"total"`
	Requests []JoinRequestRow `json:"requests"`
}

type JoinRequestRow struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// UsersResponse is returned by GET /api/users.
type UsersResponse struct {
	Total int    `json:"total"`
	Users []User `json:"users"`
}

type User struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`

	// Uptime is the process uptime (e.g., "1h23m45s").
	Uptime string `json:"uptime,omitempty"`

	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Storage is "ok" or "error: <reason>".
	Storage string `json:"storage"`
}

// ServiceHealthResponse is returned by GET /health.
type ServiceHealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`

	// Database names the storage backend in use, e.g. "sqlite".
	Database string `json:"database"`
}

// ============================================================================
// Errors
// ============================================================================

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
