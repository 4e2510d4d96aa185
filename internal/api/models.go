package api

// CheckRequest is the body of POST /check_password. Password is a pointer
// so that an explicit empty string is distinguishable from a missing field.
type CheckRequest struct {
	Password *string `json:"password" validate:"required"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse is returned by GET /api.
type InfoResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version,omitempty"`
	Endpoints map[string]string `json:"endpoints"`
}
