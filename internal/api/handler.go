package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fernandezvara/passmeter"
	"github.com/fernandezvara/passmeter/internal/metrics"
)

// DefaultMaxBodyBytes is used when NewHandler is given a non-positive limit.
const DefaultMaxBodyBytes = 4096

// Handler serves the evaluator endpoints.
type Handler struct {
	evaluator    *passmeter.Evaluator
	validator    *validator.Validate
	log          *zap.Logger
	metrics      *metrics.Metrics
	maxBodyBytes int64
	version      string
}

// Option customises a Handler.
type Option func(*Handler)

// WithMetrics records every evaluation on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithMaxBodyBytes caps the check_password request body.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithVersion sets the version reported by GET /api.
func WithVersion(v string) Option {
	return func(h *Handler) { h.version = v }
}

// NewHandler creates a Handler. A nil evaluator selects the default one and
// a nil logger discards output.
func NewHandler(e *passmeter.Evaluator, log *zap.Logger, opts ...Option) *Handler {
	if e == nil {
		e = passmeter.NewEvaluator()
	}
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		evaluator:    e,
		validator:    validator.New(),
		log:          log,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CheckPassword handles POST /check_password.
func (h *Handler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCheckRequest(w, r)
	if err != nil {
		HandleAPIError(w, r, h.log, err)
		return
	}

	result := h.evaluator.Evaluate(*req.Password)
	h.metrics.ObserveResult(result)

	h.log.Debug("password evaluated",
		zap.String("trace_id", TraceIDFromContext(r.Context())),
		zap.Stringer("strength", result.Strength),
		zap.Int("score", result.Score),
		zap.Strings("penalties", result.Penalties),
	)

	RespondWithJSON(w, h.log, http.StatusOK, result)
}

func (h *Handler) decodeCheckRequest(w http.ResponseWriter, r *http.Request) (*CheckRequest, error) {
	var req CheckRequest

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, decodeErrorKind(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, ErrMissingPassword
	}
	return &req, nil
}

// decodeErrorKind describes a JSON decode failure without quoting input.
func decodeErrorKind(err error) string {
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntax):
		return fmt.Sprintf("syntax error at offset %d", syntax.Offset)
	case errors.As(err, &typ):
		return fmt.Sprintf("field %q has wrong type", typ.Field)
	default:
		return "unreadable body"
	}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, h.log, http.StatusOK, HealthResponse{Status: "healthy"})
}

// Info handles GET /api.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, h.log, http.StatusOK, InfoResponse{
		Message: "Password Strength Checker API",
		Version: h.version,
		Endpoints: map[string]string{
			"POST /check_password": "Check password strength",
			"GET /health":          "Health check",
			"GET /api":             "API information",
		},
	})
}
