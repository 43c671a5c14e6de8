package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"github.com/mpl-id/mpl-chat-service/internal/chat"
	"github.com/mpl-id/mpl-chat-service/internal/domain"
	"github.com/mpl-id/mpl-chat-service/internal/logging"
)

const (
	defaultMaxBodyBytes = 64 << 10
	msgMethodNotAllowed = "Method not allowed"
)

// Answerer turns a raw chat message into an answer.
type Answerer interface {
	Answer(ctx context.Context, raw string) chat.Result
}

// Handler wires HTTP routes to the chat engine.
type Handler struct {
	engine   Answerer
	logger   *slog.Logger
	readyFn  func() bool
	maxBytes int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithReadyFunc reports readiness; without it the handler is always ready.
func WithReadyFunc(fn func() bool) Option {
	return func(h *Handler) {
		h.readyFn = fn
	}
}

// WithMaxBodyBytes caps chat request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBytes = n
		}
	}
}

// NewHandler constructs a Handler with defaults.
func NewHandler(engine Answerer, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		engine:   engine,
		logger:   logger,
		maxBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/api/chat":
		h.Chat(w, r)
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Chat answers {message} with {answer}. Every accepted request gets a 200;
// only the method is ever rejected.
func (h *Handler) Chat(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		w.Header().Set("Allow", nethttp.MethodPost)
		writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]string{"error": msgMethodNotAllowed}, h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)

	var req domain.ChatRequest
	body := nethttp.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		// An unreadable body is answered as an empty message.
		logging.Warn(logger, "invalid chat request body", "error", err)
		req = domain.ChatRequest{}
	}

	res := h.engine.Answer(logging.WithLogger(r.Context(), logger), req.Message)
	writeJSON(w, nethttp.StatusOK, domain.ChatResponse{Answer: res.Answer}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil && !h.readyFn() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
