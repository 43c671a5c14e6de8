package http

import (
	nethttp "net/http"

	"github.com/rs/cors"

	"github.com/mpl-id/mpl-chat-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. A non-nil static handler
// serves the chat widget from "/".
func NewRouter(handler *handlers.Handler, static nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/api/chat", handler.Chat)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	if static != nil {
		mux.Handle("/", static)
	}
	return mux
}

// StaticHandler serves files from dir, or returns nil when dir is empty.
func StaticHandler(dir string) nethttp.Handler {
	if dir == "" {
		return nil
	}
	return nethttp.FileServer(nethttp.Dir(dir))
}

// WithCORS lets browsers on the listed origins call the API.
func WithCORS(origins []string, next nethttp.Handler) nethttp.Handler {
	if len(origins) == 0 {
		return next
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			nethttp.MethodGet,
			nethttp.MethodPost,
		},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(next)
}
