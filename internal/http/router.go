package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/badminton-draw-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/categories", handler.Categories)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/draws", handler.Draws)
	mux.HandleFunc("/api/verify-recaptcha", handler.VerifyRecaptcha)
	return mux
}
