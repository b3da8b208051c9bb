package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
	"github.com/fabworks-cad/fastener-resolver/internal/resolver"
	"github.com/fabworks-cad/fastener-resolver/internal/sizes"
)

type Handler struct {
	resolver *resolver.Resolver
	index    *sizes.Index
	catalog  *mcmaster.Store
}

func New(res *resolver.Resolver, index *sizes.Index, catalog *mcmaster.Store) *Handler {
	return &Handler{
		resolver: res,
		index:    index,
		catalog:  catalog,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// WithCORS opens the API to browser frontends served from other origins.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
