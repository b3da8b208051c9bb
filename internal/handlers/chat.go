package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fabworks-cad/fastener-resolver/internal/assemble"
	"github.com/fabworks-cad/fastener-resolver/internal/mcmaster"
)

// HandleChat resolves one free-text fastener request.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(request.Message) == "" {
		h.writeError(w, "message is required", http.StatusBadRequest)
		return
	}

	res := h.resolver.Resolve(request.Message)
	items, lookupWarnings := mcmaster.ResolveItems(res.Items, h.catalog.Get())
	warnings := append(res.Warnings, lookupWarnings...)

	h.writeJSON(w, assemble.Build(res, items, warnings, h.index.AllSorted()))
}
