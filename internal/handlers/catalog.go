package handlers

import (
	"net/http"

	"github.com/fabworks-cad/fastener-resolver/internal/models"
	"github.com/fabworks-cad/fastener-resolver/internal/sizes"
)

// HandleCatalog gives the frontend enough to build dropdowns: the supported
// families/standards, example payloads and every globally valid size token.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pairs := make([]map[string]string, 0, len(models.SupportedPairs))
	for _, pair := range models.SupportedPairs {
		pairs = append(pairs, map[string]string{
			"family":        string(pair.Family),
			"fastener_type": string(pair.Standard),
		})
	}

	h.writeJSON(w, map[string]any{
		"families":    pairs,
		"valid_sizes": h.index.AllSorted(),
		"examples": map[string]any{
			"nut":   map[string]any{"family": "HexNut", "fastener_type": "iso4032", "size": sizes.DefaultSize},
			"screw": map[string]any{"family": "SocketHeadCapScrew", "fastener_type": "iso4762", "size": sizes.DefaultSize, "length_mm": sizes.DefaultLengthMm},
		},
		"vendor_parts": h.catalog.Get().Len(),
	})
}
