package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleStats returns dashboard totals over every campaign. A failure to
// read the ledger count produces HTTP 502.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "ledger unavailable", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
