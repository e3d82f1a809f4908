package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"chainledger/internal/core/domain"
	"chainledger/internal/core/port"
)

const maxMetadataBody = 1 << 20

type publishResponse struct {
	CID string `json:"cid"`
}

// handlePublishMetadata pins the metadata document in the request body and
// answers 201 with its content identifier. Malformed or invalid documents
// produce HTTP 400, a missing publisher HTTP 503 and a pinning failure
// HTTP 502.
func (h *Handler) handlePublishMetadata(w http.ResponseWriter, r *http.Request) {
	var meta domain.CampaignMetadata
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMetadataBody)).Decode(&meta); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	cid, err := h.svc.PublishMetadata(r.Context(), meta)
	switch {
	case errors.Is(err, port.ErrInvalidMetadata):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, port.ErrPublishingDisabled):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.Error("publish metadata error", slog.Any("error", err))
		http.Error(w, "publishing failed", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, http.StatusCreated, publishResponse{CID: cid})
}
