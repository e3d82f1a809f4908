package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chainledger/internal/core/port"
)

const defaultPageSize = 10

// handleListCampaigns returns a page of campaigns. Optional `limit`
// (default 10), `offset` (default 0) and `order` (asc or desc) query
// parameters select the page. Invalid parameters result in HTTP 400; a
// failure to read the ledger count produces HTTP 502.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.svc.ListCampaigns(r.Context(), params)
	switch {
	case errors.Is(err, port.ErrInvalidLimit), errors.Is(err, port.ErrInvalidOffset):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "ledger unavailable", http.StatusBadGateway)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func parseListParams(r *http.Request) (port.ListParams, error) {
	q := r.URL.Query()
	params := port.ListParams{Limit: defaultPageSize, Order: port.OrderAsc}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.New("invalid 'limit'")
		}
		params.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.New("invalid 'offset'")
		}
		params.Offset = n
	}
	switch order := port.Order(q.Get("order")); order {
	case "":
	case port.OrderAsc, port.OrderDesc:
		params.Order = order
	default:
		return params, errors.New("invalid 'order', want asc or desc")
	}
	return params, nil
}

// handleGetCampaign returns one campaign by ledger index, or HTTP 404 when it
// cannot be read.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	campaign := h.svc.GetCampaign(r.Context(), id)
	if campaign == nil {
		http.Error(w, "campaign not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, campaign)
}
