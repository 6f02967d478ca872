package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"erogram-ads/internal/core/port"
)

// handleCTA returns the campaign of a text-only slot, or 204 when the slot
// is empty.
func (h *Handler) handleCTA(w http.ResponseWriter, r *http.Request) {
	c := h.svc.Placements.GetSingleSlotCampaign(r.Context(), chi.URLParam(r, "slot"))
	if c == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleBanner(w http.ResponseWriter, r *http.Request) {
	banners := h.svc.Placements.GetBannerCampaigns(r.Context(), chi.URLParam(r, "slot"))
	if banners == nil {
		banners = []port.BannerCampaign{}
	}
	writeJSON(w, http.StatusOK, banners)
}

func (h *Handler) handleFeedPreview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Placements.GetFeedPreview(r.Context()))
}

func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Placements.GetFeed(r.Context(), chi.URLParam(r, "slot"))
	if items == nil {
		items = []port.FeedItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// handleImpressions counts the campaigns a client rendered. Counting is
// best effort and always answers 204 for a well-formed request.
func (h *Handler) handleImpressions(w http.ResponseWriter, r *http.Request) {
	var req impressionsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	ids := make([]uuid.UUID, 0, len(req.CampaignIDs))
	for _, s := range req.CampaignIDs {
		ids = append(ids, uuid.MustParse(s))
	}
	h.svc.Placements.RecordImpressions(r.Context(), ids)
	w.WriteHeader(http.StatusNoContent)
}
