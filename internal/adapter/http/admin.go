package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"erogram-ads/internal/core/domain"
	"erogram-ads/internal/core/port"
)

// adminError maps use case errors to HTTP statuses. Unexpected errors are
// logged and reported as 500.
func (h *Handler) adminError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrAdvertiserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidCampaign):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrAssignmentRunning):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.String("operator", operatorFrom(r.Context())),
			slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// handleListCampaigns lists campaigns, optionally filtered by the slot and
// status query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.CampaignFilter{
		Slot:   domain.Slot(q.Get("slot")),
		Status: domain.Status(q.Get("status")),
	}
	if f.Slot != "" && !f.Slot.Valid() {
		writeError(w, http.StatusBadRequest, "unknown slot")
		return
	}
	if f.Status != "" && !f.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}
	campaigns, err := h.svc.Admin.ListCampaigns(r.Context(), f)
	if err != nil {
		h.adminError(w, r, "list campaigns", err)
		return
	}
	views := make([]campaignView, 0, len(campaigns))
	for i := range campaigns {
		views = append(views, newCampaignView(&campaigns[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	c := req.toDomain()
	if err := h.svc.Admin.CreateCampaign(r.Context(), c); err != nil {
		if errors.Is(err, port.ErrAdvertiserNotFound) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.adminError(w, r, "create campaign", err)
		return
	}
	h.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("slot", c.Slot.String()),
		slog.String("operator", operatorFrom(r.Context())))
	writeJSON(w, http.StatusCreated, newCampaignView(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Admin.GetCampaign(r.Context(), id)
	if err != nil {
		h.adminError(w, r, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignView(c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req campaignPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	c, err := h.svc.Admin.UpdateCampaign(r.Context(), id, req.toPatch())
	if err != nil {
		h.adminError(w, r, "update campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignView(c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Admin.DeleteCampaign(r.Context(), id); err != nil {
		h.adminError(w, r, "delete campaign", err)
		return
	}
	h.logger.Info("campaign deleted",
		slog.String("campaign_id", id.String()),
		slog.String("operator", operatorFrom(r.Context())))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAdvertisers(w http.ResponseWriter, r *http.Request) {
	advertisers, err := h.svc.Admin.ListAdvertisers(r.Context())
	if err != nil {
		h.adminError(w, r, "list advertisers", err)
		return
	}
	views := make([]advertiserView, 0, len(advertisers))
	for i := range advertisers {
		views = append(views, newAdvertiserView(&advertisers[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleCreateAdvertiser(w http.ResponseWriter, r *http.Request) {
	var req advertiserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	a, err := h.svc.Admin.CreateAdvertiser(r.Context(), req.Name)
	if err != nil {
		h.adminError(w, r, "create advertiser", err)
		return
	}
	writeJSON(w, http.StatusCreated, newAdvertiserView(a))
}

func (h *Handler) handleDeactivateAdvertiser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Admin.DeactivateAdvertiser(r.Context(), id); err != nil {
		h.adminError(w, r, "deactivate advertiser", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
