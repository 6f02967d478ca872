package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
)

// handleCampaignStats returns rolling click counts of one campaign.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	stats, err := h.svc.Admin.CampaignStats(r.Context(), id)
	if err != nil {
		h.adminError(w, r, "campaign stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleRunTiers runs tier assignment synchronously and returns its
// report. A run already in progress elsewhere results in 409. The run is
// detached from the request so a client disconnect cannot stop it half way.
func (h *Handler) handleRunTiers(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Tiers.Run(context.WithoutCancel(r.Context()))
	if err != nil {
		h.adminError(w, r, "tier run", err)
		return
	}
	h.logger.Info("tier run triggered",
		slog.String("operator", operatorFrom(r.Context())),
		slog.Time("started_at", report.StartedAt))
	writeJSON(w, http.StatusOK, report)
}
