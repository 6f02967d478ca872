package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"erogram-ads/internal/core/port"
)

type clickResponse struct {
	Success bool `json:"success"`
}

// handleTrackClick records a click reported by the client. A malformed
// request gets 400. Otherwise the answer is 200 and success tells whether
// the click was stored; the client does not retry.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	var req trackClickRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	id := uuid.MustParse(req.CampaignID)
	if id == uuid.Nil {
		writeError(w, http.StatusBadRequest, port.ErrMissingCampaignID.Error())
		return
	}
	if err := h.svc.Clicks.TrackClick(r.Context(), id, req.Placement); err != nil {
		level := slog.LevelError
		if errors.Is(err, port.ErrCampaignNotFound) {
			level = slog.LevelWarn
		}
		h.logger.Log(r.Context(), level, "track click error",
			slog.String("campaign_id", id.String()),
			slog.String("placement", req.Placement),
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Any("error", err))
		writeJSON(w, http.StatusOK, clickResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, clickResponse{Success: true})
}

// handleClickRedirect records a click and redirects to the campaign's
// destination. Invalid ids result in 400 and unknown campaigns in 404.
// Internal errors are logged and treated as 404 to avoid leaking
// information.
func (h *Handler) handleClickRedirect(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	dest, err := h.svc.Clicks.RegisterClick(r.Context(), id, r.URL.Query().Get("placement"))
	if err != nil {
		if !errors.Is(err, port.ErrCampaignNotFound) {
			h.logger.Error("click error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, dest, http.StatusFound)
}
