package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"erogram-ads/internal/auth"
	"erogram-ads/internal/core/port"
)

// TokenVerifier validates admin bearer tokens.
type TokenVerifier interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Services bundles the use cases served over HTTP.
type Services struct {
	Placements port.PlacementUseCase
	Clicks     port.ClickUseCase
	Admin      port.AdminUseCase
	Tiers      port.TierUseCase
}

// Options tunes the router.
type Options struct {
	// ClickRateLimit is the per-IP limit of click requests per minute.
	// Zero disables the limit.
	ClickRateLimit int
	// Tokens verifies admin tokens. When nil every admin request is
	// rejected.
	Tokens TokenVerifier
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Public placement routes never fail because of storage errors; admin
// routes under /api/v1/admin share one authentication middleware and
// report failures as HTTP errors.
type Handler struct {
	svc    Services
	tokens TokenVerifier
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, tokens: opts.Tokens, logger: logger}
	r := chi.NewRouter()
	r.Use(requestID, middleware.Recoverer, observe)

	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/placements/cta/{slot}", h.handleCTA)
		r.Get("/placements/banner/{slot}", h.handleBanner)
		r.Get("/placements/feed/preview", h.handleFeedPreview)
		r.Get("/placements/feed/{slot}", h.handleFeed)
		r.Post("/impressions", h.handleImpressions)

		r.Group(func(r chi.Router) {
			if opts.ClickRateLimit > 0 {
				r.Use(httprate.LimitByIP(opts.ClickRateLimit, time.Minute))
			}
			r.Post("/clicks", h.handleTrackClick)
			r.Get("/campaigns/{id}/click", h.handleClickRedirect)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Get("/campaigns/{id}/stats", h.handleCampaignStats)
			r.Get("/advertisers", h.handleListAdvertisers)
			r.Post("/advertisers", h.handleCreateAdvertiser)
			r.Post("/advertisers/{id}/deactivate", h.handleDeactivateAdvertiser)
			r.Post("/tiers/run", h.handleRunTiers)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
