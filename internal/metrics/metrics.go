// Package metrics holds the Prometheus collectors of the placement service.
// Collectors are registered on the default registry and exposed by the
// HTTP adapter at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"erogram-ads/internal/core/domain"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	PlacementLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_placement_lookups_total",
			Help: "Placement lookups by kind and result (hit, empty, error)",
		},
		[]string{"kind", "result"},
	)

	ClicksRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_clicks_recorded_total",
			Help: "Clicks recorded by placement label",
		},
		[]string{"placement"},
	)

	ClickFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ads_click_failures_total",
			Help: "Clicks that could not be recorded",
		},
	)

	TierAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_tier_assignments_total",
			Help: "Tier assignment writes by slot and outcome (assigned, archived, failed)",
		},
		[]string{"slot", "outcome"},
	)

	TierRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ads_tier_run_duration_seconds",
			Help:    "Duration of complete tier assignment runs",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordLookup counts a placement lookup. A lookup that returned n items
// is a hit when n > 0.
func RecordLookup(kind string, n int, err error) {
	switch {
	case err != nil:
		PlacementLookups.WithLabelValues(kind, "error").Inc()
	case n == 0:
		PlacementLookups.WithLabelValues(kind, "empty").Inc()
	default:
		PlacementLookups.WithLabelValues(kind, "hit").Inc()
	}
}

// RecordClick counts a recorded click or a failure. Placement labels that
// are not slot names are folded into "other" to bound label cardinality.
func RecordClick(placement string, err error) {
	if err != nil {
		ClickFailures.Inc()
		return
	}
	if !domain.Slot(placement).Valid() {
		placement = "other"
	}
	ClicksRecorded.WithLabelValues(placement).Inc()
}

// RecordHTTPRequest observes the duration of a completed request.
func RecordHTTPRequest(method, route, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
