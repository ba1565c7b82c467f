package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	httpDurationHistogram *prometheus.HistogramVec
	tripTransitionCounter *prometheus.CounterVec
	ledgerPostingCounter  *prometheus.CounterVec
	routeLookupCounter    *prometheus.CounterVec
	auditEventCounter     *prometheus.CounterVec
	pendingExpiredCounter prometheus.Counter
)

// Init registers all Prometheus collectors.
func Init() {
	registerOnce.Do(func() {
		httpDurationHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"})

		tripTransitionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trip_transitions_total",
			Help: "Trip request state changes by target state",
		}, []string{"status"})

		ledgerPostingCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_postings_total",
			Help: "Ledger postings by transaction type and outcome",
		}, []string{"type", "result"})

		routeLookupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "route_lookups_total",
			Help: "Routing estimate lookups by source",
		}, []string{"source"})

		auditEventCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "audit_events_total",
			Help: "Admin audit events by outcome",
		}, []string{"outcome"})

		pendingExpiredCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pending_reservations_expired_total",
			Help: "Pending reservations released by the reaper",
		})

		prometheus.MustRegister(
			httpDurationHistogram,
			tripTransitionCounter,
			ledgerPostingCounter,
			routeLookupCounter,
			auditEventCounter,
			pendingExpiredCounter,
		)
	})
}

func ObserveHTTP(method, path string, status int, duration time.Duration) {
	if httpDurationHistogram == nil {
		return
	}
	httpDurationHistogram.WithLabelValues(method, path, strconv.Itoa(status)).Observe(duration.Seconds())
}

func IncrementTripTransition(status string) {
	if tripTransitionCounter == nil {
		return
	}
	tripTransitionCounter.WithLabelValues(status).Inc()
}

func IncrementLedgerPosting(txType, result string) {
	if ledgerPostingCounter == nil {
		return
	}
	ledgerPostingCounter.WithLabelValues(txType, result).Inc()
}

func IncrementRouteLookup(source string) {
	if routeLookupCounter == nil {
		return
	}
	routeLookupCounter.WithLabelValues(source).Inc()
}

func IncrementAuditEvent(outcome string) {
	if auditEventCounter == nil {
		return
	}
	auditEventCounter.WithLabelValues(outcome).Inc()
}

func AddPendingExpired(n int) {
	if pendingExpiredCounter == nil {
		return
	}
	pendingExpiredCounter.Add(float64(n))
}
