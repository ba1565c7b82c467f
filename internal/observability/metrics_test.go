package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}

func TestCounters(t *testing.T) {
	Init()

	IncrementTripTransition("ACCEPTED")
	IncrementTripTransition("ACCEPTED")
	assert.Equal(t, 2.0, testutil.ToFloat64(tripTransitionCounter.WithLabelValues("ACCEPTED")))

	IncrementLedgerPosting("RECHARGE", "ok")
	assert.Equal(t, 1.0, testutil.ToFloat64(ledgerPostingCounter.WithLabelValues("RECHARGE", "ok")))

	AddPendingExpired(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(pendingExpiredCounter))

	assert.NotPanics(t, func() {
		ObserveHTTP("GET", "/drivers/status", 200, 15*time.Millisecond)
		IncrementRouteLookup("cache")
		IncrementAuditEvent("stored")
	})
}
