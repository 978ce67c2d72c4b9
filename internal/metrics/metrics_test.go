package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSettlement(t *testing.T) {
	winsBefore := testutil.ToFloat64(settlements.WithLabelValues("win"))
	payoutBefore := testutil.ToFloat64(payouts)
	skippedBefore := testutil.ToFloat64(settlements.WithLabelValues("no-drawing-expected"))

	RecordSettlement(true, 100_000, "")
	RecordSettlement(false, 0, "no-drawing-expected")

	assert.Equal(t, winsBefore+1, testutil.ToFloat64(settlements.WithLabelValues("win")))
	assert.Equal(t, payoutBefore+100_000, testutil.ToFloat64(payouts))
	assert.Equal(t, skippedBefore+1, testutil.ToFloat64(settlements.WithLabelValues("no-drawing-expected")))
}

func TestRecordFetchAndBatch(t *testing.T) {
	before := testutil.ToFloat64(fetches.WithLabelValues("stored"))
	RecordFetch("stored", 0)
	assert.Equal(t, before+1, testutil.ToFloat64(fetches.WithLabelValues("stored")))

	runsBefore := testutil.ToFloat64(batchRuns.WithLabelValues("true"))
	RecordBatch(true)
	assert.Equal(t, runsBefore+1, testutil.ToFloat64(batchRuns.WithLabelValues("true")))
}

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/tickets/{ticketID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/tickets/{ticketID}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tickets/abc", http.NoBody))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/tickets/{ticketID}", "418")))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "xoso_http_requests_total"))
}
