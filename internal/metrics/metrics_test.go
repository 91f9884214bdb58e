package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordFetchAttempt(FetchOutcomeTransportError)
	c.RecordFetchAttempt(FetchOutcomeTransportError)
	c.RecordFetchAttempt(FetchOutcomeSuccess)
	c.RecordCacheLookup(true)
	c.RecordCacheLookup(false)
	c.RecordCacheLookup(false)
	c.RecordEvaluation("SLIDER", true)
	c.RecordDelightFactor("STATS")
	c.RecordRejectedQuestions("GOALS", 3)
	c.RecordRejectedQuestions("GOALS", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.fetchAttempts.WithLabelValues(FetchOutcomeTransportError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.fetchAttempts.WithLabelValues(FetchOutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.evaluations.WithLabelValues("SLIDER", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.delightFactors.WithLabelValues("STATS")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.rejectedQuestions.WithLabelValues("GOALS")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordDelightFactor("ANIMATION")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `question_delivery_delight_factors_total{type="ANIMATION"} 1`))
}

func TestNoop(t *testing.T) {
	c := Noop()
	assert.NotPanics(t, func() {
		c.RecordFetchAttempt(FetchOutcomeSuccess)
		c.RecordCacheLookup(true)
		c.RecordEvaluation("QUIZ", false)
		c.RecordDelightFactor("STATS")
		c.RecordRejectedQuestions("GENERAL", 1)
	})
}
