// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes recorded by RecordFetchAttempt
const (
	FetchOutcomeSuccess        = "success"
	FetchOutcomeTransportError = "transport_error"
	FetchOutcomeBadStatus      = "bad_status"
)

// MetricsCollector is used by the retrieval layer and the services
type MetricsCollector interface {
	RecordFetchAttempt(outcome string)
	RecordCacheLookup(hit bool)
	RecordEvaluation(questionType string, correct bool)
	RecordDelightFactor(factorType string)
	RecordRejectedQuestions(category string, count int)
}

// Collector is the Prometheus implementation of MetricsCollector
type Collector struct {
	fetchAttempts     *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
	evaluations       *prometheus.CounterVec
	delightFactors    *prometheus.CounterVec
	rejectedQuestions *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fetchAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "question_delivery_fetch_attempts_total",
			Help: "Fetch attempts made by the retrying fetcher, by outcome",
		}, []string{"outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "question_delivery_cache_lookups_total",
			Help: "TTL cache lookups, by result",
		}, []string{"result"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "question_delivery_evaluations_total",
			Help: "Evaluated responses, by question type and correctness",
		}, []string{"question_type", "correct"}),
		delightFactors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "question_delivery_delight_factors_total",
			Help: "Delight factors selected, by type",
		}, []string{"type"}),
		rejectedQuestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "question_delivery_rejected_questions_total",
			Help: "Questions dropped from batches because their configuration is invalid",
		}, []string{"category"}),
	}

	reg.MustRegister(
		c.fetchAttempts,
		c.cacheLookups,
		c.evaluations,
		c.delightFactors,
		c.rejectedQuestions,
	)

	return c
}

func (c *Collector) RecordFetchAttempt(outcome string) {
	c.fetchAttempts.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(result).Inc()
}

func (c *Collector) RecordEvaluation(questionType string, correct bool) {
	c.evaluations.WithLabelValues(questionType, strconv.FormatBool(correct)).Inc()
}

func (c *Collector) RecordDelightFactor(factorType string) {
	c.delightFactors.WithLabelValues(factorType).Inc()
}

func (c *Collector) RecordRejectedQuestions(category string, count int) {
	if count <= 0 {
		return
	}
	c.rejectedQuestions.WithLabelValues(category).Add(float64(count))
}

// Handler serves the metrics gathered by g
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type noopCollector struct{}

// Noop returns a collector that discards everything
func Noop() MetricsCollector {
	return noopCollector{}
}

func (noopCollector) RecordFetchAttempt(string)           {}
func (noopCollector) RecordCacheLookup(bool)              {}
func (noopCollector) RecordEvaluation(string, bool)       {}
func (noopCollector) RecordDelightFactor(string)          {}
func (noopCollector) RecordRejectedQuestions(string, int) {}
