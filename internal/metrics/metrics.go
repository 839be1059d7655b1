// Package metrics: метрики Prometheus сервиса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics живут в собственном реестре, чтобы NewMetrics можно было вызывать в тестах многократно.
type Metrics struct {
	Registry *prometheus.Registry

	httpDuration  *prometheus.HistogramVec
	rankRequests  *prometheus.CounterVec
	rankDuration  prometheus.Histogram
	rankFlags     *prometheus.CounterVec
	ruleCache     *prometheus.CounterVec
	recordedTotal *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rewards_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		rankRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_rank_requests_total",
				Help: "Ranking requests by outcome.",
			},
			[]string{"outcome"},
		),
		rankDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rewards_rank_duration_seconds",
				Help:    "Time spent ranking cards for one purchase.",
				Buckets: prometheus.DefBuckets,
			},
		),
		rankFlags: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_rank_results_total",
				Help: "Per-card ranking results by calculation flag.",
			},
			[]string{"flag"},
		),
		ruleCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_rule_cache_lookups_total",
				Help: "Rule cache lookups by result.",
			},
			[]string{"result"},
		),
		recordedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rewards_transactions_recorded_total",
				Help: "Recorded purchases by calculation flag.",
			},
			[]string{"flag"},
		),
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveRank: outcome: ok, validation, not_found, data_integrity, transient, error.
func (m *Metrics) ObserveRank(outcome string, d time.Duration) {
	m.rankRequests.WithLabelValues(outcome).Inc()
	m.rankDuration.Observe(d.Seconds())
}

func (m *Metrics) IncrFlag(flag string) {
	m.rankFlags.WithLabelValues(flag).Inc()
}

func (m *Metrics) IncrRuleCacheHit() {
	m.ruleCache.WithLabelValues("hit").Inc()
}

func (m *Metrics) IncrRuleCacheMiss() {
	m.ruleCache.WithLabelValues("miss").Inc()
}

func (m *Metrics) IncrRecorded(flag string) {
	m.recordedTotal.WithLabelValues(flag).Inc()
}
