package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the Prometheus instruments used by the service.
type Metrics struct {
	registry *prometheus.Registry

	ChatRequests *prometheus.CounterVec
	MatchScore   prometheus.Histogram
	Suggestions  *prometheus.HistogramVec
	CorpusSize   prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		ChatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat requests by outcome.",
		}, []string{"outcome"}),
		MatchScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_match_score",
			Help:      "Score of the winning FAQ record for matched queries.",
			Buckets:   []float64{1, 2, 3, 5, 8, 10, 13, 17, 25},
		}),
		Suggestions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_suggestions",
			Help:      "Number of suggested questions returned per reply.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		}, []string{"outcome"}),
		CorpusSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "faq_corpus_records",
			Help:      "Number of records in the loaded FAQ corpus.",
		}),
	}
	reg.MustRegister(m.ChatRequests, m.MatchScore, m.Suggestions, m.CorpusSize)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
