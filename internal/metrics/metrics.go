// Package metrics exposes Prometheus counters for the digest service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wgomg/sumario/internal/config"
)

type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	digests    *prometheus.CounterVec
	cache      *prometheus.CounterVec
	highlights *prometheus.CounterVec
}

// New registers the collectors on a private registry so tests can create as many
// instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sumario",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		digests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sumario",
			Name:      "digests_total",
			Help:      "Digests produced by mode and whether the hosted model failed over.",
		}, []string{"mode", "fallback"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sumario",
			Name:      "digest_cache_lookups_total",
			Help:      "Digest cache lookups by result.",
		}, []string{"result"}),
		highlights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sumario",
			Name:      "highlights_total",
			Help:      "Highlight requests by whether the body changed.",
		}, []string{"changed"}),
	}

	m.registry.MustRegister(m.requests, m.digests, m.cache, m.highlights)
	return m
}

func (m *Metrics) ObserveDigest(mode config.Mode, fallback bool) {
	m.digests.WithLabelValues(string(mode), strconv.FormatBool(fallback)).Inc()
}

func (m *Metrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cache.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHighlight(changed bool) {
	m.highlights.WithLabelValues(strconv.FormatBool(changed)).Inc()
}

func (m *Metrics) ObserveRequest(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
