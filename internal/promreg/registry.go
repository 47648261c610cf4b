// Package promreg owns the explorer's private metrics registry. Collectors
// register through Auto, and /metrics serves only the explorer's own series,
// never the default registry's process and Go collectors.
package promreg

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	auto     = promauto.With(registry)
)

// Auto returns the factory collectors register through.
func Auto() promauto.Factory {
	return auto
}

// Registry exposes the registry itself, for callers that gather directly.
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registered series over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
