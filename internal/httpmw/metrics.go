package httpmw

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tzscout/tzscout/internal/promreg"
)

var inFlightRequests = promreg.Auto().NewGauge(prometheus.GaugeOpts{
	Name: "tzscout_in_flight_requests",
	Help: "Number of API requests currently in flight",
})

var cacheHits = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_response_cache_hits_total",
	Help: "Number of GET requests served from the response cache",
})

var cacheMisses = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_response_cache_misses_total",
	Help: "Number of GET requests that went through to the API",
})

var coalescedRequests = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_coalesced_requests_total",
	Help: "Number of GET requests that shared another caller's in-flight fetch",
})

var translatedErrors = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "tzscout_translated_errors_total",
	Help: "Number of requests translated to an API error",
}, []string{"category"})

var retriedRequests = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_retried_requests_total",
	Help: "Number of transport-level retries performed",
})
