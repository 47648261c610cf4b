package tzkt

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tzscout/tzscout/internal/promreg"
)

var apiRequests = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_api_requests_total",
	Help: "Number of requests issued against the indexing API",
})

var apiRequestFailures = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_api_request_failures_total",
	Help: "Number of indexing API requests that settled with an error",
})
