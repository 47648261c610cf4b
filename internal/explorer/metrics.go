package explorer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tzscout/tzscout/internal/promreg"
)

var staleResultsDropped = promreg.Auto().NewCounter(prometheus.CounterOpts{
	Name: "tzscout_stale_results_dropped_total",
	Help: "Number of load results discarded because a newer call superseded them",
})

var loadFailures = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "tzscout_load_failures_total",
	Help: "Number of store loads that settled with an error",
}, []string{"load"})
