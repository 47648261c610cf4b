package router

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tzscout/tzscout/internal/promreg"
)

var navigations = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "tzscout_navigations_total",
	Help: "Number of applied navigations by route kind",
}, []string{"kind"})
