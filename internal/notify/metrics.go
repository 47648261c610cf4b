package notify

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tzscout/tzscout/internal/promreg"
)

var publishedNotifications = promreg.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "tzscout_notifications_total",
	Help: "Number of notifications published to the global sink",
}, []string{"severity"})
