package promreg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerServesRegisteredSeries(t *testing.T) {
	c := Auto().NewCounter(prometheus.CounterOpts{
		Name: "tzscout_registry_check_total",
		Help: "Counter registered by the registry test",
	})
	c.Add(3)

	families, err := Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "tzscout_registry_check_total" {
			found = true
		}
	}
	assert.True(t, found)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tzscout_registry_check_total 3")
}
