package bookstat

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCollectorRegistersAndObserves(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "XYZ")

	c.ObserveSubmit(true)
	c.ObserveSubmit(false)
	c.ObserveTrade()
	c.ObserveCancel()
	c.ObserveModify()
	stop := c.Timer()
	stop()

	metrics, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metrics)
}
