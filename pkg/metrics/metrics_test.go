package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, c.Write(&metric))
	return metric.GetCounter().GetValue()
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "test")

	m.IncQuote("forced")
	m.IncQuote("forced")
	m.IncBooking("created")
	m.IncNotification("staff", nil)
	m.IncNotification("guest", errors.New("smtp down"))

	assert.Equal(t, 2.0, counterValue(t, m.quotesTotal.WithLabelValues("test", "forced")))
	assert.Equal(t, 1.0, counterValue(t, m.bookingsTotal.WithLabelValues("test", "created")))
	assert.Equal(t, 1.0, counterValue(t, m.notificationsSent.WithLabelValues("test", "guest", "failed")))
}

func TestMetrics_DBQueryErrorsIgnoreNoRows(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "test")

	m.ObserveDBQuery("query_row", time.Millisecond, sql.ErrNoRows)
	m.ObserveDBQuery("exec", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 0.0, counterValue(t, m.dbQueryErrors.WithLabelValues("test", "query_row")))
	assert.Equal(t, 1.0, counterValue(t, m.dbQueryErrors.WithLabelValues("test", "exec")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncQuote("choice")
		m.IncBooking("created")
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.SetDBPoolStats(sql.DBStats{})
	})
}
