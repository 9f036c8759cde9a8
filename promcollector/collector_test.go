package promcollector

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/countvec"
)

var _ countvec.MetricsCollector = (*Collector)(nil)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := New(reg, "test")
	require.NoError(t, err)

	_, err = countvec.New(0, 1, 0, countvec.WithMetricsCollector(mc))
	require.Error(t, err)

	v, err := countvec.New(20, 1, 1, countvec.WithMetricsCollector(mc))
	require.NoError(t, err)

	v.IncrementRange(2, 4, 3.3)
	v.IncrementRange(200, 4, 3.3)
	v.MultiplyRange(3, 5, 3.3)
	v.PackInt(1, 20)
	v.PackDouble(0, 20)

	var buf bytes.Buffer
	_, err = v.WriteDoubles(t.Context(), &buf, 1, 4)
	require.NoError(t, err)

	assert.Equal(t, 1.0, promtest.ToFloat64(mc.creates.WithLabelValues(statusOK)))
	assert.Equal(t, 1.0, promtest.ToFloat64(mc.creates.WithLabelValues(statusError)))
	assert.Equal(t, 160.0, promtest.ToFloat64(mc.liveBytes))
	assert.Equal(t, 1.0, promtest.ToFloat64(mc.mutations.WithLabelValues(countvec.OpIncrement, statusOK)))
	assert.Equal(t, 1.0, promtest.ToFloat64(mc.mutations.WithLabelValues(countvec.OpIncrement, statusRejected)))
	assert.Equal(t, 1.0, promtest.ToFloat64(mc.mutations.WithLabelValues(countvec.OpMultiply, statusOK)))
	assert.Equal(t, 3.0, promtest.ToFloat64(mc.elements.WithLabelValues(countvec.OpIncrement)))
	assert.Equal(t, 3.0, promtest.ToFloat64(mc.elements.WithLabelValues(countvec.OpMultiply)))
	assert.Equal(t, 20.0, promtest.ToFloat64(mc.elements.WithLabelValues(countvec.OpPackInt)))
	assert.Equal(t, 1.0, promtest.ToFloat64(mc.packs.WithLabelValues(countvec.OpPackDouble, statusRejected)))
	assert.Equal(t, 32.0, promtest.ToFloat64(mc.writtenBytes))
	assert.Equal(t, 1, promtest.CollectAndCount(mc.writeLatency))

	require.NoError(t, v.Close())
	assert.Equal(t, 1.0, promtest.ToFloat64(mc.closes))
	assert.Equal(t, 0.0, promtest.ToFloat64(mc.liveBytes))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, "dup")
	require.NoError(t, err)

	_, err = New(reg, "dup")
	var are prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &are)
}
