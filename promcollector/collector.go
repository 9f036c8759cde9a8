// Package promcollector exports countvec metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := promcollector.New(reg, "host")
//	if err != nil {
//	    return err
//	}
//	v, err := countvec.New(1024, 1, 0, countvec.WithMetricsCollector(mc))
package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusOK       = "ok"
	statusRejected = "rejected"
	statusError    = "error"
)

// Collector implements countvec.MetricsCollector on top of Prometheus
// metric vectors. It is safe for concurrent use.
type Collector struct {
	creates      *prometheus.CounterVec
	closes       prometheus.Counter
	liveBytes    prometheus.Gauge
	mutations    *prometheus.CounterVec
	packs        *prometheus.CounterVec
	elements     *prometheus.CounterVec
	writtenBytes prometheus.Counter
	writeLatency *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		creates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countvec_creates_total",
			Help:      "Vector construction attempts",
		}, []string{"status"}),
		closes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countvec_closes_total",
			Help:      "Vectors released",
		}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "countvec_live_bytes",
			Help:      "Storage held by open vectors",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countvec_mutations_total",
			Help:      "Range mutation calls",
		}, []string{"op", "status"}),
		packs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countvec_packs_total",
			Help:      "Range pack calls",
		}, []string{"op", "status"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countvec_elements_total",
			Help:      "Slots touched by successful mutations and packs",
		}, []string{"op"}),
		writtenBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "countvec_written_bytes_total",
			Help:      "Bytes streamed by range writers",
		}),
		writeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "countvec_write_duration_seconds",
			Help:      "Latency of streamed range writes",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}

	for _, m := range []prometheus.Collector{
		c.creates, c.closes, c.liveBytes, c.mutations,
		c.packs, c.elements, c.writtenBytes, c.writeLatency,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func okStatus(ok bool) string {
	if ok {
		return statusOK
	}
	return statusRejected
}

func errStatus(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}

func (c *Collector) RecordCreate(bytes int64, err error) {
	c.creates.WithLabelValues(errStatus(err)).Inc()
	if err == nil {
		c.liveBytes.Add(float64(bytes))
	}
}

func (c *Collector) RecordClose(bytes int64) {
	c.closes.Inc()
	c.liveBytes.Sub(float64(bytes))
}

func (c *Collector) RecordMutation(op string, elements int, ok bool) {
	c.mutations.WithLabelValues(op, okStatus(ok)).Inc()
	if ok {
		c.elements.WithLabelValues(op).Add(float64(elements))
	}
}

func (c *Collector) RecordPack(op string, elements int, ok bool) {
	c.packs.WithLabelValues(op, okStatus(ok)).Inc()
	if ok {
		c.elements.WithLabelValues(op).Add(float64(elements))
	}
}

func (c *Collector) RecordWrite(bytes int64, duration time.Duration, err error) {
	c.writtenBytes.Add(float64(bytes))
	c.writeLatency.WithLabelValues(errStatus(err)).Observe(duration.Seconds())
}
