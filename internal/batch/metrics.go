package batch

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics exposes Prometheus collectors that report decode activity.
type Metrics struct {
	decodes     *prometheus.CounterVec
	inputBytes  prometheus.Counter
	outputBytes prometheus.Counter
	duration    prometheus.Histogram
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Collectors already registered under the same names are reused; any other
// registration error panics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		decodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "phonepad",
				Subsystem: "decode",
				Name:      "total",
				Help:      "Number of inputs decoded, by status.",
			},
			[]string{"status"},
		),
		inputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "phonepad",
			Subsystem: "decode",
			Name:      "input_bytes_total",
			Help:      "Key-press bytes consumed.",
		}),
		outputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "phonepad",
			Subsystem: "decode",
			Name:      "output_bytes_total",
			Help:      "Decoded text bytes produced.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "phonepad",
			Subsystem: "decode",
			Name:      "duration_seconds",
			Help:      "Time spent decoding a single input.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		}),
	}

	m.decodes = register(reg, m.decodes)
	m.inputBytes = register(reg, m.inputBytes)
	m.outputBytes = register(reg, m.outputBytes)
	m.duration = register(reg, m.duration)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Observe records one decoded input.
func (m *Metrics) Observe(res Result) {
	if m == nil {
		return
	}
	status := "ok"
	if res.Err != nil {
		status = "error"
	}
	m.decodes.WithLabelValues(status).Inc()
	m.inputBytes.Add(float64(len(res.Input)))
	m.outputBytes.Add(float64(len(res.Output)))
	m.duration.Observe(res.Duration.Seconds())
}

// WriteText writes every metric family from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
