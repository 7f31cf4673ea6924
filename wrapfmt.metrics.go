package wrapfmt

import (
	"errors"
	"time"

	"github.com/itsatony/go-wrapfmt/internal"
	"github.com/prometheus/client_golang/prometheus"
)

// formatMetrics counts placeholder outcomes and format calls
type formatMetrics struct {
	placeholders *prometheus.CounterVec
	formats      *prometheus.CounterVec
	duration     prometheus.Histogram
}

func newFormatMetrics(reg prometheus.Registerer) (*formatMetrics, error) {
	placeholders, err := registerCollector(reg, MetricPlaceholdersTotal, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      MetricPlaceholdersTotal,
			Help:      "Placeholders rendered, by wrapper kind and outcome",
		},
		[]string{MetricLabelKind, MetricLabelOutcome},
	))
	if err != nil {
		return nil, err
	}

	formats, err := registerCollector(reg, MetricFormatsTotal, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Name:      MetricFormatsTotal,
			Help:      "Format calls, by result",
		},
		[]string{MetricLabelResult},
	))
	if err != nil {
		return nil, err
	}

	duration, err := registerCollector(reg, MetricFormatDuration, prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: MetricsNamespace,
			Name:      MetricFormatDuration,
			Help:      "Format call duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	))
	if err != nil {
		return nil, err
	}

	return &formatMetrics{
		placeholders: placeholders,
		formats:      formats,
		duration:     duration,
	}, nil
}

// registerCollector registers c, reusing an identical collector that is
// already registered
func registerCollector[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, NewMetricsRegistrationError(name, err)
	}
	return c, nil
}

// ObserveItem implements internal.Observer.
func (m *formatMetrics) ObserveItem(item *internal.ItemNode, _ string, outcome internal.Outcome, _ string, _ error) {
	m.placeholders.WithLabelValues(item.Wrapper.String(), outcome.String()).Inc()
}

func (m *formatMetrics) observeFormat(d time.Duration, err error) {
	result := MetricResultOK
	if err != nil {
		result = MetricResultError
	}
	m.formats.WithLabelValues(result).Inc()
	m.duration.Observe(d.Seconds())
}
