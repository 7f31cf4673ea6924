package wrapfmt

import (
	"context"
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := MustNew(
		WithMetrics(reg),
		WithErrorStrategy(ErrorStrategyKeepRaw),
		WithResolvers(
			NewMapResolver(map[string]any{"a": "A"}),
			NewResolverFunc("failing", func(_ context.Context, item *Item) (string, bool, error) {
				if item.Text == "bad" {
					return "", false, errors.New("boom")
				}
				return "", false, nil
			}),
		),
	)

	_, err := f.Format(context.Background(), "{a} {a} {{b}} {bad}")
	require.NoError(t, err)

	placeholders := f.metrics.placeholders
	assert.Equal(t, 2.0, testutil.ToFloat64(placeholders.WithLabelValues("curly", "resolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(placeholders.WithLabelValues("double_curly", "unresolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(placeholders.WithLabelValues("curly", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.formats.WithLabelValues(MetricResultOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(f.metrics.duration))
}

func TestWithMetrics_ErrorResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := MustNew(WithMetrics(reg), WithResolvers(NewResolverFunc("failing", func(context.Context, *Item) (string, bool, error) {
		return "", false, errors.New("boom")
	})))

	_, err := f.Format(context.Background(), "{x}")
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.formats.WithLabelValues(MetricResultError)))
}

func TestWithMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := MustNew(WithMetrics(reg), WithResolvers(NewMapResolver(map[string]any{"x": "1"})))
	second, err := New(WithMetrics(reg), WithResolvers(NewMapResolver(map[string]any{"x": "2"})))
	require.NoError(t, err)

	_, err = first.Format(context.Background(), "{x}")
	require.NoError(t, err)
	_, err = second.Format(context.Background(), "{x}")
	require.NoError(t, err)

	assert.Same(t, first.metrics.placeholders, second.metrics.placeholders)
	assert.Equal(t, 2.0, testutil.ToFloat64(second.metrics.placeholders.WithLabelValues("curly", "resolved")))
}

func TestWithMetrics_Conflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      MetricPlaceholdersTotal,
		Help:      "something else",
	}))

	_, err := New(WithMetrics(reg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgMetricsRegistration)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	metric, ok := customErr.GetMetadata(MetaKeyMetric)
	assert.True(t, ok)
	assert.Equal(t, MetricPlaceholdersTotal, metric)
}

func TestWithoutMetrics(t *testing.T) {
	f := MustNew()
	assert.Nil(t, f.metrics)

	result, err := f.Format(context.Background(), "{x}")
	require.NoError(t, err)
	assert.Equal(t, "{x}", result)
}
