package wrapfmt

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Formatter.
type Option func(*formatterConfig)

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	wrappers      []WrapperKind
	errorStrategy ErrorStrategy
	logger        *zap.Logger
	metrics       prometheus.Registerer
	resolvers     []Resolver
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		wrappers:      nil,
		errorStrategy: ErrorStrategyThrow,
		logger:        nil,
	}
}

// WithWrappers restricts which wrapper kinds are recognised. Disabled kinds
// are treated as plain text. Enabled kinds keep their fixed priority order.
// Default: all kinds
func WithWrappers(kinds ...WrapperKind) Option {
	return func(c *formatterConfig) {
		c.wrappers = append([]WrapperKind{}, kinds...)
	}
}

// WithErrorStrategy sets the resolver error handling strategy.
// Default: ErrorStrategyThrow
func WithErrorStrategy(strategy ErrorStrategy) Option {
	return func(c *formatterConfig) {
		c.errorStrategy = strategy
	}
}

// WithLogger sets the logger for the formatter.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}

// WithMetrics registers placeholder and format counters on reg.
// Formatters sharing a registerer share the collectors.
// Default: nil (no metrics)
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *formatterConfig) {
		c.metrics = reg
	}
}

// WithResolvers registers resolvers at construction, in order.
func WithResolvers(resolvers ...Resolver) Option {
	return func(c *formatterConfig) {
		c.resolvers = append(c.resolvers, resolvers...)
	}
}
