package internal

import (
	"context"
	"iter"
	"strings"

	"go.uber.org/zap"
)

// Outcome describes how a placeholder was rendered
type Outcome int

// Outcome constants
const (
	OutcomeResolved Outcome = iota
	OutcomeUnresolved
	OutcomeFailed
)

// Outcome names, also used as metric label values
const (
	OutcomeNameResolved   = "resolved"
	OutcomeNameUnresolved = "unresolved"
	OutcomeNameFailed     = "failed"
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return OutcomeNameResolved
	case OutcomeFailed:
		return OutcomeNameFailed
	default:
		return OutcomeNameUnresolved
	}
}

// Observer receives one callback per placeholder rendered.
// resolver is empty unless a resolver matched or failed.
type Observer interface {
	ObserveItem(item *ItemNode, resolver string, outcome Outcome, value string, err error)
}

// ExecutorConfig holds executor configuration options.
type ExecutorConfig struct {
	ErrorStrategy ErrorStrategy // What to do when a resolver returns an error
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		ErrorStrategy: ErrorStrategyThrow,
	}
}

// Executor renders a node sequence by running placeholders through a chain.
type Executor struct {
	chain    *Chain
	config   ExecutorConfig
	observer Observer
	logger   *zap.Logger
}

// NewExecutor creates a new executor. observer may be nil.
func NewExecutor(chain *Chain, config ExecutorConfig, observer Observer, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgExecutorCreated, zap.String(LogFieldStrategy, config.ErrorStrategy.String()))

	return &Executor{
		chain:    chain,
		config:   config,
		observer: observer,
		logger:   logger,
	}
}

// Execute renders nodes in order. obs, if non-nil, is notified in addition
// to the executor's own observer.
func (e *Executor) Execute(ctx context.Context, nodes iter.Seq[Node], obs Observer) (string, error) {
	resolvers, names := e.chain.Snapshot()
	e.logger.Debug(LogMsgExecutorStart, zap.Int(LogFieldCount, len(resolvers)))

	var sb strings.Builder
	items := 0
	for node := range nodes {
		switch n := node.(type) {
		case *TextNode:
			sb.WriteString(n.Content)
		case *ItemNode:
			items++
			output, err := e.resolveItem(ctx, n, resolvers, names, obs)
			if err != nil {
				return "", err
			}
			sb.WriteString(output)
		}
	}

	e.logger.Debug(LogMsgExecutorEnd, zap.Int(LogFieldItems, items))
	return sb.String(), nil
}

// resolveItem tries each resolver in order; the first match wins.
func (e *Executor) resolveItem(ctx context.Context, item *ItemNode, resolvers []Resolver, names []string, obs Observer) (string, error) {
	for i, resolver := range resolvers {
		e.logger.Debug(LogMsgResolverInvoked,
			zap.String(LogFieldResolver, names[i]),
			zap.String(LogFieldKind, item.Wrapper.String()),
			zap.String(LogFieldText, item.Text),
		)

		value, ok, err := resolver.Resolve(ctx, item)
		if err != nil {
			return e.handleResolverError(item, names[i], err, obs)
		}
		if ok {
			e.notify(obs, item, names[i], OutcomeResolved, value, nil)
			e.logger.Debug(LogMsgItemResolved,
				zap.String(LogFieldResolver, names[i]),
				zap.String(LogFieldKind, item.Wrapper.String()),
			)
			return value, nil
		}
	}

	e.notify(obs, item, "", OutcomeUnresolved, "", nil)
	e.logger.Debug(LogMsgItemUnresolved,
		zap.String(LogFieldKind, item.Wrapper.String()),
		zap.String(LogFieldText, item.Text),
		zap.Int(LogFieldLine, item.Pos().Line),
		zap.Int(LogFieldColumn, item.Pos().Column),
	)
	return item.Raw(), nil
}

// handleResolverError applies the configured error strategy.
// Under throw the resolver's error is returned as is.
func (e *Executor) handleResolverError(item *ItemNode, resolver string, err error, obs Observer) (string, error) {
	strategy := e.config.ErrorStrategy
	e.notify(obs, item, resolver, OutcomeFailed, "", err)

	e.logger.Debug(LogMsgErrorStrategyApplied,
		zap.String(LogFieldResolver, resolver),
		zap.String(LogFieldStrategy, strategy.String()),
		zap.Error(err),
	)

	switch strategy {
	case ErrorStrategyKeepRaw:
		return item.Raw(), nil

	case ErrorStrategyRemove:
		return "", nil

	case ErrorStrategyLog:
		e.logger.Warn(LogMsgErrorLogged,
			zap.String(LogFieldResolver, resolver),
			zap.String(LogFieldKind, item.Wrapper.String()),
			zap.String(LogFieldText, item.Text),
			zap.Error(err),
		)
		return item.Raw(), nil

	default:
		return "", err
	}
}

func (e *Executor) notify(obs Observer, item *ItemNode, resolver string, outcome Outcome, value string, err error) {
	if e.observer != nil {
		e.observer.ObserveItem(item, resolver, outcome, value, err)
	}
	if obs != nil {
		obs.ObserveItem(item, resolver, outcome, value, err)
	}
}
