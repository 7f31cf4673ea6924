package wrapfmt

import "github.com/itsatony/go-wrapfmt/internal"

// WrapperKind identifies the delimiter style enclosing a placeholder.
type WrapperKind = internal.WrapperKind

// Wrapper kinds in match priority order: when delimiters overlap the
// earlier kind wins, so "{{{x}}}" is one triple-curly placeholder.
const (
	WrapperTripleCurly  = internal.WrapperTripleCurly
	WrapperDollarCurly  = internal.WrapperDollarCurly
	WrapperDoubleCurly  = internal.WrapperDoubleCurly
	WrapperHashCurly    = internal.WrapperHashCurly
	WrapperPercentCurly = internal.WrapperPercentCurly
	WrapperCurly        = internal.WrapperCurly
)

// Position is a byte offset plus 1-indexed line and column.
type Position = internal.Position

// NodeType distinguishes text nodes from placeholder nodes.
type NodeType = internal.NodeType

// Node type constants
const (
	NodeTypeText = internal.NodeTypeText
	NodeTypeItem = internal.NodeTypeItem
)

// Node is either a *Text or an *Item.
type Node = internal.Node

// Text is a run of literal text. Content has escapes resolved; Source is
// the original span.
type Text = internal.TextNode

// Item is a placeholder. Text is the raw inner content between the
// delimiters, untrimmed.
type Item = internal.ItemNode

// ErrorStrategy controls what happens when a resolver returns an error.
type ErrorStrategy = internal.ErrorStrategy

// Error strategies
const (
	// ErrorStrategyThrow stops formatting and returns the resolver's error.
	ErrorStrategyThrow = internal.ErrorStrategyThrow
	// ErrorStrategyKeepRaw renders the placeholder unchanged.
	ErrorStrategyKeepRaw = internal.ErrorStrategyKeepRaw
	// ErrorStrategyRemove renders nothing for the placeholder.
	ErrorStrategyRemove = internal.ErrorStrategyRemove
	// ErrorStrategyLog logs a warning and renders the placeholder unchanged.
	ErrorStrategyLog = internal.ErrorStrategyLog
)

// Outcome describes how a placeholder was rendered.
type Outcome = internal.Outcome

// Outcomes
const (
	OutcomeResolved   = internal.OutcomeResolved
	OutcomeUnresolved = internal.OutcomeUnresolved
	OutcomeFailed     = internal.OutcomeFailed
)

// KeyLister is implemented by resolvers that can enumerate their keys.
// Trace uses it for "did you mean" suggestions.
type KeyLister = internal.KeyLister

// AllWrapperKinds returns every wrapper kind in match priority order.
func AllWrapperKinds() []WrapperKind {
	return internal.AllWrapperKinds()
}

// ParseWrapperKind parses a wrapper kind name such as "double_curly".
func ParseWrapperKind(name string) (WrapperKind, error) {
	kind, ok := internal.ParseWrapperKind(name)
	if !ok {
		return 0, NewUnknownWrapperKindError(name)
	}
	return kind, nil
}

// ParseWrapperKinds parses a list of wrapper kind names.
func ParseWrapperKinds(names []string) ([]WrapperKind, error) {
	kinds := make([]WrapperKind, 0, len(names))
	for _, name := range names {
		kind, err := ParseWrapperKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// ParseErrorStrategy parses "throw", "keepraw", "remove" or "log".
func ParseErrorStrategy(name string) (ErrorStrategy, error) {
	strategy, ok := internal.ParseErrorStrategy(name)
	if !ok {
		return ErrorStrategyThrow, NewUnknownStrategyError(name)
	}
	return strategy, nil
}
