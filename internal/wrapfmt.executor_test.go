package internal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// kindResolver resolves one (kind, text) pair
type kindResolver struct {
	kind  WrapperKind
	text  string
	value string
}

func (k kindResolver) Resolve(_ context.Context, item *ItemNode) (string, bool, error) {
	if item.Wrapper == k.kind && item.Text == k.text {
		return k.value, true, nil
	}
	return "", false, nil
}

// recordingObserver captures every observed item
type recordingObserver struct {
	outcomes  []Outcome
	resolvers []string
	values    []string
	errs      []error
}

func (r *recordingObserver) ObserveItem(_ *ItemNode, resolver string, outcome Outcome, value string, err error) {
	r.outcomes = append(r.outcomes, outcome)
	r.resolvers = append(r.resolvers, resolver)
	r.values = append(r.values, value)
	r.errs = append(r.errs, err)
}

func newTestExecutor(t *testing.T, strategy ErrorStrategy, resolvers ...Resolver) *Executor {
	t.Helper()
	chain := NewChain(nil)
	for _, r := range resolvers {
		require.NoError(t, chain.Register(r))
	}
	return NewExecutor(chain, ExecutorConfig{ErrorStrategy: strategy}, nil, zap.NewNop())
}

func execute(t *testing.T, e *Executor, input string) (string, error) {
	t.Helper()
	return e.Execute(context.Background(), Nodes(input, DefaultLexerConfig(), nil), nil)
}

func TestExecutor_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		resolvers []Resolver
		expected  string
	}{
		{
			name:      "curly name",
			input:     "Hello, {name}!",
			resolvers: []Resolver{kindResolver{WrapperCurly, "name", "world"}},
			expected:  "Hello, world!",
		},
		{
			name:  "double curly and curly",
			input: "{{greeting}}, {name}!",
			resolvers: []Resolver{
				kindResolver{WrapperDoubleCurly, "greeting", "Hello"},
				kindResolver{WrapperCurly, "name", "world"},
			},
			expected: "Hello, world!",
		},
		{
			name:      "unknown keeps raw",
			input:     "{unknown}",
			resolvers: []Resolver{kindResolver{WrapperCurly, "name", "world"}},
			expected:  "{unknown}",
		},
		{
			name:      "empty input",
			input:     "",
			resolvers: []Resolver{kindResolver{WrapperCurly, "name", "world"}},
			expected:  "",
		},
		{
			name:      "empty placeholder",
			input:     "{}",
			resolvers: []Resolver{kindResolver{WrapperCurly, "", "X"}},
			expected:  "X",
		},
		{
			name:      "kind mismatch keeps raw",
			input:     "{{name}}",
			resolvers: []Resolver{kindResolver{WrapperCurly, "name", "world"}},
			expected:  "{{name}}",
		},
		{
			name:      "empty value is a match",
			input:     "a{x}b",
			resolvers: []Resolver{kindResolver{WrapperCurly, "x", ""}},
			expected:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExecutor(t, ErrorStrategyThrow, tt.resolvers...)
			result, err := execute(t, e, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExecutor_NoResolvers_ResolvesEscapesOnly(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "plain", expected: "plain"},
		{input: `a\{b\} {c} ${d}`, expected: "a{b} {c} ${d}"},
		{input: "{{{x}}} {#y#} {%z%}", expected: "{{{x}}} {#y#} {%z%}"},
		{input: `broken {% \\`, expected: `broken {% \`},
	}

	e := newTestExecutor(t, ErrorStrategyThrow)
	for _, tt := range tests {
		result, err := execute(t, e, tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result, "input %q", tt.input)
	}
}

func TestExecutor_ResolverPrecedence(t *testing.T) {
	first := &stubResolver{name: "first", values: map[string]string{}}
	second := &stubResolver{name: "second", values: map[string]string{"x": "from second"}}
	third := &stubResolver{name: "third", values: map[string]string{"x": "from third"}}

	e := newTestExecutor(t, ErrorStrategyThrow, first, second, third)
	result, err := execute(t, e, "{x}")
	require.NoError(t, err)

	assert.Equal(t, "from second", result)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 0, third.calls)
}

func TestExecutor_ResolverErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("lookup failed")
	failing := &stubResolver{name: "failing", err: boom}
	later := &stubResolver{name: "later", values: map[string]string{"x": "never"}}

	e := newTestExecutor(t, ErrorStrategyThrow, failing, later)
	result, err := execute(t, e, "a {x} b")

	assert.Empty(t, result)
	assert.Same(t, boom, err)
	assert.Equal(t, 0, later.calls)
}

func TestExecutor_ErrorStrategies(t *testing.T) {
	boom := errors.New("lookup failed")

	tests := []struct {
		strategy ErrorStrategy
		expected string
	}{
		{ErrorStrategyKeepRaw, "a {x} b"},
		{ErrorStrategyRemove, "a  b"},
		{ErrorStrategyLog, "a {x} b"},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			e := newTestExecutor(t, tt.strategy, &stubResolver{name: "failing", err: boom})
			result, err := execute(t, e, "a {x} b")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExecutor_LogStrategyWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	chain := NewChain(nil)
	require.NoError(t, chain.Register(&stubResolver{name: "failing", err: errors.New("nope")}))
	e := NewExecutor(chain, ExecutorConfig{ErrorStrategy: ErrorStrategyLog}, nil, zap.New(core))

	_, err := execute(t, e, "{x}")
	require.NoError(t, err)

	entries := logs.FilterMessage(LogMsgErrorLogged).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "failing", entries[0].ContextMap()[LogFieldResolver])
}

func TestExecutor_Observers(t *testing.T) {
	boom := errors.New("failed")
	own := &recordingObserver{}
	call := &recordingObserver{}

	chain := NewChain(nil)
	require.NoError(t, chain.Register(kindResolver{WrapperCurly, "a", "A"}))
	require.NoError(t, chain.Register(&stubResolver{name: "failing", err: boom, values: nil}))
	e := NewExecutor(chain, ExecutorConfig{ErrorStrategy: ErrorStrategyKeepRaw}, own, nil)

	result, err := e.Execute(context.Background(), Nodes("{a} {{b}}", DefaultLexerConfig(), nil), call)
	require.NoError(t, err)
	assert.Equal(t, "A {{b}}", result)

	for _, rec := range []*recordingObserver{own, call} {
		assert.Equal(t, []Outcome{OutcomeResolved, OutcomeFailed}, rec.outcomes)
		assert.Equal(t, []string{"resolver#0", "failing"}, rec.resolvers)
		assert.Equal(t, "A", rec.values[0])
		assert.Same(t, boom, rec.errs[1])
	}
}

func TestExecutor_UnresolvedObserved(t *testing.T) {
	rec := &recordingObserver{}
	e := newTestExecutor(t, ErrorStrategyThrow)

	_, err := e.Execute(context.Background(), Nodes("{a}", DefaultLexerConfig(), nil), rec)
	require.NoError(t, err)

	assert.Equal(t, []Outcome{OutcomeUnresolved}, rec.outcomes)
	assert.Equal(t, []string{""}, rec.resolvers)
}

func TestExecutor_ContextPassedToResolvers(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "tenant-a")

	chain := NewChain(nil)
	require.NoError(t, chain.Register(resolverFunc(func(ctx context.Context, item *ItemNode) (string, bool, error) {
		v, _ := ctx.Value(ctxKey{}).(string)
		return v, true, nil
	})))
	e := NewExecutor(chain, DefaultExecutorConfig(), nil, nil)

	result, err := e.Execute(ctx, Nodes("{t}", DefaultLexerConfig(), nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "tenant-a", result)
}

type resolverFunc func(ctx context.Context, item *ItemNode) (string, bool, error)

func (f resolverFunc) Resolve(ctx context.Context, item *ItemNode) (string, bool, error) {
	return f(ctx, item)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, OutcomeNameResolved, OutcomeResolved.String())
	assert.Equal(t, OutcomeNameUnresolved, OutcomeUnresolved.String())
	assert.Equal(t, OutcomeNameFailed, OutcomeFailed.String())
}

func TestParseErrorStrategy(t *testing.T) {
	for _, name := range []string{ErrorStrategyNameThrow, ErrorStrategyNameKeepRaw, ErrorStrategyNameRemove, ErrorStrategyNameLog} {
		strategy, ok := ParseErrorStrategy(name)
		assert.True(t, ok)
		assert.Equal(t, name, strategy.String())
	}

	strategy, ok := ParseErrorStrategy("explode")
	assert.False(t, ok)
	assert.Equal(t, ErrorStrategyThrow, strategy)
}
