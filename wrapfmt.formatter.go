package wrapfmt

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/itsatony/go-wrapfmt/internal"
	"go.uber.org/zap"
)

// Formatter tokenizes input strings and substitutes placeholders using an
// ordered list of resolvers. Registered resolvers persist across calls. A
// Formatter is safe for concurrent use; resolver safety is up to the caller.
type Formatter struct {
	chain       *internal.Chain
	executor    *internal.Executor
	lexerConfig internal.LexerConfig
	config      *formatterConfig
	metrics     *formatMetrics
	logger      *zap.Logger
}

// New creates a new Formatter with the given options.
func New(opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var metrics *formatMetrics
	var observer internal.Observer
	if config.metrics != nil {
		m, err := newFormatMetrics(config.metrics)
		if err != nil {
			return nil, err
		}
		metrics = m
		observer = m
	}

	chain := internal.NewChain(logger)
	executorConfig := internal.ExecutorConfig{
		ErrorStrategy: config.errorStrategy,
	}

	f := &Formatter{
		chain:       chain,
		executor:    internal.NewExecutor(chain, executorConfig, observer, logger),
		lexerConfig: internal.LexerConfig{Wrappers: config.wrappers},
		config:      config,
		metrics:     metrics,
		logger:      logger,
	}

	for _, r := range config.resolvers {
		if err := f.Register(r); err != nil {
			return nil, err
		}
	}

	logger.Debug(LogMsgFormatterCreated,
		zap.Int(LogFieldWrappers, len(f.lexerConfig.EnabledKinds())),
		zap.String(LogFieldStrategy, config.errorStrategy.String()),
		zap.Int(LogFieldResolvers, chain.Len()),
	)
	return f, nil
}

// MustNew creates a new Formatter and panics if there's an error.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Register appends a resolver. Earlier resolvers take precedence.
func (f *Formatter) Register(r Resolver) error {
	if err := f.chain.Register(r); err != nil {
		return NewRegistryError(err)
	}
	return nil
}

// MustRegister appends a resolver and panics if registration fails.
func (f *Formatter) MustRegister(r Resolver) {
	if err := f.Register(r); err != nil {
		panic(err)
	}
}

// RegisterFunc appends a function resolver under the given name.
func (f *Formatter) RegisterFunc(name string, fn func(ctx context.Context, item *Item) (string, bool, error)) error {
	return f.Register(NewResolverFunc(name, fn))
}

// Resolvers returns the registered resolver names in precedence order.
func (f *Formatter) Resolvers() []string {
	return f.chain.Names()
}

// Nodes returns a lazy, restartable node sequence for input.
func (f *Formatter) Nodes(input string) iter.Seq[Node] {
	return internal.Nodes(input, f.lexerConfig, f.logger)
}

// Tokenize returns every node of input.
func (f *Formatter) Tokenize(input string) []Node {
	return internal.NewLexerWithConfig(input, f.lexerConfig, f.logger).Tokenize()
}

// Parse tokenizes input once so it can be formatted repeatedly.
func (f *Formatter) Parse(input string) *Template {
	return newTemplate(input, f.Tokenize(input), f)
}

// Format tokenizes input and substitutes every placeholder.
func (f *Formatter) Format(ctx context.Context, input string) (string, error) {
	return f.execute(ctx, f.Nodes(input), nil)
}

// FormatNodes substitutes placeholders in an already tokenized sequence.
func (f *Formatter) FormatNodes(ctx context.Context, nodes []Node) (string, error) {
	return f.execute(ctx, slices.Values(nodes), nil)
}

func (f *Formatter) execute(ctx context.Context, nodes iter.Seq[Node], obs internal.Observer) (string, error) {
	if f.metrics == nil {
		return f.executor.Execute(ctx, nodes, obs)
	}

	start := time.Now()
	out, err := f.executor.Execute(ctx, nodes, obs)
	f.metrics.observeFormat(time.Since(start), err)
	return out, err
}

// Tokenize returns every node of input using all wrapper kinds.
func Tokenize(input string) []Node {
	return internal.NewLexer(input, nil).Tokenize()
}

// Nodes returns a lazy, restartable node sequence for input using all
// wrapper kinds.
func Nodes(input string) iter.Seq[Node] {
	return internal.Nodes(input, internal.DefaultLexerConfig(), nil)
}

// Format formats input with a one-off formatter using resolvers in order.
func Format(ctx context.Context, input string, resolvers ...Resolver) (string, error) {
	f, err := New(WithResolvers(resolvers...))
	if err != nil {
		return "", err
	}
	return f.Format(ctx, input)
}
