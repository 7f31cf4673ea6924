package wrapfmt

import (
	"context"
	"os"
	"slices"
	"strings"
)

// EnvResolver resolves placeholders from environment variables.
//
//	${HOME}            -> value of HOME, unhandled if unset
//	${PORT:-8080}      -> value of PORT, or "8080" if unset or empty
//
// By default only dollar-curly placeholders are considered.
type EnvResolver struct {
	kinds  []WrapperKind
	lookup func(string) (string, bool)
}

// NewEnvResolver creates an environment resolver for the given wrapper
// kinds, or for WrapperDollarCurly when none are given.
func NewEnvResolver(kinds ...WrapperKind) *EnvResolver {
	if len(kinds) == 0 {
		kinds = []WrapperKind{WrapperDollarCurly}
	}
	return &EnvResolver{
		kinds:  slices.Clone(kinds),
		lookup: os.LookupEnv,
	}
}

// Name returns the resolver name.
func (r *EnvResolver) Name() string {
	return ResolverNameEnv
}

// Resolve reads the variable named by the item's trimmed inner text.
func (r *EnvResolver) Resolve(_ context.Context, item *Item) (string, bool, error) {
	if !slices.Contains(r.kinds, item.Wrapper) {
		return "", false, nil
	}

	name, fallback, hasFallback := strings.Cut(strings.TrimSpace(item.Text), EnvDefaultSeparator)
	if name == "" {
		return "", false, nil
	}

	value, set := r.lookup(name)
	switch {
	case set && value != "":
		return value, true, nil
	case hasFallback:
		return fallback, true, nil
	case set:
		return "", true, nil
	default:
		return "", false, nil
	}
}
