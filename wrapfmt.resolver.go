package wrapfmt

import (
	"context"
	"slices"
)

// Resolver is the interface placeholder handlers implement.
// Resolve returns ok == false when it does not handle the item; the next
// resolver is then tried. ok == true with an empty value renders nothing.
// A non-nil error stops formatting under the default error strategy.
type Resolver interface {
	Resolve(ctx context.Context, item *Item) (value string, ok bool, err error)
}

// Named is implemented by resolvers that report a name for logs and traces.
// Unnamed resolvers are called "resolver#<index>".
type Named interface {
	Name() string
}

// ResolverFunc is a convenience type for creating resolvers from functions.
type ResolverFunc struct {
	name string
	fn   func(ctx context.Context, item *Item) (string, bool, error)
}

// NewResolverFunc creates a new function-based resolver.
func NewResolverFunc(name string, fn func(ctx context.Context, item *Item) (string, bool, error)) *ResolverFunc {
	return &ResolverFunc{
		name: name,
		fn:   fn,
	}
}

// Name returns the resolver's name.
func (r *ResolverFunc) Name() string {
	return r.name
}

// Resolve executes the resolver function.
func (r *ResolverFunc) Resolve(ctx context.Context, item *Item) (string, bool, error) {
	return r.fn(ctx, item)
}

// Lookup adapts a pure mapping from wrapper kind and inner text to an
// optional replacement.
func Lookup(name string, fn func(kind WrapperKind, text string) (string, bool)) *ResolverFunc {
	return NewResolverFunc(name, func(_ context.Context, item *Item) (string, bool, error) {
		value, ok := fn(item.Wrapper, item.Text)
		return value, ok, nil
	})
}

// ForKinds restricts r to placeholders of the given wrapper kinds; others
// are reported as unhandled without calling r.
func ForKinds(r Resolver, kinds ...WrapperKind) Resolver {
	return &kindFilter{
		resolver: r,
		kinds:    slices.Clone(kinds),
	}
}

// kindFilter wraps a resolver with a wrapper kind allowlist
type kindFilter struct {
	resolver Resolver
	kinds    []WrapperKind
}

// Name returns the wrapped resolver's name, if any.
func (k *kindFilter) Name() string {
	if named, ok := k.resolver.(Named); ok {
		return named.Name()
	}
	return ""
}

// Keys forwards to the wrapped resolver when it can list keys.
func (k *kindFilter) Keys() []string {
	if lister, ok := k.resolver.(KeyLister); ok {
		return lister.Keys()
	}
	return nil
}

// Resolve delegates when the item's kind is allowed.
func (k *kindFilter) Resolve(ctx context.Context, item *Item) (string, bool, error) {
	if !slices.Contains(k.kinds, item.Wrapper) {
		return "", false, nil
	}
	return k.resolver.Resolve(ctx, item)
}
