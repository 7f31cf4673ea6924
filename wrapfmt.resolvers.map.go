package wrapfmt

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// MapResolver resolves placeholders by looking their inner text up in a
// value map. Nested maps are reached with dot paths ("user.name"); a key
// that itself contains dots is matched first.
//
//	r := wrapfmt.NewMapResolver(map[string]any{
//	    "user": map[string]any{"name": "Alice", "age": 30},
//	}, wrapfmt.WithTrimSpace())
//	// "{{ user.name }}" -> "Alice", "{user.age}" -> "30"
//
// Scalars are rendered with cast.ToStringE; maps and slices are errors.
type MapResolver struct {
	values map[string]any
	trim   bool
	name   string
}

// MapOption configures a MapResolver.
type MapOption func(*MapResolver)

// WithTrimSpace trims surrounding whitespace from the inner text before
// lookup, so "{{ name }}" and "{name}" share a key.
func WithTrimSpace() MapOption {
	return func(m *MapResolver) {
		m.trim = true
	}
}

// WithName overrides the resolver name reported in traces and logs.
func WithName(name string) MapOption {
	return func(m *MapResolver) {
		m.name = name
	}
}

// NewMapResolver creates a resolver over values. The map is not copied.
func NewMapResolver(values map[string]any, opts ...MapOption) *MapResolver {
	m := &MapResolver{
		values: values,
		name:   ResolverNameMap,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the resolver name.
func (m *MapResolver) Name() string {
	return m.name
}

// Resolve looks up the item's inner text.
func (m *MapResolver) Resolve(_ context.Context, item *Item) (string, bool, error) {
	key := item.Text
	if m.trim {
		key = strings.TrimSpace(key)
	}

	value, ok := lookupPath(m.values, key)
	if !ok {
		return "", false, nil
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false, NewValueConversionError(key, value, err)
	}
	return s, true, nil
}

// Keys returns every resolvable dot path, sorted.
func (m *MapResolver) Keys() []string {
	var keys []string
	collectKeys(m.values, "", &keys)
	sort.Strings(keys)
	return keys
}

// lookupPath resolves key directly, then as a dot path
func lookupPath(values map[string]any, key string) (any, bool) {
	if values == nil {
		return nil, false
	}
	if v, ok := values[key]; ok {
		return v, true
	}
	if !strings.Contains(key, PathSeparator) {
		return nil, false
	}

	var current any = values
	for _, part := range strings.Split(key, PathSeparator) {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := v[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

// collectKeys appends the dot paths of all leaf values under prefix
func collectKeys(value any, prefix string, keys *[]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + PathSeparator + k
	}

	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			collectKeys(child, join(k), keys)
		}
	case map[string]string:
		for k := range v {
			*keys = append(*keys, join(k))
		}
	default:
		if prefix != "" {
			*keys = append(*keys, prefix)
		}
	}
}
