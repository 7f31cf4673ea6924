package wrapfmt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Trace(t *testing.T) {
	f := MustNew(WithResolvers(
		NewCommentResolver(),
		NewMapResolver(map[string]any{"name": "Ada", "place": "Paris"}, WithTrimSpace()),
	))

	trace, err := f.Trace(context.Background(), "{# hi #}Hi {nmae} and {{ name }} in {zzzzzz}")
	require.NoError(t, err)
	require.NotNil(t, trace)
	assert.Equal(t, "Hi {nmae} and Ada in {zzzzzz}", trace.Output)
	require.Len(t, trace.Items, 4)

	comment := trace.Items[0]
	assert.Equal(t, WrapperHashCurly, comment.Wrapper)
	assert.Equal(t, OutcomeResolved, comment.Outcome)
	assert.Equal(t, ResolverNameComment, comment.Resolver)
	assert.Empty(t, comment.Value)

	typo := trace.Items[1]
	assert.Equal(t, OutcomeUnresolved, typo.Outcome)
	assert.Equal(t, "{nmae}", typo.Raw)
	assert.Equal(t, 12, typo.Position.Column)
	assert.Empty(t, typo.Resolver)
	assert.Equal(t, []string{"name"}, typo.Suggestions)
	assert.Equal(t, "did you mean 'name'?", typo.Hint())

	named := trace.Items[2]
	assert.Equal(t, WrapperDoubleCurly, named.Wrapper)
	assert.Equal(t, " name ", named.Text)
	assert.Equal(t, OutcomeResolved, named.Outcome)
	assert.Equal(t, ResolverNameMap, named.Resolver)
	assert.Equal(t, "Ada", named.Value)

	unknown := trace.Items[3]
	assert.Equal(t, OutcomeUnresolved, unknown.Outcome)
	assert.Empty(t, unknown.Suggestions)
	assert.Empty(t, unknown.Hint())

	assert.Len(t, trace.Resolved(), 2)
	assert.Len(t, trace.Unresolved(), 2)
	assert.Empty(t, trace.Failed())
}

func TestFormatter_TraceFailure(t *testing.T) {
	boom := errors.New("boom")
	f := MustNew(WithResolvers(
		NewMapResolver(map[string]any{"a": "A"}),
		NewResolverFunc("failing", func(context.Context, *Item) (string, bool, error) {
			return "", false, boom
		}),
	))

	trace, err := f.Trace(context.Background(), "{a} {b} {c}")
	require.ErrorIs(t, err, boom)
	require.NotNil(t, trace)
	assert.Empty(t, trace.Output)
	assert.Equal(t, boom, trace.Err)

	require.Len(t, trace.Items, 2)
	failed := trace.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Text)
	assert.Equal(t, "failing", failed[0].Resolver)
	assert.Equal(t, boom, failed[0].Err)
}

func TestFormatter_TraceWithoutKeyListers(t *testing.T) {
	f := MustNew(WithResolvers(NewEnvResolver()))

	trace, err := f.Trace(context.Background(), "{name}")
	require.NoError(t, err)
	require.Len(t, trace.Items, 1)
	assert.Nil(t, trace.Items[0].Suggestions)
}

func TestInspect(t *testing.T) {
	in := Inspect("a {x} {{ x }} ${y} b {# c #} {x}")

	require.Len(t, in.Items, 5)
	assert.Equal(t, 2, in.Counts[WrapperCurly])
	assert.Equal(t, 1, in.Counts[WrapperDoubleCurly])
	assert.Equal(t, 1, in.Counts[WrapperDollarCurly])
	assert.Equal(t, 1, in.Counts[WrapperHashCurly])
	assert.Equal(t, 5, in.Texts)
	assert.Equal(t, []string{"c", "x", "y"}, in.Keys())
}

func TestFormatter_Inspect(t *testing.T) {
	f := MustNew(WithWrappers(WrapperDollarCurly))
	in := f.Inspect("{x} ${y}")

	require.Len(t, in.Items, 1)
	assert.Equal(t, "y", in.Items[0].Text)
	assert.Equal(t, 0, in.Counts[WrapperCurly])
}

func TestTemplate(t *testing.T) {
	f := MustNew(WithResolvers(NewMapResolver(map[string]any{"x": "1"})))
	input := `\{x\} {x} {{y}}`
	tmpl := f.Parse(input)

	assert.Equal(t, input, tmpl.Source())
	assert.Equal(t, input, tmpl.Reconstruct())

	items := tmpl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, WrapperCurly, items[0].Wrapper)
	assert.Equal(t, WrapperDoubleCurly, items[1].Wrapper)

	nodes := tmpl.Nodes()
	nodes[0] = nil
	assert.NotNil(t, tmpl.Nodes()[0])

	for range 2 {
		result, err := tmpl.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "{x} 1 {{y}}", result)
	}
}
