package wrapfmt

import (
	"context"
	"sort"
	"strings"

	"github.com/itsatony/go-wrapfmt/internal"
	"go.uber.org/zap"
)

// Trace records how each placeholder of one format call was rendered.
type Trace struct {
	// Output is the formatted result; empty when Err is set
	Output string

	// Items lists placeholders in source order, up to the failing one
	Items []TraceItem

	// Err is the resolver error that stopped formatting, if any
	Err error
}

// TraceItem describes one placeholder.
type TraceItem struct {
	Wrapper  WrapperKind
	Text     string   // Raw inner content
	Raw      string   // Placeholder with delimiters
	Position Position // Source position
	Outcome  Outcome
	Resolver string // Matching or failing resolver; empty when unresolved
	Value    string // Replacement when resolved
	Err      error  // Resolver error when failed

	// Suggestions holds similar keys offered by KeyLister resolvers when
	// the item was unresolved
	Suggestions []string
}

// Hint returns a "did you mean" sentence, or "" without suggestions.
func (i TraceItem) Hint() string {
	return internal.FormatSuggestions(i.Suggestions)
}

// Unresolved returns the items no resolver handled.
func (t *Trace) Unresolved() []TraceItem {
	return t.filter(OutcomeUnresolved)
}

// Resolved returns the items a resolver handled.
func (t *Trace) Resolved() []TraceItem {
	return t.filter(OutcomeResolved)
}

// Failed returns the items whose resolver returned an error.
func (t *Trace) Failed() []TraceItem {
	return t.filter(OutcomeFailed)
}

func (t *Trace) filter(outcome Outcome) []TraceItem {
	var out []TraceItem
	for _, item := range t.Items {
		if item.Outcome == outcome {
			out = append(out, item)
		}
	}
	return out
}

// traceRecorder collects observer callbacks into a Trace
type traceRecorder struct {
	items []TraceItem
}

func (r *traceRecorder) ObserveItem(item *internal.ItemNode, resolver string, outcome internal.Outcome, value string, err error) {
	r.items = append(r.items, TraceItem{
		Wrapper:  item.Wrapper,
		Text:     item.Text,
		Raw:      item.Raw(),
		Position: item.Pos(),
		Outcome:  outcome,
		Resolver: resolver,
		Value:    value,
		Err:      err,
	})
}

// Trace formats input like Format while recording every placeholder's
// outcome. The returned error is the same one Format would return; the
// trace is always non-nil.
func (f *Formatter) Trace(ctx context.Context, input string) (*Trace, error) {
	recorder := &traceRecorder{}
	output, err := f.execute(ctx, f.Nodes(input), recorder)

	trace := &Trace{
		Output: output,
		Items:  recorder.items,
		Err:    err,
	}
	f.addSuggestions(trace)

	f.logger.Debug(LogMsgTraceComplete,
		zap.Int(LogFieldItems, len(trace.Items)),
		zap.Int(LogFieldUnresolved, len(trace.Unresolved())),
	)
	return trace, err
}

// addSuggestions fills Suggestions for unresolved items from KeyLister
// resolvers
func (f *Formatter) addSuggestions(trace *Trace) {
	resolvers, _ := f.chain.Snapshot()

	seen := make(map[string]bool)
	var keys []string
	for _, r := range resolvers {
		lister, ok := r.(KeyLister)
		if !ok {
			continue
		}
		for _, key := range lister.Keys() {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)

	for i := range trace.Items {
		item := &trace.Items[i]
		if item.Outcome != OutcomeUnresolved {
			continue
		}
		item.Suggestions = internal.FindSimilarStrings(strings.TrimSpace(item.Text), keys, DefaultMaxSuggestions)
	}
}

// Inspection summarises the placeholders of a template without resolving.
type Inspection struct {
	Items  []*Item             // Placeholders in source order
	Counts map[WrapperKind]int // Placeholder count per wrapper kind
	Texts  int                 // Number of text nodes
}

// Keys returns the distinct trimmed inner texts, sorted.
func (in *Inspection) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, item := range in.Items {
		key := strings.TrimSpace(item.Text)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Inspect tokenizes input with the formatter's wrapper kinds and summarises
// it. No resolver is called.
func (f *Formatter) Inspect(input string) *Inspection {
	return inspectNodes(f.Tokenize(input))
}

// Inspect summarises input using all wrapper kinds.
func Inspect(input string) *Inspection {
	return inspectNodes(Tokenize(input))
}

func inspectNodes(nodes []Node) *Inspection {
	in := &Inspection{
		Counts: make(map[WrapperKind]int),
	}
	for _, node := range nodes {
		switch n := node.(type) {
		case *Item:
			in.Items = append(in.Items, n)
			in.Counts[n.Wrapper]++
		case *Text:
			in.Texts++
		}
	}
	return in
}
