package wrapfmt

import (
	"context"
	"slices"
	"strings"
)

// Template is input tokenized once by a Formatter. The node sequence is
// immutable; executing it any number of times uses the formatter's current
// resolvers.
type Template struct {
	source    string
	nodes     []Node
	formatter *Formatter
}

// newTemplate creates a new Template instance.
func newTemplate(source string, nodes []Node, formatter *Formatter) *Template {
	return &Template{
		source:    source,
		nodes:     nodes,
		formatter: formatter,
	}
}

// Source returns the original input.
func (t *Template) Source() string {
	return t.source
}

// Nodes returns a copy of the node sequence.
func (t *Template) Nodes() []Node {
	return slices.Clone(t.nodes)
}

// Items returns the placeholder nodes in source order.
func (t *Template) Items() []*Item {
	var items []*Item
	for _, node := range t.nodes {
		if item, ok := node.(*Item); ok {
			items = append(items, item)
		}
	}
	return items
}

// Reconstruct concatenates the original span of every node. The result is
// always equal to Source.
func (t *Template) Reconstruct() string {
	var sb strings.Builder
	for _, node := range t.nodes {
		sb.WriteString(node.Raw())
	}
	return sb.String()
}

// Execute formats the template with the formatter's resolvers.
func (t *Template) Execute(ctx context.Context) (string, error) {
	return t.formatter.FormatNodes(ctx, t.nodes)
}
