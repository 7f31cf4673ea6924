package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Node is the interface both node variants implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// Pos returns the source position of the node start
	Pos() Position
	// Raw returns the exact source span the node was read from
	Raw() string
	// String returns a human-readable representation
	String() string
}

// TextNode represents literal text with escapes resolved
type TextNode struct {
	pos     Position
	Content string // Text with escape sequences resolved
	Source  string // Original span, escapes included
}

// NewTextNode creates a new text node
func NewTextNode(content, source string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
		Source:  source,
	}
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// Pos returns the source position
func (n *TextNode) Pos() Position {
	return n.pos
}

// Raw returns the original span
func (n *TextNode) Raw() string {
	return n.Source
}

// String returns a string representation
func (n *TextNode) String() string {
	return fmt.Sprintf("TextNode{%q @ %s}", truncate(n.Content), n.pos)
}

// ItemNode represents a wrapped placeholder.
// Text is the raw inner content; it is never trimmed or parsed further.
type ItemNode struct {
	pos     Position
	Wrapper WrapperKind
	Text    string
}

// NewItemNode creates a new placeholder node
func NewItemNode(wrapper WrapperKind, text string, pos Position) *ItemNode {
	return &ItemNode{
		pos:     pos,
		Wrapper: wrapper,
		Text:    text,
	}
}

// Type returns NodeTypeItem
func (n *ItemNode) Type() NodeType {
	return NodeTypeItem
}

// Pos returns the source position
func (n *ItemNode) Pos() Position {
	return n.pos
}

// Raw returns the placeholder with its original delimiters
func (n *ItemNode) Raw() string {
	return n.Wrapper.Wrap(n.Text)
}

// String returns a string representation
func (n *ItemNode) String() string {
	return fmt.Sprintf("ItemNode{%s, %q @ %s}", n.Wrapper, truncate(n.Text), n.pos)
}

func truncate(s string) string {
	if len(s) > MaxStringDisplayLength {
		return s[:TruncatedStringLength] + TruncationSuffix
	}
	return s
}
