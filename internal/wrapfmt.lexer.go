package internal

import (
	"iter"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// LexerConfig holds lexer configuration
type LexerConfig struct {
	// Wrappers lists the enabled wrapper kinds. Order is irrelevant: enabled
	// kinds are always tried in priority order. Nil enables every kind, an
	// empty non-nil slice disables them all.
	Wrappers []WrapperKind
}

// DefaultLexerConfig returns the default lexer configuration
func DefaultLexerConfig() LexerConfig {
	return LexerConfig{
		Wrappers: AllWrapperKinds(),
	}
}

// activeMatchers returns the enabled matchers in priority order
func (c LexerConfig) activeMatchers() []wrapperMatcher {
	if c.Wrappers == nil {
		return matchers[:]
	}
	var enabled [len(matchers) + 1]bool
	for _, k := range c.Wrappers {
		if k.Valid() {
			enabled[k] = true
		}
	}
	active := make([]wrapperMatcher, 0, len(matchers))
	for _, m := range matchers {
		if enabled[m.kind] {
			active = append(active, m)
		}
	}
	return active
}

// EnabledKinds returns the enabled wrapper kinds in priority order
func (c LexerConfig) EnabledKinds() []WrapperKind {
	active := c.activeMatchers()
	kinds := make([]WrapperKind, 0, len(active))
	for _, m := range active {
		kinds = append(kinds, m.kind)
	}
	return kinds
}

// Lexer splits template source into text and placeholder nodes.
// It never fails: anything that is not a complete placeholder is text.
type Lexer struct {
	source  string
	active  []wrapperMatcher
	pos     int // Current byte position
	line    int // Current line (1-indexed)
	column  int // Current column (1-indexed)
	emitted int
	done    bool
	logger  *zap.Logger
}

// NewLexer creates a new lexer with default configuration
func NewLexer(source string, logger *zap.Logger) *Lexer {
	return NewLexerWithConfig(source, DefaultLexerConfig(), logger)
}

// NewLexerWithConfig creates a lexer with custom configuration
func NewLexerWithConfig(source string, config LexerConfig, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		active: config.activeMatchers(),
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Nodes returns a lazy node sequence over source.
// Each range over the sequence starts a fresh lexer, so it can be iterated
// any number of times.
func Nodes(source string, config LexerConfig, logger *zap.Logger) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		l := NewLexerWithConfig(source, config, logger)
		for {
			node, ok := l.Next()
			if !ok || !yield(node) {
				return
			}
		}
	}
}

// Tokenize consumes the remaining source and returns every node
func (l *Lexer) Tokenize() []Node {
	var nodes []Node
	for {
		node, ok := l.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, node)
	}
}

// Next returns the next node, or false once the source is exhausted
func (l *Lexer) Next() (Node, bool) {
	if l.isAtEnd() {
		if !l.done {
			l.done = true
			l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldNodes, l.emitted))
		}
		return nil, false
	}

	var node Node
	if item, ok := l.scanItem(); ok {
		node = item
	} else {
		node = l.scanText()
	}
	l.emitted++
	return node, true
}

// scanItem consumes a placeholder at the current position if one matches
func (l *Lexer) scanItem() (*ItemNode, bool) {
	kind, inner, n, ok := l.matchItem()
	if !ok {
		return nil, false
	}
	pos := l.currentPosition()
	l.advanceN(n)
	return NewItemNode(kind, inner, pos), true
}

// scanText consumes literal text up to the next placeholder.
// The first character is always consumed: the caller already knows no
// placeholder starts here.
func (l *Lexer) scanText() *TextNode {
	startPos := l.currentPosition()
	start := l.pos
	var sb strings.Builder

	for !l.isAtEnd() {
		if l.pos > start {
			if _, _, _, ok := l.matchItem(); ok {
				break
			}
		}

		// Escape: drop the backslash, keep the next character literally
		if l.peek() == CharBackslash && l.pos+1 < len(l.source) {
			l.advance()
			_, size := utf8.DecodeRuneInString(l.source[l.pos:])
			sb.WriteString(l.source[l.pos : l.pos+size])
			l.advanceN(size)
			continue
		}

		sb.WriteByte(l.advance())
	}

	return NewTextNode(sb.String(), l.source[start:l.pos], startPos)
}

// matchItem tries the enabled wrappers at the current position without
// consuming anything
func (l *Lexer) matchItem() (WrapperKind, string, int, bool) {
	ch := l.peek()
	if ch != CharOpenBrace && ch != CharDollar {
		return 0, "", 0, false
	}
	rest := l.source[l.pos:]
	for _, m := range l.active {
		if inner, n, ok := m.match(rest); ok {
			return m.kind, inner, n, true
		}
	}
	return 0, "", 0, false
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current byte without advancing
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes and returns the current byte
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// advanceN advances by n bytes
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}
