package internal

// NodeType identifies node kinds in a tokenized template
type NodeType int

// Node type constants
const (
	NodeTypeText NodeType = iota
	NodeTypeItem
)

// Node type string names for debugging
const (
	NodeTypeNameText = "TEXT"
	NodeTypeNameItem = "ITEM"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeItem:
		return NodeTypeNameItem
	default:
		return NodeTypeNameText
	}
}

// Character constants
const (
	CharBackslash = '\\'
	CharOpenBrace = '{'
	CharDollar    = '$'
	CharNewline   = '\n'
)

// Characters that may never appear inside wrapper content
const (
	ExcludedCurly   = "{}"
	ExcludedHash    = "{}#"
	ExcludedPercent = "{}%"
)

// Log message constants
const (
	LogMsgLexerCreated       = "lexer created"
	LogMsgTokenizerEnd       = "tokenization complete"
	LogMsgExecutorCreated    = "executor created"
	LogMsgExecutorStart      = "starting format"
	LogMsgExecutorEnd        = "format complete"
	LogMsgResolverInvoked    = "resolver invoked"
	LogMsgItemResolved       = "placeholder resolved"
	LogMsgItemUnresolved     = "placeholder unresolved, keeping raw text"
	LogMsgChainCreated       = "resolver chain created"
	LogMsgResolverRegistered = "resolver registered"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldNodes    = "node_count"
	LogFieldItems    = "item_count"
	LogFieldKind     = "kind"
	LogFieldText     = "text"
	LogFieldResolver = "resolver"
	LogFieldIndex    = "index"
	LogFieldLine     = "line"
	LogFieldColumn   = "column"
	LogFieldCount    = "resolver_count"
)

// Error format string constants (for Error() methods)
const (
	ErrFmtWithPosition = "%s at %s"
	ErrFmtTagMessage   = "%s: %s"
)

// String display limits for node String() methods
const (
	MaxStringDisplayLength = 50
	TruncatedStringLength  = 47
	TruncationSuffix       = "..."
)

// UnnamedResolverFmt names resolvers that do not implement Named
const UnnamedResolverFmt = "resolver#%d"

// ErrorStrategy controls what happens when a resolver returns an error
type ErrorStrategy int

// Error strategy constants
const (
	ErrorStrategyThrow ErrorStrategy = iota
	ErrorStrategyKeepRaw
	ErrorStrategyRemove
	ErrorStrategyLog
)

// Error strategy name constants for parsing
const (
	ErrorStrategyNameThrow   = "throw"
	ErrorStrategyNameKeepRaw = "keepraw"
	ErrorStrategyNameRemove  = "remove"
	ErrorStrategyNameLog     = "log"
)

// ParseErrorStrategy parses a strategy name.
// Returns false for unknown names.
func ParseErrorStrategy(s string) (ErrorStrategy, bool) {
	switch s {
	case ErrorStrategyNameThrow:
		return ErrorStrategyThrow, true
	case ErrorStrategyNameKeepRaw:
		return ErrorStrategyKeepRaw, true
	case ErrorStrategyNameRemove:
		return ErrorStrategyRemove, true
	case ErrorStrategyNameLog:
		return ErrorStrategyLog, true
	default:
		return ErrorStrategyThrow, false
	}
}

// String returns the string representation of the error strategy.
func (s ErrorStrategy) String() string {
	switch s {
	case ErrorStrategyKeepRaw:
		return ErrorStrategyNameKeepRaw
	case ErrorStrategyRemove:
		return ErrorStrategyNameRemove
	case ErrorStrategyLog:
		return ErrorStrategyNameLog
	default:
		return ErrorStrategyNameThrow
	}
}

// Log messages for error strategy handling
const (
	LogMsgErrorStrategyApplied = "error strategy applied"
	LogMsgErrorLogged          = "resolver failed, keeping raw text"
	LogFieldStrategy           = "strategy"
)
