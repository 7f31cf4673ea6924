package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameTokens  = "tokens"
	CmdNameCheck   = "check"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagTemplate   = "template"
	FlagInline     = "inline"
	FlagData       = "data"
	FlagSet        = "set"
	FlagOutput     = "output"
	FlagConfig     = "config"
	FlagVerbose    = "verbose"
	FlagFormat     = "format"
	FlagColor      = "color"
	FlagKinds      = "kinds"
	FlagOnError    = "on-error"
	FlagEnv        = "env"
	FlagComments   = "comments"
	FlagSQLDriver  = "sql-driver"
	FlagSQLDSN     = "sql-dsn"
	FlagSQLTable   = "sql-table"
	FlagSQLKey     = "sql-key-column"
	FlagSQLValue   = "sql-value-column"
	FlagStrictMode = "strict"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagInlineShort   = "i"
	FlagDataShort     = "d"
	FlagOutputShort   = "o"
	FlagConfigShort   = "c"
	FlagVerboseShort  = "v"
	FlagFormatShort   = "F"
	FlagKindsShort    = "k"
)

// Flag default values
const (
	FlagDefaultOutput   = "-" // stdout
	FlagDefaultTemplate = "-" // stdin
	FlagDefaultColor    = ColorAuto
)

// Output formats
const (
	OutputFormatText   = "text"
	OutputFormatPretty = "pretty"
	OutputFormatJSON   = "json"
)

// Color modes
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeUnresolved = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data and config file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"
)

// Separator between key and value in --set
const SetSeparator = "="

// Error messages - ALL must be constants
const (
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgReadStdinFailed    = "failed to read from stdin"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgFormatFailed       = "formatting failed"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidColor       = "invalid color mode"
	ErrMsgInvalidData        = "invalid data file"
	ErrMsgUnsupportedDataExt = "unsupported data file extension"
	ErrMsgInvalidSet         = "invalid --set value, expected key=value"
	ErrMsgInvalidConfig      = "invalid config file"
	ErrMsgInvalidOption      = "invalid option"
	ErrMsgSQLOpenFailed      = "failed to open SQL resolver"
	ErrMsgJSONMarshalFailed  = "failed to marshal JSON"
	ErrMsgUnresolvedFound    = "unresolved placeholders found"
	ErrMsgBothTemplateInputs = "use either --template or --inline, not both"
)

// Log messages
const (
	LogMsgConfigLoaded  = "config loaded"
	LogMsgDataLoaded    = "data loaded"
	LogMsgResolverChain = "resolver chain built"
)

// Log fields
const (
	LogFieldPath      = "path"
	LogFieldKeys      = "key_count"
	LogFieldResolvers = "resolvers"
)

// Check output
const (
	CheckTextUnresolved = "%s: unresolved %s"
	CheckTextFailed     = "%s: failed %s: %v"
	CheckTextHint       = " (%s)"
	CheckTextSummary    = "%d placeholder(s): %d resolved, %d unresolved, %d failed"
	CheckTextOK         = "all placeholders resolved"
)

// Tokens pretty output
const (
	TokensTextNode = "%-14s %-16s %s"
	TokensKindText = "text"
)

// Version output format templates
const (
	VersionTextTemplate = "wrapfmt version %s\nCommit: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// CLI metadata
const (
	CLIName        = "wrapfmt"
	CLIDescription = "Substitute wrapped placeholders in text"
	CLILong        = `wrapfmt tokenizes text containing placeholders such as {name},
{{ name }}, {{{ name }}}, ${NAME}, {# note #} and {% tag %} and replaces
them with values from data files, the environment or a SQL table.
Placeholders nothing resolves are left exactly as written.
Escape a delimiter with a backslash: \{not a placeholder\}.`
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %w"
	FmtError          = "error: %v\n"
	FmtNewline        = "\n"
)
