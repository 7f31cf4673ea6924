package wrapfmt

// Error message constants
const (
	// Registration errors
	ErrMsgRegisterFailed = "resolver registration failed"

	// Configuration errors
	ErrMsgUnknownWrapperKind  = "unknown wrapper kind"
	ErrMsgUnknownStrategy     = "unknown error strategy"
	ErrMsgMetricsRegistration = "metrics registration failed"

	// Resolution errors
	ErrMsgValueConversion = "placeholder value cannot be rendered as text"
)

// Error code constants for categorization
const (
	ErrCodeRegistry = "WRAPFMT_REGISTRY"
	ErrCodeConfig   = "WRAPFMT_CONFIG"
	ErrCodeResolve  = "WRAPFMT_RESOLVE"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind     = "kind"
	MetaKeyStrategy = "strategy"
	MetaKeyPath     = "path"
	MetaKeyType     = "type"
	MetaKeyMetric   = "metric"
)

// Built-in resolver names
const (
	ResolverNameMap     = "map"
	ResolverNameEnv     = "env"
	ResolverNameComment = "comment"
)

// PathSeparator separates segments in map resolver keys ("user.name")
const PathSeparator = "."

// EnvDefaultSeparator separates a variable name from its fallback ("${HOME:-/tmp}")
const EnvDefaultSeparator = ":-"

// DefaultMaxSuggestions caps "did you mean" hints per unresolved placeholder
const DefaultMaxSuggestions = 3

// Metric names and labels
const (
	MetricsNamespace        = "wrapfmt"
	MetricPlaceholdersTotal = "placeholders_total"
	MetricFormatsTotal      = "formats_total"
	MetricFormatDuration    = "format_duration_seconds"
	MetricLabelKind         = "kind"
	MetricLabelOutcome      = "outcome"
	MetricLabelResult       = "result"
	MetricResultOK          = "ok"
	MetricResultError       = "error"
)

// Log message constants
const (
	LogMsgFormatterCreated = "formatter created"
	LogMsgTraceComplete    = "trace complete"
)

// Log field names
const (
	LogFieldWrappers   = "wrappers"
	LogFieldStrategy   = "strategy"
	LogFieldResolvers  = "resolver_count"
	LogFieldItems      = "item_count"
	LogFieldUnresolved = "unresolved_count"
)
