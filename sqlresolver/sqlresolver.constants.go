package sqlresolver

import "time"

// Dialects select the driver name and query placeholder style
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Defaults
const (
	DefaultTable        = "wrapfmt_values"
	DefaultKeyColumn    = "key"
	DefaultValueColumn  = "value"
	DefaultName         = "sql"
	DefaultQueryTimeout = 5 * time.Second
	DefaultMaxOpenConns = 10
)

// Query templates; identifiers are validated before substitution
const (
	queryLookupFmt = "SELECT %s FROM %s WHERE %s = %s"
	queryKeysFmt   = "SELECT %s FROM %s ORDER BY %s"
	placeholderPg  = "$1"
	placeholderLit = "?"
)

// Error code
const ErrCodeSQL = "WRAPFMT_SQL"

// Error messages
const (
	ErrMsgUnknownDialect    = "unknown SQL dialect"
	ErrMsgInvalidIdentifier = "invalid SQL identifier"
	ErrMsgNilDB             = "database handle is nil"
	ErrMsgConnectionFailed  = "failed to connect to database"
	ErrMsgQueryFailed       = "SQL lookup failed"
	ErrMsgResolverClosed    = "SQL resolver is closed"
)

// Metadata keys
const (
	MetaKeyDialect    = "dialect"
	MetaKeyIdentifier = "identifier"
	MetaKeyTable      = "table"
	MetaKeyKey        = "key"
)

// Log messages and fields
const (
	LogMsgResolverOpened = "sql resolver opened"
	LogMsgLookup         = "sql lookup"
	LogMsgLookupMiss     = "sql lookup found no row"

	LogFieldDialect = "dialect"
	LogFieldTable   = "table"
	LogFieldKey     = "key"
	LogFieldFound   = "found"
)
