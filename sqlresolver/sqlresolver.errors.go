package sqlresolver

import "github.com/itsatony/go-cuserr"

// NewUnknownDialectError creates an error for an unsupported dialect name
func NewUnknownDialectError(dialect string) error {
	return cuserr.NewValidationError(ErrCodeSQL, ErrMsgUnknownDialect).
		WithMetadata(MetaKeyDialect, dialect)
}

// NewInvalidIdentifierError creates an error for a table or column name that
// cannot be safely quoted into a query
func NewInvalidIdentifierError(identifier string) error {
	return cuserr.NewValidationError(ErrCodeSQL, ErrMsgInvalidIdentifier).
		WithMetadata(MetaKeyIdentifier, identifier)
}

// NewConnectionError wraps a failure to open or ping the database
func NewConnectionError(dialect string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSQL, ErrMsgConnectionFailed).
		WithMetadata(MetaKeyDialect, dialect)
}

// NewQueryError wraps a failed lookup
func NewQueryError(table, key string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSQL, ErrMsgQueryFailed).
		WithMetadata(MetaKeyTable, table).
		WithMetadata(MetaKeyKey, key)
}
