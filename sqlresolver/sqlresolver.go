// Package sqlresolver resolves wrapfmt placeholders from a key/value table in
// PostgreSQL or SQLite.
//
//	CREATE TABLE wrapfmt_values (key TEXT PRIMARY KEY, value TEXT);
//
//	r, err := sqlresolver.Open(sqlresolver.DialectSQLite, "vars.db", sqlresolver.Config{})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	out, err := wrapfmt.Format(ctx, "Hello {name}", r)
//
// A missing row or a NULL value leaves the placeholder to later resolvers.
// Query failures are returned as resolver errors.
package sqlresolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/itsatony/go-wrapfmt"
	_ "github.com/lib/pq"     // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// identifierPattern accepts plain and schema-qualified names
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Config configures a SQL resolver.
type Config struct {
	// Dialect is DialectPostgres or DialectSQLite.
	// Default: the driver passed to Open; required for New
	Dialect string

	// Table holds one row per key.
	// Default: "wrapfmt_values"
	Table string

	// KeyColumn is matched against the placeholder's inner text.
	// Default: "key"
	KeyColumn string

	// ValueColumn holds the replacement text.
	// Default: "value"
	ValueColumn string

	// Kinds restricts lookups to these wrapper kinds.
	// Default: all kinds
	Kinds []wrapfmt.WrapperKind

	// TrimSpace trims the inner text before lookup.
	// Default: false
	TrimSpace bool

	// Name is reported in traces and logs.
	// Default: "sql"
	Name string

	// QueryTimeout bounds each lookup.
	// Default: 5 seconds
	QueryTimeout time.Duration

	// MaxOpenConns applies to connections created by Open.
	// Default: 10
	MaxOpenConns int

	// Logger receives debug output.
	// Default: nil (no logging)
	Logger *zap.Logger
}

// Resolver looks placeholders up in a SQL table. It implements
// wrapfmt.Resolver, wrapfmt.Named and wrapfmt.KeyLister and is safe for
// concurrent use.
type Resolver struct {
	db        *sql.DB
	config    Config
	lookupSQL string
	keysSQL   string
	ownsDB    bool
	logger    *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// Open connects with the given driver and DSN and returns a resolver that
// owns the connection. driver is DialectPostgres or DialectSQLite.
func Open(driver, dsn string, config Config) (*Resolver, error) {
	if config.Dialect == "" {
		config.Dialect = driver
	}
	if err := validateDialect(config.Dialect); err != nil {
		return nil, err
	}
	if config.MaxOpenConns == 0 {
		config.MaxOpenConns = DefaultMaxOpenConns
	}
	if config.QueryTimeout == 0 {
		config.QueryTimeout = DefaultQueryTimeout
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, NewConnectionError(config.Dialect, err)
	}
	db.SetMaxOpenConns(config.MaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), config.QueryTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, NewConnectionError(config.Dialect, err)
	}

	r, err := New(db, config)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	r.ownsDB = true
	return r, nil
}

// New creates a resolver over an existing connection pool. The caller keeps
// ownership of db.
func New(db *sql.DB, config Config) (*Resolver, error) {
	if db == nil {
		return nil, NewConnectionError(config.Dialect, errors.New(ErrMsgNilDB))
	}
	if err := validateDialect(config.Dialect); err != nil {
		return nil, err
	}

	if config.Table == "" {
		config.Table = DefaultTable
	}
	if config.KeyColumn == "" {
		config.KeyColumn = DefaultKeyColumn
	}
	if config.ValueColumn == "" {
		config.ValueColumn = DefaultValueColumn
	}
	if config.Name == "" {
		config.Name = DefaultName
	}
	if config.QueryTimeout == 0 {
		config.QueryTimeout = DefaultQueryTimeout
	}
	config.Kinds = slices.Clone(config.Kinds)

	for _, ident := range []string{config.Table, config.KeyColumn, config.ValueColumn} {
		if !identifierPattern.MatchString(ident) {
			return nil, NewInvalidIdentifierError(ident)
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	table := quoteIdentifier(config.Table)
	key := quoteIdentifier(config.KeyColumn)
	value := quoteIdentifier(config.ValueColumn)
	placeholder := placeholderLit
	if config.Dialect == DialectPostgres {
		placeholder = placeholderPg
	}

	r := &Resolver{
		db:        db,
		config:    config,
		lookupSQL: fmt.Sprintf(queryLookupFmt, value, table, key, placeholder),
		keysSQL:   fmt.Sprintf(queryKeysFmt, key, table, key),
		logger:    logger,
	}

	logger.Debug(LogMsgResolverOpened,
		zap.String(LogFieldDialect, config.Dialect),
		zap.String(LogFieldTable, config.Table),
	)
	return r, nil
}

// Name returns the configured resolver name.
func (r *Resolver) Name() string {
	return r.config.Name
}

// Resolve looks up the item's inner text in the key column.
func (r *Resolver) Resolve(ctx context.Context, item *wrapfmt.Item) (string, bool, error) {
	if len(r.config.Kinds) > 0 && !slices.Contains(r.config.Kinds, item.Wrapper) {
		return "", false, nil
	}

	key := item.Text
	if r.config.TrimSpace {
		key = strings.TrimSpace(key)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return "", false, NewQueryError(r.config.Table, key, errors.New(ErrMsgResolverClosed))
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.QueryTimeout)
	defer cancel()

	var value sql.NullString
	err := r.db.QueryRowContext(ctx, r.lookupSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug(LogMsgLookupMiss, zap.String(LogFieldKey, key))
		return "", false, nil
	}
	if err != nil {
		return "", false, NewQueryError(r.config.Table, key, err)
	}

	r.logger.Debug(LogMsgLookup,
		zap.String(LogFieldKey, key),
		zap.Bool(LogFieldFound, value.Valid),
	)
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Keys returns every key in the table, sorted. Errors yield nil; Keys only
// feeds suggestions.
func (r *Resolver) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.QueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, r.keysSQL)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil
		}
		keys = append(keys, key)
	}
	if rows.Err() != nil {
		return nil
	}
	return keys
}

// Close closes the connection pool if the resolver opened it. Further lookups
// fail.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	if r.ownsDB {
		return r.db.Close()
	}
	return nil
}

func validateDialect(dialect string) error {
	switch dialect {
	case DialectPostgres, DialectSQLite:
		return nil
	default:
		return NewUnknownDialectError(dialect)
	}
}

// quoteIdentifier double-quotes each dotted segment; both dialects accept it
func quoteIdentifier(ident string) string {
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		parts[i] = `"` + p + `"`
	}
	return strings.Join(parts, ".")
}
