package main

import (
	"github.com/itsatony/go-wrapfmt"
	"github.com/itsatony/go-wrapfmt/sqlresolver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// formatOptions are the resolver flags shared by render and check
type formatOptions struct {
	data      []string
	sets      []string
	kinds     []string
	onError   string
	env       bool
	comments  bool
	sqlDriver string
	sqlDSN    string
	sqlTable  string
	sqlKey    string
	sqlValue  string
}

func bindFormatFlags(cmd *cobra.Command, o *formatOptions) {
	flags := cmd.Flags()
	flags.StringArrayVarP(&o.data, FlagData, FlagDataShort, nil, "data file (.json, .yaml, .yml, .toml); repeatable, later files win")
	flags.StringArrayVar(&o.sets, FlagSet, nil, "value as key=value; repeatable, applied after data files")
	flags.StringSliceVarP(&o.kinds, FlagKinds, FlagKindsShort, nil, "wrapper kinds to recognise (default all)")
	flags.StringVar(&o.onError, FlagOnError, "", "resolver error strategy: throw, keepraw, remove or log (default throw)")
	flags.BoolVar(&o.env, FlagEnv, false, "resolve ${NAME} from the environment")
	flags.BoolVar(&o.comments, FlagComments, false, "drop {# comments #}")
	flags.StringVar(&o.sqlDriver, FlagSQLDriver, "", "SQL resolver driver: postgres or sqlite")
	flags.StringVar(&o.sqlDSN, FlagSQLDSN, "", "SQL resolver data source name")
	flags.StringVar(&o.sqlTable, FlagSQLTable, "", "SQL resolver table (default wrapfmt_values)")
	flags.StringVar(&o.sqlKey, FlagSQLKey, "", "SQL resolver key column (default key)")
	flags.StringVar(&o.sqlValue, FlagSQLValue, "", "SQL resolver value column (default value)")
}

// buildFormatter merges the config file with flags and registers resolvers
// in order: comments, values, SQL, environment. The returned close function
// releases the SQL connection.
func (c *cli) buildFormatter(cmd *cobra.Command, o *formatOptions) (*wrapfmt.Formatter, func(), error) {
	noop := func() {}
	config := c.config

	kindNames := config.Wrappers
	if cmd.Flags().Changed(FlagKinds) {
		kindNames = o.kinds
	}
	opts := []wrapfmt.Option{wrapfmt.WithLogger(c.logger)}
	if len(kindNames) > 0 {
		kinds, err := wrapfmt.ParseWrapperKinds(kindNames)
		if err != nil {
			return nil, noop, withCode(ExitCodeUsageError, ErrMsgInvalidOption, err)
		}
		opts = append(opts, wrapfmt.WithWrappers(kinds...))
	}

	strategyName := config.OnError
	if o.onError != "" {
		strategyName = o.onError
	}
	if strategyName != "" {
		strategy, err := wrapfmt.ParseErrorStrategy(strategyName)
		if err != nil {
			return nil, noop, withCode(ExitCodeUsageError, ErrMsgInvalidOption, err)
		}
		opts = append(opts, wrapfmt.WithErrorStrategy(strategy))
	}

	values, err := mergeValues(config.Values, append(append([]string{}, config.Data...), o.data...), o.sets)
	if err != nil {
		return nil, noop, withCode(ExitCodeInputError, ErrMsgInvalidData, err)
	}
	c.logger.Debug(LogMsgDataLoaded, zap.Int(LogFieldKeys, len(values)))

	f, err := wrapfmt.New(opts...)
	if err != nil {
		return nil, noop, withCode(ExitCodeUsageError, ErrMsgInvalidOption, err)
	}

	if o.comments || config.Comments {
		f.MustRegister(wrapfmt.NewCommentResolver())
	}
	f.MustRegister(wrapfmt.NewMapResolver(values, wrapfmt.WithTrimSpace()))

	closeFn := noop
	sqlConfig := mergeSQLConfig(config.SQL, o)
	if sqlConfig.DSN != "" {
		r, err := sqlresolver.Open(sqlConfig.Driver, sqlConfig.DSN, sqlresolver.Config{
			Table:       sqlConfig.Table,
			KeyColumn:   sqlConfig.KeyColumn,
			ValueColumn: sqlConfig.ValueColumn,
			TrimSpace:   true,
			Logger:      c.logger,
		})
		if err != nil {
			return nil, noop, withCode(ExitCodeInputError, ErrMsgSQLOpenFailed, err)
		}
		f.MustRegister(r)
		closeFn = func() { _ = r.Close() }
	}

	if o.env || config.Env {
		f.MustRegister(wrapfmt.NewEnvResolver())
	}

	c.logger.Debug(LogMsgResolverChain, zap.Strings(LogFieldResolvers, f.Resolvers()))
	return f, closeFn, nil
}

// mergeSQLConfig lets non-empty flags override the config file
func mergeSQLConfig(base sqlFileConfig, o *formatOptions) sqlFileConfig {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&base.Driver, o.sqlDriver)
	override(&base.DSN, o.sqlDSN)
	override(&base.Table, o.sqlTable)
	override(&base.KeyColumn, o.sqlKey)
	override(&base.ValueColumn, o.sqlValue)
	if base.Driver == "" {
		base.Driver = sqlresolver.DialectSQLite
	}
	return base
}
