package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli holds the streams and global flags shared by all commands
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool

	config *fileConfig
	logger *zap.Logger
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           CLIName,
		Short:         CLIDescription,
		Long:          CLILong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&c.configPath, FlagConfig, FlagConfigShort, "", "config file (.yaml, .yml, .toml or .json)")
	root.PersistentFlags().BoolVarP(&c.verbose, FlagVerbose, FlagVerboseShort, false, "log debug output to stderr")

	root.AddCommand(
		newRenderCommand(c),
		newTokensCommand(c),
		newCheckCommand(c),
		newVersionCommand(c),
	)
	return root
}

// setup loads the config file and builds the logger
func (c *cli) setup() error {
	if c.verbose {
		c.logger = newDevelopmentLogger(c.stderr)
	}

	config, err := loadConfig(c.configPath)
	if err != nil {
		return withCode(ExitCodeInputError, ErrMsgInvalidConfig, err)
	}
	c.config = config
	if c.configPath != "" {
		c.logger.Debug(LogMsgConfigLoaded, zap.String(LogFieldPath, c.configPath))
	}
	return nil
}

// newDevelopmentLogger mirrors zap.NewDevelopment but writes to w
func newDevelopmentLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development())
}
