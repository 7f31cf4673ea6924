package main

import (
	"github.com/spf13/cobra"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	inline       string
	outputPath   string
	format       formatOptions
}

func newRenderCommand(c *cli) *cobra.Command {
	cfg := &renderConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameRender,
		Short: "Substitute placeholders and print the result",
		Example: `  wrapfmt render -t greeting.txt -d data.json
  wrapfmt render -i 'Hello, {name}!' --set name=Ada
  cat notes.md | wrapfmt render --env --comments -o notes.out.md
  wrapfmt render -t mail.txt --sql-driver postgres --sql-dsn "$DATABASE_URL"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, FlagDefaultTemplate, `template file ("-" for stdin)`)
	cmd.Flags().StringVarP(&cfg.inline, FlagInline, FlagInlineShort, "", "template text given directly")
	cmd.Flags().StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, `output file ("-" for stdout)`)
	bindFormatFlags(cmd, &cfg.format)
	return cmd
}

func (c *cli) runRender(cmd *cobra.Command, cfg *renderConfig) error {
	source, err := c.readTemplate(cmd, cfg.templatePath, cfg.inline)
	if err != nil {
		return err
	}

	f, closeFn, err := c.buildFormatter(cmd, &cfg.format)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := f.Format(cmd.Context(), source)
	if err != nil {
		return withCode(ExitCodeError, ErrMsgFormatFailed, err)
	}

	if err := writeOutput(cfg.outputPath, []byte(result), c.stdout); err != nil {
		return withCode(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// readTemplate returns the inline text or the template file contents
func (c *cli) readTemplate(cmd *cobra.Command, path, inline string) (string, error) {
	if cmd.Flags().Changed(FlagInline) {
		if cmd.Flags().Changed(FlagTemplate) {
			return "", withCode(ExitCodeUsageError, ErrMsgBothTemplateInputs, nil)
		}
		return inline, nil
	}

	content, err := readInput(path, c.stdin)
	if err != nil {
		msg := ErrMsgReadFileFailed
		if path == InputSourceStdin {
			msg = ErrMsgReadStdinFailed
		}
		return "", withCode(ExitCodeInputError, msg, err)
	}
	return string(content), nil
}
