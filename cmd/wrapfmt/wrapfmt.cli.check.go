package main

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-wrapfmt"
	"github.com/spf13/cobra"
)

// errUnresolved marks a check that found unresolved placeholders
var errUnresolved = errors.New(ErrMsgUnresolvedFound)

// checkConfig holds parsed check command configuration
type checkConfig struct {
	templatePath string
	inline       string
	strict       bool
	format       formatOptions
}

func newCheckCommand(c *cli) *cobra.Command {
	cfg := &checkConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameCheck,
		Short: "Report placeholders that no resolver handles",
		Long: `check formats the template like render but prints a report instead of
the output. Unresolved placeholders are listed with their position and
similar known keys. The exit code is 3 when any placeholder is unresolved
and --strict is set, or when a resolver fails.`,
		Example: `  wrapfmt check -t mail.txt -d data.yaml --strict`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, FlagDefaultTemplate, `template file ("-" for stdin)`)
	cmd.Flags().StringVarP(&cfg.inline, FlagInline, FlagInlineShort, "", "template text given directly")
	cmd.Flags().BoolVar(&cfg.strict, FlagStrictMode, false, "exit non-zero when any placeholder is unresolved")
	bindFormatFlags(cmd, &cfg.format)
	return cmd
}

func (c *cli) runCheck(cmd *cobra.Command, cfg *checkConfig) error {
	source, err := c.readTemplate(cmd, cfg.templatePath, cfg.inline)
	if err != nil {
		return err
	}

	f, closeFn, err := c.buildFormatter(cmd, &cfg.format)
	if err != nil {
		return err
	}
	defer closeFn()

	trace, _ := f.Trace(cmd.Context(), source)
	for _, item := range trace.Items {
		switch item.Outcome {
		case wrapfmt.OutcomeUnresolved:
			line := fmt.Sprintf(CheckTextUnresolved, item.Position, item.Raw)
			if hint := item.Hint(); hint != "" {
				line += fmt.Sprintf(CheckTextHint, hint)
			}
			fmt.Fprintln(c.stdout, line)
		case wrapfmt.OutcomeFailed:
			fmt.Fprintf(c.stdout, CheckTextFailed+FmtNewline, item.Position, item.Raw, item.Err)
		}
	}

	resolved, unresolved, failed := len(trace.Resolved()), len(trace.Unresolved()), len(trace.Failed())
	if unresolved == 0 && failed == 0 {
		fmt.Fprintln(c.stdout, CheckTextOK)
	}
	fmt.Fprintf(c.stdout, CheckTextSummary+FmtNewline, len(trace.Items), resolved, unresolved, failed)

	if trace.Err != nil {
		return withCode(ExitCodeUnresolved, ErrMsgFormatFailed, trace.Err)
	}
	if cfg.strict && unresolved > 0 {
		return &exitError{code: ExitCodeUnresolved, err: errUnresolved}
	}
	return nil
}
