package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X main.version=..."
var (
	version   = VersionUnknown
	commit    = VersionUnknown
	buildTime = VersionUnknown
)

// versionOutput represents JSON output for version
type versionOutput struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

func newVersionCommand(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   CmdNameVersion,
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != OutputFormatText && format != OutputFormatJSON {
				return withCode(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
			}
			return writeVersion(c.stdout, format)
		},
	}
	cmd.Flags().StringVarP(&format, FlagFormat, FlagFormatShort, OutputFormatText, "output format (text|json)")
	return cmd
}

func writeVersion(w io.Writer, format string) error {
	v := versionOutput{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if format == OutputFormatJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return withCode(ExitCodeError, ErrMsgJSONMarshalFailed, err)
		}
		fmt.Fprintln(w, string(jsonBytes))
		return nil
	}

	fmt.Fprintf(w, VersionTextTemplate+FmtNewline, v.Version, v.Commit, v.BuildTime, v.GoVersion)
	return nil
}
