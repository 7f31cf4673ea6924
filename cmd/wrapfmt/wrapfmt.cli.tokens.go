package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/itsatony/go-wrapfmt"
	"github.com/spf13/cobra"
)

// tokensConfig holds parsed tokens command configuration
type tokensConfig struct {
	templatePath string
	inline       string
	format       string
	color        string
	kinds        []string
}

// tokenOutput is one node in JSON output
type tokenOutput struct {
	Type   string `json:"type"`
	Kind   string `json:"kind,omitempty"`
	Text   string `json:"text"`
	Raw    string `json:"raw"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func newTokensCommand(c *cli) *cobra.Command {
	cfg := &tokensConfig{}

	cmd := &cobra.Command{
		Use:   CmdNameTokens,
		Short: "Print the text and placeholder nodes of a template",
		Example: `  wrapfmt tokens -i 'Hi {{ user }}, \{literal\}'
  wrapfmt tokens -t page.html --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTokens(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, FlagDefaultTemplate, `template file ("-" for stdin)`)
	cmd.Flags().StringVarP(&cfg.inline, FlagInline, FlagInlineShort, "", "template text given directly")
	cmd.Flags().StringVarP(&cfg.format, FlagFormat, FlagFormatShort, OutputFormatPretty, "output format (pretty|json)")
	cmd.Flags().StringVar(&cfg.color, FlagColor, FlagDefaultColor, "colorize pretty output (auto|on|off)")
	cmd.Flags().StringSliceVarP(&cfg.kinds, FlagKinds, FlagKindsShort, nil, "wrapper kinds to recognise (default all)")
	return cmd
}

func (c *cli) runTokens(cmd *cobra.Command, cfg *tokensConfig) error {
	if cfg.format != OutputFormatPretty && cfg.format != OutputFormatJSON {
		return withCode(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
	}
	if cfg.color != ColorAuto && cfg.color != ColorOn && cfg.color != ColorOff {
		return withCode(ExitCodeUsageError, ErrMsgInvalidColor, nil)
	}

	source, err := c.readTemplate(cmd, cfg.templatePath, cfg.inline)
	if err != nil {
		return err
	}

	kindNames := c.config.Wrappers
	if cmd.Flags().Changed(FlagKinds) {
		kindNames = cfg.kinds
	}
	opts := []wrapfmt.Option{wrapfmt.WithLogger(c.logger)}
	if len(kindNames) > 0 {
		kinds, err := wrapfmt.ParseWrapperKinds(kindNames)
		if err != nil {
			return withCode(ExitCodeUsageError, ErrMsgInvalidOption, err)
		}
		opts = append(opts, wrapfmt.WithWrappers(kinds...))
	}
	f, err := wrapfmt.New(opts...)
	if err != nil {
		return withCode(ExitCodeUsageError, ErrMsgInvalidOption, err)
	}

	nodes := f.Tokenize(source)
	if cfg.format == OutputFormatJSON {
		return writeTokensJSON(c.stdout, nodes)
	}
	writeTokensPretty(c.stdout, nodes, cfg.color)
	return nil
}

func writeTokensJSON(w io.Writer, nodes []wrapfmt.Node) error {
	out := make([]tokenOutput, 0, len(nodes))
	for _, node := range nodes {
		pos := node.Pos()
		tok := tokenOutput{
			Type:   node.Type().String(),
			Raw:    node.Raw(),
			Offset: pos.Offset,
			Line:   pos.Line,
			Column: pos.Column,
		}
		switch n := node.(type) {
		case *wrapfmt.Text:
			tok.Text = n.Content
		case *wrapfmt.Item:
			tok.Kind = n.Wrapper.String()
			tok.Text = n.Text
		}
		out = append(out, tok)
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return withCode(ExitCodeError, ErrMsgJSONMarshalFailed, err)
	}
	fmt.Fprintln(w, string(jsonBytes))
	return nil
}

func writeTokensPretty(w io.Writer, nodes []wrapfmt.Node, mode string) {
	posColor := color.New(color.Faint)
	textColor := color.New(color.FgWhite)
	itemColor := color.New(color.FgCyan, color.Bold)
	for _, c := range []*color.Color{posColor, textColor, itemColor} {
		switch mode {
		case ColorOn:
			c.EnableColor()
		case ColorOff:
			c.DisableColor()
		}
	}

	for _, node := range nodes {
		pos := node.Pos()
		position := posColor.Sprintf("%d:%d", pos.Line, pos.Column)

		var kind, text string
		switch n := node.(type) {
		case *wrapfmt.Text:
			kind = textColor.Sprint(TokensKindText)
			text = strconv.Quote(n.Content)
		case *wrapfmt.Item:
			kind = itemColor.Sprint(n.Wrapper.String())
			text = strconv.Quote(n.Text)
		}
		fmt.Fprintf(w, TokensTextNode+FmtNewline, position, kind, text)
	}
}
