// Package wrapfmt formats strings containing wrapped placeholders.
//
// A template is plain text interleaved with placeholders in one of six
// bracket styles:
//
//	{{{name}}}  triple curly
//	${name}     dollar curly
//	{{name}}    double curly
//	{#name#}    hash curly
//	{%name%}    percent curly
//	{name}      curly
//
// A backslash makes the next character literal: "\{name\}" renders as
// "{name}". Anything that is not a complete placeholder is text; tokenizing
// never fails.
//
// # Basic Usage
//
// Register resolvers on a Formatter and format input strings:
//
//	f := wrapfmt.MustNew()
//	f.MustRegister(wrapfmt.NewMapResolver(map[string]any{"name": "world"}))
//	out, err := f.Format(ctx, "Hello, {name}!")
//	// out: "Hello, world!"
//
// Resolvers are tried in registration order and the first match wins. A
// placeholder nobody resolves is rendered unchanged, delimiters included:
//
//	out, _ := f.Format(ctx, "{unknown}")
//	// out: "{unknown}"
//
// # Custom Resolvers
//
// A resolver reports whether it handles the placeholder:
//
//	f.RegisterFunc("upper", func(ctx context.Context, item *wrapfmt.Item) (string, bool, error) {
//	    if item.Wrapper != wrapfmt.WrapperDoubleCurly {
//	        return "", false, nil
//	    }
//	    return strings.ToUpper(strings.TrimSpace(item.Text)), true, nil
//	})
//
// Use ForKinds to restrict any resolver to some wrapper kinds.
//
// # Error Handling
//
// A resolver error stops formatting and is returned to the caller exactly as
// the resolver produced it. WithErrorStrategy selects alternatives that keep
// the raw placeholder, drop it, or log and continue.
//
// # Inspection
//
// Tokenize and Nodes expose the node sequence without formatting. Trace
// formats while recording which resolver handled each placeholder, and
// Inspect summarises placeholders without calling any resolver.
package wrapfmt
