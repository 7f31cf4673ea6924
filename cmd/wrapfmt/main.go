package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.err != nil {
			fmt.Fprintf(stderr, FmtError, exitErr.err)
		}
		return exitErr.code
	}

	// Flag and argument errors from cobra
	fmt.Fprintf(stderr, FmtError, err)
	return ExitCodeUsageError
}

// exitError carries a process exit code through cobra's RunE
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// withCode wraps err with an exit code and a constant message
func withCode(code int, msg string, err error) error {
	if err == nil {
		return &exitError{code: code, err: errors.New(msg)}
	}
	return &exitError{code: code, err: fmt.Errorf(FmtErrorWithCause, msg, err)}
}
