package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/cslint/calc"
	"github.com/dhamidi/cslint/config"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Lint calc scripts and print diagnostics",
		Long: `Lint calc scripts and print diagnostics.

Each file is scanned in full; diagnostics are printed one per line as
file:line:col: severity code message. With no arguments, reads a
script from stdin.

Exits non-zero when any error-severity diagnostic is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(configPath)
			if err != nil {
				// A bad config never blocks the lint itself; the
				// rules just run with their defaults.
				fmt.Fprintf(os.Stderr, "cslint: %v (using default rule settings)\n", err)
				opts = calc.Options{}
			}

			errors := 0
			if len(args) == 0 {
				source, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				errors += report("<stdin>", string(source), opts)
			}
			for _, filename := range args {
				source, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				errors += report(filename, string(source), opts)
			}

			if errors > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a rule config file (default "+config.DefaultName+")")

	return cmd
}

// report lints one document, prints its diagnostics, and returns the
// number of error-severity findings.
func report(name, text string, opts calc.Options) int {
	errors := 0
	for _, d := range calc.Lint(text, opts) {
		if d.Severity == calc.SeverityError {
			errors++
		}
		fmt.Printf("%s:%d:%d: %s %s %s\n",
			name, d.Start.Line+1, d.Start.Character+1,
			severityColor(d.Severity).Sprint(string(d.Severity)),
			d.Code, d.Message)
	}
	return errors
}

func severityColor(s calc.Severity) *color.Color {
	switch s {
	case calc.SeverityWarning:
		return warningColor
	case calc.SeverityInfo:
		return infoColor
	default:
		return errorColor
	}
}
