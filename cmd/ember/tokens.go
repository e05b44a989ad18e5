package main

import (
	"fmt"
	"io"
	"os"

	"ember-lang/internal/config"
	"ember-lang/internal/diag"
	"ember-lang/internal/lexer"
	"ember-lang/internal/token"

	"github.com/spf13/cobra"
)

// sample is the input scanned by the demo command.
const sample = `12345 999999 "Bruh" 123456 let bruh +-/*()[] 0b @`

func newTokensCmd(a *app) *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Tokenize a file and print tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if jsonMode {
				a.cfg.Output = config.OutputJSON
			}
			return a.scan(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], source)
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print tokens as JSON")
	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Scan the built-in sample input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.scan(cmd.OutOrStdout(), cmd.ErrOrStderr(), "<demo>", sample)
		},
	}
}

func readSource(stdin io.Reader, filename string) (string, error) {
	if filename == "-" {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(source), nil
	}
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return string(source), nil
}

// scan tokenizes source and writes tokens and errors in the configured format.
func (a *app) scan(stdout, stderr io.Writer, name, source string) error {
	a.log.Debug("scanning", "file", name, "bytes", len(source))

	errs := diag.NewBucket[lexer.Error]()
	tokens := lexer.New(source, errs, a.cfg.LexerOptions()...).Tokenize()

	a.log.Debug("scan finished", "file", name, "tokens", len(tokens), "errors", errs.Len())

	if a.cfg.Output == config.OutputJSON {
		if err := printTokensJSON(stdout, tokens, errs.Errors()); err != nil {
			return err
		}
	} else {
		p := newPrinter(a.cfg.Color)
		p.printTokens(stdout, tokens)
		p.printErrors(stderr, errs.Errors())
	}

	if errs.HasErrors() {
		return errLexErrors
	}
	return nil
}

// scanLine is the REPL variant of scan: text output only, errors inline.
func (a *app) scanLine(w io.Writer, p printer, line string) []token.Token {
	errs := diag.NewBucket[lexer.Error]()
	tokens := lexer.New(line, errs, a.cfg.LexerOptions()...).Tokenize()
	p.printTokens(w, tokens)
	p.printErrors(w, errs.Errors())
	return tokens
}
