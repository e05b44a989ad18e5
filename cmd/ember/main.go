// Command ember is the CLI entry point for the ember-lang scanner.
//
// Usage:
//
//	ember tokens <file|->          Print tokens and lexer errors
//	ember tokens <file|-> --json   Print tokens and lexer errors as JSON
//	ember demo                     Scan the built-in sample
//	ember repl                     Start interactive token REPL
//	ember version                  Print version information
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"ember-lang/internal/config"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

// errLexErrors signals that scanning reported errors; output has already been written.
var errLexErrors = errors.New("lexer reported errors")

// app carries the state shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg config.Config
	log *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errLexErrors) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "ember",
		Short:         "ember-lang lexical scanner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml), default $"+config.EnvVar)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTokensCmd(a),
		newDemoCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the config and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}
	if a.noColor {
		cfg.Color = false
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	a.log.Debug("config loaded", "file", a.cfgFile, "column_reset", cfg.ColumnReset, "output", cfg.Output)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ember v%s (%s)\n", Version, GitCommit)
		},
	}
}
