package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	bannerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
)

const prompt = "ember> "

// lineReader is the part of *readline.Instance the REPL loop needs.
type lineReader interface {
	Readline() (string, error)
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive token REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
}

func (a *app) repl() error {
	p := newPrinter(a.cfg.Color)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            p.paint(promptStyle, prompt),
		HistoryFile:       a.cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		p.paint(bannerStyle, "ember-lang token REPL"),
		p.paint(spanStyle, "(type 'exit' or Ctrl+D to quit)"))

	a.log.Debug("repl started", "history", a.cfg.HistoryFile)
	return a.replLoop(rl, rl.Stdout(), p)
}

// replLoop scans each line with a fresh error sink until exit or EOF.
func (a *app) replLoop(rl lineReader, w io.Writer, p printer) error {
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Fprintf(w, "%s\n", p.paint(spanStyle, "(use 'exit' or Ctrl+D to quit)"))
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(w)
				return nil
			}
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit":
			return nil
		case "":
			continue
		}

		a.scanLine(w, p, line)
	}
}
