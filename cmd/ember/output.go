package main

import (
	"encoding/json"
	"fmt"
	"io"

	"ember-lang/internal/lexer"
	"ember-lang/internal/token"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	errorColor  = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")
	kwColor     = lipgloss.Color("#F59E0B")

	kindStyle    = lipgloss.NewStyle().Foreground(accentColor)
	keywordStyle = lipgloss.NewStyle().Foreground(kwColor).Bold(true)
	illegalStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	spanStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
)

// printer renders tokens and errors as text, optionally styled.
type printer struct {
	color bool
}

func newPrinter(color bool) printer {
	return printer{color: color}
}

func (p printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p printer) printTokens(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		style := kindStyle
		switch tok.Kind {
		case token.KEYWORD:
			style = keywordStyle
		case token.ILLEGAL:
			style = illegalStyle
		}
		fmt.Fprintf(w, "%s %s\n",
			p.paint(style, fmt.Sprintf("%-28s", tok.String())),
			p.paint(spanStyle, tok.Span.String()))
	}
}

func (p printer) printErrors(w io.Writer, errs []lexer.Error) {
	for _, err := range errs {
		fmt.Fprintln(w, p.paint(errorStyle, err.String()))
	}
}

type tokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	Line uint   `json:"line"`
	Col  uint   `json:"col"`
}

type errorJSON struct {
	ID          uint   `json:"id"`
	Stage       string `json:"stage"`
	Title       string `json:"title"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

func printTokensJSON(w io.Writer, tokens []token.Token, errs []lexer.Error) error {
	toks := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind: tok.Kind.String(),
			Text: tok.Text(),
			Line: tok.Span.Line,
			Col:  tok.Span.Col,
		})
	}

	diags := make([]errorJSON, 0, len(errs))
	for _, err := range errs {
		diags = append(diags, errorJSON{
			ID:          err.ID(),
			Stage:       err.Stage(),
			Title:       err.Title(),
			Position:    err.Summary(),
			Description: err.Description(),
		})
	}

	output := map[string]interface{}{
		"tokens": toks,
		"errors": diags,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}
