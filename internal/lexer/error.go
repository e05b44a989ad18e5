package lexer

import (
	"ember-lang/internal/diag"
	"ember-lang/internal/span"
	"ember-lang/internal/token"
	"fmt"
)

// Error is a recoverable lexer-stage error.
type Error struct {
	title       string
	position    string
	description string
}

// NewError creates a lexer error positioned at s.
func NewError(title, description string, s span.Span) Error {
	return Error{
		title:       title,
		position:    s.String(),
		description: description,
	}
}

func illegalChar(tok token.Token) Error {
	return NewError("Illegal char", fmt.Sprintf("Couldn't lex this char %q", tok.Char), tok.Span)
}

func (e Error) ID() uint            { return diag.StageLexer }
func (e Error) Title() string       { return e.title }
func (e Error) Summary() string     { return e.position }
func (e Error) Description() string { return e.description }
func (e Error) Stage() string       { return "Lexer" }

func (e Error) String() string {
	return diag.Format(e)
}

func (e Error) Error() string {
	return diag.Format(e)
}
