// Package lexer implements the lexical analysis (tokenization) for ember-lang.
package lexer

import (
	"ember-lang/internal/diag"
	"ember-lang/internal/span"
	"ember-lang/internal/token"
	"iter"
	"strconv"
	"unicode/utf8"
)

// Lexer tokenizes source code into a sequence of tokens. Errors are reported
// into a caller-owned sink and never stop the scan.
type Lexer struct {
	source string

	pos  int  // current read position in source
	line uint // current line (1-based)
	col  uint // current column (1-based)

	columnReset bool
	done        bool

	errs diag.Reporter[Error]
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithColumnReset controls whether the column counter returns to 1 after a
// newline. It is off by default: a newline advances the line and leaves the
// column where it was.
func WithColumnReset(reset bool) Option {
	return func(l *Lexer) {
		l.columnReset = reset
	}
}

// New creates a Lexer over source that reports into errs. The sink must
// outlive the Lexer and must not be written by anyone else while scanning.
// A nil sink is replaced by a private bucket.
func New(source string, errs diag.Reporter[Error], opts ...Option) *Lexer {
	if errs == nil {
		errs = diag.NewBucket[Error]()
	}
	l := &Lexer{
		source: source,
		pos:    0,
		line:   1,
		col:    1,
		errs:   errs,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next returns the next token. It returns false once the end of input is
// reached; the EOF token itself is never returned. An illegal character is
// reported into the sink and still returned as an ILLEGAL token.
func (l *Lexer) Next() (token.Token, bool) {
	if l.done {
		return token.Token{}, false
	}

	tok := l.scanOne()
	switch tok.Kind {
	case token.EOF:
		l.done = true
		return token.Token{}, false
	case token.ILLEGAL:
		l.errs.Report(illegalChar(tok))
	}
	return tok, true
}

// All returns an iterator over the remaining tokens.
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize scans the rest of the source and returns all tokens.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for tok := range l.All() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// ---- internal helpers ----

// peek returns the current byte without advancing, or 0 if at end.
func (l *Lexer) peek() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes the current character and returns it.
func (l *Lexer) advance() rune {
	ch, size := rune(l.source[l.pos]), 1
	if ch >= utf8.RuneSelf {
		ch, size = utf8.DecodeRuneInString(l.source[l.pos:])
	}
	l.pos += size
	if ch == '\n' || ch == '\r' {
		l.line++
		if l.columnReset {
			l.col = 1
		}
	} else {
		l.col++
	}
	return ch
}

// curPos returns the current position as a span.
func (l *Lexer) curPos() span.Span {
	return span.Span{Line: l.line, Col: l.col}
}

// ---- token reading ----

func (l *Lexer) scanOne() token.Token {
	for l.pos < len(l.source) {
		start := l.curPos()
		ch := l.advance()

		switch {
		case ch == ' ', ch == '\n', ch == '\r':
			continue
		case isDigit(ch):
			return l.readNumber(start)
		case isLetter(ch):
			return l.readIdentifier(start)
		default:
			return token.Symbol(ch, start)
		}
	}
	return token.EOFToken(l.curPos())
}

// readNumber reads the rest of a digit run whose first digit was consumed.
func (l *Lexer) readNumber(start span.Span) token.Token {
	numStart := l.pos - 1
	for l.pos < len(l.source) && isDigit(rune(l.peek())) {
		l.advance()
	}

	digits := l.source[numStart:l.pos]
	n, err := strconv.ParseUint(digits, 10, strconv.IntSize)
	if err != nil {
		l.errs.Report(NewError("Couldn't parse the number",
			"'"+digits+"' does not fit in an unsigned integer", start))
		n = 0
	}
	return token.Number(uint(n), start)
}

// readIdentifier reads the rest of a letter run whose first letter was consumed.
func (l *Lexer) readIdentifier(start span.Span) token.Token {
	identStart := l.pos - 1
	for l.pos < len(l.source) && isLetter(rune(l.peek())) {
		l.advance()
	}
	return token.LookupIdent(l.source[identStart:l.pos], start)
}

// ---- character classification ----

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
