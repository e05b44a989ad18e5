// Package token defines the token types produced by the lexer.
package token

import (
	"ember-lang/internal/span"
	"fmt"
	"strconv"
)

// Kind represents the type of a token.
type Kind int

const (
	// Special tokens
	EOF Kind = iota
	ILLEGAL

	// Operators and punctuation
	EQUAL       // =
	PLUS        // +
	MINUS       // -
	ASTERISK    // *
	SLASH       // /
	DOT         // .
	COLON       // :
	SEMICOLON   // ;
	LESSTHAN    // <
	GREATERTHAN // >
	LBRACKET    // [
	RBRACKET    // ]
	LPAREN      // (
	RPAREN      // )
	QUOTATION   // "

	// Literals
	NUMBER // 123
	IDENT  // foo

	KEYWORD
)

var kindNames = map[Kind]string{
	EOF:     "Eof",
	ILLEGAL: "Illegal",

	EQUAL:       "Equal",
	PLUS:        "Plus",
	MINUS:       "Minus",
	ASTERISK:    "Asterisk",
	SLASH:       "Slash",
	DOT:         "Dot",
	COLON:       "Colon",
	SEMICOLON:   "Semicolon",
	LESSTHAN:    "Lessthan",
	GREATERTHAN: "Greaterthan",
	LBRACKET:    "LeftSquareBracket",
	RBRACKET:    "RightSquareBracket",
	LPAREN:      "LeftParent",
	RPAREN:      "RightParent",
	QUOTATION:   "Quotation",

	NUMBER:  "Number",
	IDENT:   "Identifier",
	KEYWORD: "Keyword",
}

// String returns the variant name for a token kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsSymbol returns true if the kind is a single-character operator or punctuation.
func (k Kind) IsSymbol() bool {
	return k >= EQUAL && k <= QUOTATION
}

var symbols = map[rune]Kind{
	'=': EQUAL,
	'<': LESSTHAN,
	'>': GREATERTHAN,
	':': COLON,
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	'.': DOT,
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'"': QUOTATION,
}

var symbolChars = func() map[Kind]rune {
	m := make(map[Kind]rune, len(symbols))
	for ch, k := range symbols {
		m[k] = ch
	}
	return m
}()

// LookupChar returns the operator or punctuation kind for ch, or ILLEGAL.
func LookupChar(ch rune) Kind {
	if kind, ok := symbols[ch]; ok {
		return kind
	}
	return ILLEGAL
}

// Keyword identifies one of the reserved words.
type Keyword int

const (
	LET Keyword = iota
	FUNCTION
	RETURN
	IF
	ELSE
)

var keywordNames = [...]string{
	LET:      "Let",
	FUNCTION: "Function",
	RETURN:   "Return",
	IF:       "If",
	ELSE:     "Else",
}

var keywordSpellings = [...]string{
	LET:      "let",
	FUNCTION: "fn",
	RETURN:   "return",
	IF:       "if",
	ELSE:     "else",
}

func (k Keyword) String() string {
	if k >= 0 && int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// Spelling returns the source text of the keyword.
func (k Keyword) Spelling() string {
	if k >= 0 && int(k) < len(keywordSpellings) {
		return keywordSpellings[k]
	}
	return ""
}

var keywords = map[string]Keyword{
	"let":    LET,
	"fn":     FUNCTION,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
}

// Token represents a lexical token with its kind, payload and source location.
// Only the payload field matching Kind is meaningful.
type Token struct {
	Kind    Kind
	Char    rune    // ILLEGAL
	Number  uint    // NUMBER
	Ident   string  // IDENT
	Keyword Keyword // KEYWORD
	Span    span.Span
}

// LookupIdent classifies a scanned letter run as a keyword or an identifier.
// Matching is exact and case-sensitive.
func LookupIdent(ident string, s span.Span) Token {
	if kw, ok := keywords[ident]; ok {
		return Token{Kind: KEYWORD, Keyword: kw, Span: s}
	}
	return Token{Kind: IDENT, Ident: ident, Span: s}
}

// Symbol classifies ch as an operator or punctuation token, or an ILLEGAL
// token carrying ch.
func Symbol(ch rune, s span.Span) Token {
	kind := LookupChar(ch)
	if kind == ILLEGAL {
		return Illegal(ch, s)
	}
	return Token{Kind: kind, Span: s}
}

func Illegal(ch rune, s span.Span) Token {
	return Token{Kind: ILLEGAL, Char: ch, Span: s}
}

func Number(n uint, s span.Span) Token {
	return Token{Kind: NUMBER, Number: n, Span: s}
}

func Ident(name string, s span.Span) Token {
	return Token{Kind: IDENT, Ident: name, Span: s}
}

func KeywordToken(kw Keyword, s span.Span) Token {
	return Token{Kind: KEYWORD, Keyword: kw, Span: s}
}

func EOFToken(s span.Span) Token {
	return Token{Kind: EOF, Span: s}
}

// Text returns the source text the token was scanned from. Malformed numbers
// render as "0", the value they were replaced with.
func (t Token) Text() string {
	switch t.Kind {
	case ILLEGAL:
		return string(t.Char)
	case NUMBER:
		return strconv.FormatUint(uint64(t.Number), 10)
	case IDENT:
		return t.Ident
	case KEYWORD:
		return t.Keyword.Spelling()
	case EOF:
		return ""
	default:
		return string(symbolChars[t.Kind])
	}
}

// String returns the variant form of the token, e.g. Number(42) or Illegal('@').
func (t Token) String() string {
	switch t.Kind {
	case ILLEGAL:
		return fmt.Sprintf("Illegal(%q)", t.Char)
	case NUMBER:
		return fmt.Sprintf("Number(%d)", t.Number)
	case IDENT:
		return fmt.Sprintf("Identifier(%q)", t.Ident)
	case KEYWORD:
		return fmt.Sprintf("Keyword(%s)", t.Keyword)
	default:
		return t.Kind.String()
	}
}

// Same reports whether t and o are the same token ignoring position.
func (t Token) Same(o Token) bool {
	t.Span, o.Span = span.Span{}, span.Span{}
	return t == o
}
