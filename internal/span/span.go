// Package span provides the source position type attached to every token.
package span

import "fmt"

// Span is the 1-based position of the first character of a token.
type Span struct {
	Line uint `json:"line"`
	Col  uint `json:"col"`
}

// Start returns the position of the first character of a source.
func Start() Span {
	return Span{Line: 1, Col: 1}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Before reports whether s comes strictly before o in scan order.
func (s Span) Before(o Span) bool {
	if s.Line != o.Line {
		return s.Line < o.Line
	}
	return s.Col < o.Col
}
