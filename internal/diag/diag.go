// Package diag provides the error sink shared between a compiler stage and its caller.
package diag

import "fmt"

// Stage codes identify which compiler phase produced an error.
const (
	StageLexer  uint = 0x1
	StageParser uint = 0x2
)

// CompilerError is the contract every stage error satisfies.
type CompilerError interface {
	ID() uint            // stage code, e.g. StageLexer
	Title() string       // generalized description
	Summary() string     // rendered "line:col" label
	Description() string // more detail
	Stage() string       // phase name, e.g. "Lexer"
}

// Format renders err as "<stage> | <title> at <summary> => <description>".
func Format(err CompilerError) string {
	return fmt.Sprintf("%s | %s at %s => %s", err.Stage(), err.Title(), err.Summary(), err.Description())
}

// Reporter accumulates errors without halting the producer.
type Reporter[E any] interface {
	Report(err E)
	HasErrors() bool
	Errors() []E
}

// Bucket is an append-only, ordered Reporter. It is not safe for concurrent
// use: a single producer writes, and the owner reads between or after writes.
type Bucket[E any] struct {
	errors []E
}

// NewBucket returns an empty bucket.
func NewBucket[E any]() *Bucket[E] {
	return &Bucket[E]{}
}

// Report appends err. It never fails.
func (b *Bucket[E]) Report(err E) {
	b.errors = append(b.errors, err)
}

// HasErrors returns true if at least one error was reported.
func (b *Bucket[E]) HasErrors() bool {
	return len(b.errors) > 0
}

// Errors returns the reported errors in report order. The slice is shared
// with the bucket and must not be modified.
func (b *Bucket[E]) Errors() []E {
	return b.errors
}

// Len returns the number of reported errors.
func (b *Bucket[E]) Len() int {
	return len(b.errors)
}
