// Package buffer models the host document environment: an in-memory text
// buffer with a user-modified flag, a syntax mode, and an overlay of
// non-overlapping interactive annotations.
package buffer

import (
	"fmt"
	"sort"
)

// SyntaxMode selects the tokenization rules active in a buffer.
type SyntaxMode string

const (
	// SyntaxText is the default tokenization for rendered documentation
	SyntaxText SyntaxMode = "text"
	// SyntaxSymbol treats symbol-constituent punctuation as word characters
	SyntaxSymbol SyntaxMode = "symbol"
)

// Category classifies a reference and determines its activation behavior.
type Category string

const (
	CategoryVariable   Category = "variable"
	CategoryFunction   Category = "function"
	CategoryFace       Category = "face"
	CategorySymbol     Category = "symbol"
	CategoryDefinition Category = "definition-source"
	CategoryUnlinked   Category = "unlinked"
)

// Span is a half-open [Start, End) byte range over buffer text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two spans share at least one position.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Annotation is an interactive span left in a buffer by a scan pass.
type Annotation struct {
	ID     string   `json:"id"`
	Span   Span     `json:"span"`
	Cat    Category `json:"category"`
	Symbol string   `json:"symbol"`
	Hint   string   `json:"hint,omitempty"`
	Extra  []any    `json:"-"`
}

// Buffer is a complete snapshot of rendered documentation text. Annotations
// are appended by scan passes and live for the buffer's lifetime.
type Buffer struct {
	name        string
	text        string
	modified    bool
	syntax      SyntaxMode
	destroyed   bool
	annotations []*Annotation
}

// New creates a buffer holding the given text in text syntax mode.
func New(name, text string) *Buffer {
	return &Buffer{name: name, text: text, syntax: SyntaxText}
}

// Name returns the buffer name.
func (b *Buffer) Name() string { return b.name }

// Text returns the buffer content.
func (b *Buffer) Text() string { return b.text }

// Len returns the content length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

// Modified reports the user-modified flag.
func (b *Buffer) Modified() bool { return b.modified }

// SetModified sets the user-modified flag.
func (b *Buffer) SetModified(v bool) { b.modified = v }

// Syntax returns the active syntax mode.
func (b *Buffer) Syntax() SyntaxMode { return b.syntax }

// SetSyntax switches the active syntax mode. Switching counts as a buffer
// change for the host environment, so the modified flag is raised; callers
// that must not dirty the buffer save and restore the flag themselves.
func (b *Buffer) SetSyntax(m SyntaxMode) {
	if b.destroyed || b.syntax == m {
		return
	}
	b.syntax = m
	b.modified = true
}

// Destroy marks the buffer as gone. Further state changes are no-ops.
func (b *Buffer) Destroy() { b.destroyed = true }

// Destroyed reports whether the buffer has been destroyed.
func (b *Buffer) Destroyed() bool { return b.destroyed }

// Annotations returns the annotations in span order.
func (b *Buffer) Annotations() []*Annotation {
	out := make([]*Annotation, len(b.annotations))
	copy(out, b.annotations)
	return out
}

// AnnotationAt returns the annotation covering pos, or nil.
func (b *Buffer) AnnotationAt(pos int) *Annotation {
	for _, a := range b.annotations {
		if pos >= a.Span.Start && pos < a.Span.End {
			return a
		}
	}
	return nil
}

// Covered reports whether any existing annotation overlaps the span.
func (b *Buffer) Covered(span Span) bool {
	for _, a := range b.annotations {
		if a.Span.Overlaps(span) {
			return true
		}
	}
	return false
}

// Attach adds an annotation to the overlay. It fails if the span is out of
// range or empty, and silently refuses overlap by returning ErrOverlap so
// re-scans stay idempotent.
func (b *Buffer) Attach(a *Annotation) error {
	if a.Span.Start < 0 || a.Span.End > len(b.text) || a.Span.Start >= a.Span.End {
		return fmt.Errorf("annotation span [%d,%d) out of range for buffer of %d bytes",
			a.Span.Start, a.Span.End, len(b.text))
	}
	if b.Covered(a.Span) {
		return ErrOverlap
	}
	b.annotations = append(b.annotations, a)
	sort.Slice(b.annotations, func(i, j int) bool {
		return b.annotations[i].Span.Start < b.annotations[j].Span.Start
	})
	return nil
}

// ErrOverlap is returned by Attach when the span is already annotated.
var ErrOverlap = fmt.Errorf("span already annotated")
