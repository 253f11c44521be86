// Package linker is the reference-recognition and classification engine:
// it scans rendered documentation text for quoted symbol references,
// classifies each against the symbol registry, and leaves interactive
// annotations in the buffer.
package linker

import (
	"doclink/internal/buffer"
	"doclink/internal/detail"
)

// ContextKeyword is the disambiguating word class found immediately before
// a quoted reference.
type ContextKeyword int

const (
	KeywordNone ContextKeyword = iota
	KeywordVariable
	KeywordFunction
	KeywordFace
	KeywordSymbol
	KeywordDefinition
)

func (k ContextKeyword) String() string {
	switch k {
	case KeywordVariable:
		return "variable"
	case KeywordFunction:
		return "function"
	case KeywordFace:
		return "face"
	case KeywordSymbol:
		return "symbol"
	case KeywordDefinition:
		return "definition"
	default:
		return "none"
	}
}

// MatchRecord is one pattern match: the quoted symbol text, its span over
// the source (delimiters excluded), and the preceding keyword class.
// Ephemeral; consumed immediately by the classifier.
type MatchRecord struct {
	Span    buffer.Span
	Symbol  string
	Keyword ContextKeyword
}

// Activation is the outcome of activating an annotation: a detail view,
// an informational message, or both.
type Activation struct {
	View    *detail.View `json:"view,omitempty"`
	Message string       `json:"message,omitempty"`
}

// ActivationFunc produces the detail view for an activated annotation.
type ActivationFunc func(symbol string, extra ...any) (*Activation, error)

// Descriptor is the static configuration of one linkable category.
// Immutable after Config construction.
type Descriptor struct {
	Category buffer.Category
	Exists   func(symbol string) bool // nil for lazily resolved categories
	Activate ActivationFunc
	Hint     string
}

// GenericDescriptor is one entry of the ordered generic-symbol fallback:
// a predicate probed when no context keyword matched, and the describe
// function used when its link is activated. The list is append-only and
// consulted in registration order.
type GenericDescriptor struct {
	Kind     string
	Exists   func(symbol string) bool
	Describe func(symbol string) *detail.View
}

// Hover hints per category.
const (
	HintVariable   = "describe this variable"
	HintFunction   = "describe this function"
	HintFace       = "describe this face"
	HintSymbol     = "describe this symbol"
	HintDefinition = "view the source code"
)

// Config is the process-wide linker configuration, constructed once at
// startup and never mutated afterwards.
type Config struct {
	descriptors map[buffer.Category]*Descriptor
	generics    []GenericDescriptor
}

// Descriptor returns the descriptor for a category, or nil.
func (c *Config) Descriptor(cat buffer.Category) *Descriptor {
	return c.descriptors[cat]
}

// Generics returns the ordered generic-symbol fallback list.
func (c *Config) Generics() []GenericDescriptor {
	return c.generics
}
