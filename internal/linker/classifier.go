package linker

import (
	"doclink/internal/buffer"
	"doclink/internal/registry"
)

// Classifier decides a match's category using its context keyword and
// existence probes against the registry. Probes are not cached; each scan
// re-probes.
type Classifier struct {
	reg registry.Registry
	cfg *Config
}

// NewClassifier creates a classifier over a registry and linker config.
func NewClassifier(reg registry.Registry, cfg *Config) *Classifier {
	return &Classifier{reg: reg, cfg: cfg}
}

// Classify returns the reference category for a match. Branch order is
// load-bearing: the "symbol"/"program"/"property" opt-out must win over
// the generic fallback, and definition-source references skip the location
// probe entirely (the activation handler resolves it lazily).
func (c *Classifier) Classify(m MatchRecord) buffer.Category {
	switch m.Keyword {
	case KeywordVariable:
		if c.reg.IsVariable(m.Symbol) {
			return buffer.CategoryVariable
		}
		return buffer.CategoryUnlinked

	case KeywordFunction:
		if c.reg.IsFunction(m.Symbol) {
			return buffer.CategoryFunction
		}
		return buffer.CategoryUnlinked

	case KeywordFace:
		if c.reg.IsFace(m.Symbol) {
			return buffer.CategoryFace
		}
		return buffer.CategoryUnlinked

	case KeywordSymbol:
		// Explicit opt-out: the author did not intend a link.
		return buffer.CategoryUnlinked

	case KeywordDefinition:
		// No location probe here; names that are not known identifiers
		// still never link.
		if c.reg.Known(m.Symbol) {
			return buffer.CategoryDefinition
		}
		return buffer.CategoryUnlinked

	default:
		for _, g := range c.cfg.Generics() {
			if g.Exists(m.Symbol) {
				return buffer.CategorySymbol
			}
		}
		return buffer.CategoryUnlinked
	}
}
