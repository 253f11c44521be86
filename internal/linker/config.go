package linker

import (
	"doclink/internal/buffer"
	"doclink/internal/detail"
	"doclink/internal/registry"
)

// NewConfig builds the category descriptors over a registry. The generic
// fallback list starts with the built-in function, variable, and face
// describers; extra describers registered by callers are appended after
// them and consulted in that order. The returned config is immutable.
func NewConfig(reg registry.Registry, extra ...GenericDescriptor) *Config {
	generics := append(defaultGenerics(reg), extra...)

	cfg := &Config{
		descriptors: make(map[buffer.Category]*Descriptor),
		generics:    generics,
	}

	describe := func(kind string) ActivationFunc {
		return func(symbol string, extra ...any) (*Activation, error) {
			return &Activation{View: detail.Describe(reg, symbol, kind)}, nil
		}
	}

	cfg.descriptors[buffer.CategoryVariable] = &Descriptor{
		Category: buffer.CategoryVariable,
		Exists:   reg.IsVariable,
		Activate: describe(registry.KindVariable),
		Hint:     HintVariable,
	}
	cfg.descriptors[buffer.CategoryFunction] = &Descriptor{
		Category: buffer.CategoryFunction,
		Exists:   reg.IsFunction,
		Activate: describe(registry.KindFunction),
		Hint:     HintFunction,
	}
	cfg.descriptors[buffer.CategoryFace] = &Descriptor{
		Category: buffer.CategoryFace,
		Exists:   reg.IsFace,
		Activate: describe(registry.KindFace),
		Hint:     HintFace,
	}
	cfg.descriptors[buffer.CategorySymbol] = &Descriptor{
		Category: buffer.CategorySymbol,
		Exists:   reg.Known,
		Activate: func(symbol string, _ ...any) (*Activation, error) {
			for _, g := range generics {
				if g.Exists(symbol) {
					return &Activation{View: g.Describe(symbol)}, nil
				}
			}
			return &Activation{Message: symbol + " is no longer a known symbol"}, nil
		},
		Hint: HintSymbol,
	}
	cfg.descriptors[buffer.CategoryDefinition] = &Descriptor{
		Category: buffer.CategoryDefinition,
		// Resolved lazily at activation time; locating a definition may
		// require loading additional resources.
		Exists: nil,
		Activate: func(symbol string, _ ...any) (*Activation, error) {
			file, line := reg.FindDefinition(symbol)
			if file == "" {
				return &Activation{Message: MsgNoDefiningFile}, nil
			}
			if line == 0 {
				return &Activation{
					View:    detail.Definition(symbol, file, 0),
					Message: MsgNoLocation,
				}, nil
			}
			return &Activation{View: detail.Definition(symbol, file, line)}, nil
		},
		Hint: HintDefinition,
	}

	return cfg
}

// defaultGenerics returns the built-in generic-symbol fallback describers.
func defaultGenerics(reg registry.Registry) []GenericDescriptor {
	return []GenericDescriptor{
		{
			Kind:   registry.KindFunction,
			Exists: reg.IsFunction,
			Describe: func(symbol string) *detail.View {
				return detail.Describe(reg, symbol, registry.KindFunction)
			},
		},
		{
			Kind:   registry.KindVariable,
			Exists: reg.IsVariable,
			Describe: func(symbol string) *detail.View {
				return detail.Describe(reg, symbol, registry.KindVariable)
			},
		},
		{
			Kind:   registry.KindFace,
			Exists: reg.IsFace,
			Describe: func(symbol string) *detail.View {
				return detail.Describe(reg, symbol, registry.KindFace)
			},
		},
	}
}
