package linker

import (
	"strings"
	"testing"

	"doclink/internal/buffer"
	"doclink/internal/errors"
	"doclink/internal/registry"
)

func TestDispatchDescribeFunction(t *testing.T) {
	engine := testEngine()

	act, err := engine.Activate(&buffer.Annotation{
		Cat:    buffer.CategoryFunction,
		Symbol: "save-buffer",
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if act.View == nil {
		t.Fatal("expected a detail view")
	}
	if act.View.Title != "save-buffer" {
		t.Errorf("title: expected %q, got %q", "save-buffer", act.View.Title)
	}
	if !strings.Contains(act.View.Body, "is a function") {
		t.Errorf("body does not describe a function: %q", act.View.Body)
	}
	if !strings.Contains(act.View.Body, "editor.go") {
		t.Errorf("body does not name the defining file: %q", act.View.Body)
	}
}

func TestDispatchGenericSymbol(t *testing.T) {
	engine := testEngine()

	// Generic activation consults function first, then variable, then face.
	act, err := engine.Activate(&buffer.Annotation{
		Cat:    buffer.CategorySymbol,
		Symbol: "dual",
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if act.View == nil {
		t.Fatal("expected a detail view")
	}
	if !strings.Contains(act.View.Body, "is a function") {
		t.Errorf("expected function description to win, got %q", act.View.Body)
	}
}

func TestDispatchDefinition(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		view    bool
		line    int
		message string
	}{
		{"full location", "save-buffer", true, 80, ""},
		{"file without location", "orphan", false, 0, MsgNoDefiningFile},
		{"unknown symbol", "no-such", false, 0, MsgNoDefiningFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := testEngine()
			act, err := engine.Activate(&buffer.Annotation{
				Cat:    buffer.CategoryDefinition,
				Symbol: tt.symbol,
			})
			if err != nil {
				t.Fatalf("dispatch failed: %v", err)
			}
			if tt.view && act.View == nil {
				t.Fatal("expected a detail view")
			}
			if !tt.view && act.View != nil {
				t.Fatalf("expected no view, got %+v", act.View)
			}
			if tt.view && act.View.Line != tt.line {
				t.Errorf("line: expected %d, got %d", tt.line, act.View.Line)
			}
			if act.Message != tt.message {
				t.Errorf("message: expected %q, got %q", tt.message, act.Message)
			}
		})
	}
}

func TestDispatchDefinitionFileWithoutLine(t *testing.T) {
	reg := registry.NewIndex()
	reg.Add(&registry.Symbol{
		Name: "partial", Kind: registry.KindFunction, File: "lib.go",
	})
	engine := NewEngine(reg, NewConfig(reg), testLogger())

	act, err := engine.Activate(&buffer.Annotation{
		Cat:    buffer.CategoryDefinition,
		Symbol: "partial",
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if act.View == nil {
		t.Fatal("expected a view for the defining file")
	}
	if act.View.File != "lib.go" || act.View.Line != 0 {
		t.Errorf("expected file lib.go with no line, got %q line %d", act.View.File, act.View.Line)
	}
	if act.Message != MsgNoLocation {
		t.Errorf("message: expected %q, got %q", MsgNoLocation, act.Message)
	}
}

func TestDispatchUnknownCategory(t *testing.T) {
	engine := testEngine()

	_, err := engine.Activate(&buffer.Annotation{Cat: "bogus", Symbol: "x"})
	if err == nil {
		t.Fatal("expected an error for an unregistered category")
	}
	if errors.CodeOf(err) != errors.CategoryUnknown {
		t.Errorf("expected code %q, got %q", errors.CategoryUnknown, errors.CodeOf(err))
	}
}

func TestDispatchVanishedSymbol(t *testing.T) {
	// A symbol annotation can outlive the registry entry it was linked
	// against. Activation degrades to a message, not a failure.
	reg := registry.NewIndex()
	engine := NewEngine(reg, NewConfig(reg), testLogger())

	act, err := engine.Activate(&buffer.Annotation{
		Cat:    buffer.CategorySymbol,
		Symbol: "gone",
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if act.View != nil {
		t.Fatalf("expected no view, got %+v", act.View)
	}
	if act.Message == "" {
		t.Error("expected an informational message")
	}
}
