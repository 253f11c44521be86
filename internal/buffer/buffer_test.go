package buffer

import "testing"

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		overlaps bool
	}{
		{"disjoint", Span{0, 5}, Span{5, 10}, false},
		{"adjacent reversed", Span{5, 10}, Span{0, 5}, false},
		{"partial", Span{0, 6}, Span{5, 10}, true},
		{"contained", Span{0, 10}, Span{3, 4}, true},
		{"identical", Span{2, 8}, Span{2, 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps(%v, %v): expected %v, got %v", tt.a, tt.b, tt.overlaps, got)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.overlaps {
				t.Errorf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestAttachRejectsOverlap(t *testing.T) {
	buf := New("b", "0123456789")

	if err := buf.Attach(&Annotation{ID: "a", Span: Span{2, 6}}); err != nil {
		t.Fatalf("first attach failed: %v", err)
	}
	if err := buf.Attach(&Annotation{ID: "b", Span: Span{4, 8}}); err != ErrOverlap {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
	if err := buf.Attach(&Annotation{ID: "c", Span: Span{6, 8}}); err != nil {
		t.Fatalf("adjacent attach failed: %v", err)
	}
	if len(buf.Annotations()) != 2 {
		t.Errorf("expected 2 annotations, got %d", len(buf.Annotations()))
	}
}

func TestAttachRejectsBadSpans(t *testing.T) {
	buf := New("b", "0123456789")
	bad := []Span{
		{-1, 3},
		{0, 11},
		{5, 5},
		{7, 3},
	}
	for _, span := range bad {
		if err := buf.Attach(&Annotation{Span: span}); err == nil {
			t.Errorf("expected error for span %v", span)
		}
	}
}

func TestAnnotationsSorted(t *testing.T) {
	buf := New("b", "0123456789")
	for _, span := range []Span{{6, 8}, {0, 2}, {3, 5}} {
		if err := buf.Attach(&Annotation{Span: span}); err != nil {
			t.Fatalf("attach %v failed: %v", span, err)
		}
	}
	anns := buf.Annotations()
	for i := 1; i < len(anns); i++ {
		if anns[i].Span.Start < anns[i-1].Span.Start {
			t.Fatalf("annotations out of order: %v before %v", anns[i-1].Span, anns[i].Span)
		}
	}
}

func TestAnnotationAt(t *testing.T) {
	buf := New("b", "0123456789")
	a := &Annotation{ID: "x", Span: Span{3, 6}}
	if err := buf.Attach(a); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	if got := buf.AnnotationAt(3); got != a {
		t.Error("expected annotation at span start")
	}
	if got := buf.AnnotationAt(5); got != a {
		t.Error("expected annotation inside span")
	}
	if got := buf.AnnotationAt(6); got != nil {
		t.Error("span end is exclusive")
	}
	if got := buf.AnnotationAt(0); got != nil {
		t.Error("expected no annotation before span")
	}
}

func TestSetSyntaxRaisesModified(t *testing.T) {
	buf := New("b", "text")
	if buf.Modified() {
		t.Fatal("new buffer starts modified")
	}

	buf.SetSyntax(SyntaxSymbol)
	if !buf.Modified() {
		t.Error("syntax switch did not raise the modified flag")
	}
	if buf.Syntax() != SyntaxSymbol {
		t.Errorf("expected %q, got %q", SyntaxSymbol, buf.Syntax())
	}

	// Switching to the mode already in effect is a no-op.
	buf.SetModified(false)
	buf.SetSyntax(SyntaxSymbol)
	if buf.Modified() {
		t.Error("redundant syntax switch raised the modified flag")
	}
}

func TestDestroyedBufferIgnoresSyntaxChanges(t *testing.T) {
	buf := New("b", "text")
	buf.Destroy()

	buf.SetSyntax(SyntaxSymbol)
	if buf.Syntax() != SyntaxText {
		t.Error("destroyed buffer changed syntax mode")
	}
	if !buf.Destroyed() {
		t.Error("buffer not marked destroyed")
	}
}
