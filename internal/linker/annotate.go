package linker

import (
	"github.com/google/uuid"

	"doclink/internal/buffer"
	"doclink/internal/logging"
)

// Builder creates annotations over classified, validated references.
type Builder struct {
	logger *logging.Logger
}

// NewBuilder creates an annotation builder.
func NewBuilder(logger *logging.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build attaches an annotation spanning exactly the matched symbol text.
// If the span is already covered by an annotation the build is skipped
// silently, keeping re-scans idempotent. Returns whether an annotation was
// created.
func (b *Builder) Build(buf *buffer.Buffer, span buffer.Span, cat buffer.Category, symbol, hint string, extra ...any) (*buffer.Annotation, bool) {
	a := &buffer.Annotation{
		ID:     uuid.New().String(),
		Span:   span,
		Cat:    cat,
		Symbol: symbol,
		Hint:   hint,
		Extra:  extra,
	}

	if err := buf.Attach(a); err != nil {
		if err == buffer.ErrOverlap {
			b.logger.Debug("span already annotated", map[string]interface{}{
				"buffer": buf.Name(),
				"symbol": symbol,
				"start":  span.Start,
			})
			return nil, false
		}
		b.logger.Warn("failed to attach annotation", map[string]interface{}{
			"buffer": buf.Name(),
			"symbol": symbol,
			"error":  err.Error(),
		})
		return nil, false
	}

	return a, true
}
