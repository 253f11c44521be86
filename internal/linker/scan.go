package linker

import (
	"doclink/internal/buffer"
	"doclink/internal/logging"
)

// ScanStats summarizes one scan pass.
type ScanStats struct {
	Matches int `json:"matches"`
	Linked  int `json:"linked"`
	Skipped int `json:"skipped"`
}

// Scanner owns the top-level pass over a buffer: position management,
// idempotency, and restoration of buffer state after the pass.
type Scanner struct {
	classifier *Classifier
	builder    *Builder
	cfg        *Config
	logger     *logging.Logger
}

// NewScanner creates a scan orchestrator.
func NewScanner(classifier *Classifier, builder *Builder, cfg *Config, logger *logging.Logger) *Scanner {
	return &Scanner{
		classifier: classifier,
		builder:    builder,
		cfg:        cfg,
		logger:     logger,
	}
}

// Scan runs one full pass over the buffer. The buffer's syntax mode is
// switched to symbol tokenization for the duration and restored afterwards
// along with the modified flag, on every exit path; placing annotations
// must never dirty the buffer. Restoration is a no-op if the buffer was
// destroyed mid-scan. Per-match failures are skipped, never fatal.
func (s *Scanner) Scan(buf *buffer.Buffer) (stats ScanStats, err error) {
	wasModified := buf.Modified()
	prevSyntax := buf.Syntax()
	buf.SetSyntax(buffer.SyntaxSymbol)

	defer func() {
		if buf.Destroyed() {
			return
		}
		buf.SetSyntax(prevSyntax)
		buf.SetModified(wasModified)
	}()

	m := NewMatcher(buf.Text(), 0)
	for {
		rec, ok := m.Next()
		if !ok {
			break
		}
		stats.Matches++

		cat := s.classifier.Classify(rec)
		if cat == buffer.CategoryUnlinked {
			stats.Skipped++
			s.logger.Debug("reference not linked", map[string]interface{}{
				"buffer":  buf.Name(),
				"symbol":  rec.Symbol,
				"keyword": rec.Keyword.String(),
			})
			continue
		}

		desc := s.cfg.Descriptor(cat)
		if desc == nil {
			stats.Skipped++
			continue
		}

		if _, created := s.builder.Build(buf, rec.Span, cat, rec.Symbol, desc.Hint); created {
			stats.Linked++
		} else {
			stats.Skipped++
		}
	}

	s.logger.Info("scan pass complete", map[string]interface{}{
		"buffer":  buf.Name(),
		"matches": stats.Matches,
		"linked":  stats.Linked,
	})
	return stats, nil
}
