package linker

import (
	"doclink/internal/buffer"
	"doclink/internal/logging"
	"doclink/internal/registry"
)

// Engine bundles the scan orchestrator and activation dispatcher over one
// registry and configuration. A scan pass runs to completion before
// another may start on the same buffer; the engine is not reentrant.
type Engine struct {
	reg        registry.Registry
	cfg        *Config
	scanner    *Scanner
	dispatcher *Dispatcher
	logger     *logging.Logger
}

// NewEngine creates a linker engine over a registry.
func NewEngine(reg registry.Registry, cfg *Config, logger *logging.Logger) *Engine {
	classifier := NewClassifier(reg, cfg)
	builder := NewBuilder(logger)
	return &Engine{
		reg:        reg,
		cfg:        cfg,
		scanner:    NewScanner(classifier, builder, cfg, logger),
		dispatcher: NewDispatcher(cfg, logger),
		logger:     logger,
	}
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() *Config { return e.cfg }

// Scan runs one full annotation pass over the buffer.
func (e *Engine) Scan(buf *buffer.Buffer) (ScanStats, error) {
	return e.scanner.Scan(buf)
}

// Activate dispatches an annotation's activation event.
func (e *Engine) Activate(a *buffer.Annotation) (*Activation, error) {
	return e.dispatcher.Dispatch(a)
}
