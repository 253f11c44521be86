package linker

import (
	"fmt"

	"doclink/internal/buffer"
	"doclink/internal/errors"
	"doclink/internal/logging"
)

// Informational messages emitted by definition-source activation.
const (
	MsgNoDefiningFile = "Unable to find defining file"
	MsgNoLocation     = "Unable to find location in file"
)

// Dispatcher routes an annotation's activation to its category's handler.
type Dispatcher struct {
	cfg    *Config
	logger *logging.Logger
}

// NewDispatcher creates an activation dispatcher.
func NewDispatcher(cfg *Config, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{cfg: cfg, logger: logger}
}

// Dispatch invokes the activation handler bound to the annotation's
// category with its symbol and extra arguments. Handler-level failures
// come back as informational messages inside the Activation, never as a
// crash; only an annotation bound to no registered category is an error.
func (d *Dispatcher) Dispatch(a *buffer.Annotation) (*Activation, error) {
	desc := d.cfg.Descriptor(a.Cat)
	if desc == nil || desc.Activate == nil {
		return nil, errors.New(errors.CategoryUnknown,
			fmt.Sprintf("no activation handler for category %q", a.Cat), nil)
	}

	act, err := desc.Activate(a.Symbol, a.Extra...)
	if err != nil {
		d.logger.Warn("activation handler failed", map[string]interface{}{
			"symbol":   a.Symbol,
			"category": string(a.Cat),
			"error":    err.Error(),
		})
		return &Activation{Message: err.Error()}, nil
	}
	return act, nil
}
