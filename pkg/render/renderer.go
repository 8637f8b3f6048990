// Package render defines the contract between the form model and the
// pluggable renderers that turn it into user-facing output.
package render

import (
	"context"

	"github.com/goliatone/go-torqueui/pkg/form"
)

// Renderer converts a form.Model into a byte representation (an HTML
// document, a serialized submit payload, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, model form.Model, options Options) ([]byte, error)
}

// Options carry per-request data renderers can use without mutating the form
// model itself.
type Options struct {
	// Values pre-populates rendered fields by name, overriding the model's
	// declared defaults.
	Values map[string]string
	// Title overrides the document title when non-empty.
	Title string
}
