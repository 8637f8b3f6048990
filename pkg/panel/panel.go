// Package panel owns the reserve-sandbox form panel: a single live session
// rendered into a host webview, updated in place on repeat requests, and torn
// down on submit or dispose.
package panel

import "context"

// Message commands posted by the rendered form back to this module.
const (
	MessageRun   = "run"
	MessageAlert = "alert"
)

// Message is the payload the webview document posts on submit or alert.
type Message struct {
	Command     string            `json:"command"`
	Text        string            `json:"text,omitempty"`
	SandboxName string            `json:"sandbox_name,omitempty"`
	Duration    int               `json:"duration,omitempty"`
	Inputs      map[string]string `json:"inputs,omitempty"`
	Artifacts   map[string]string `json:"artifacts,omitempty"`
}

// Panel abstracts the host webview handle a session renders into. The host
// guarantees all callbacks arrive on its single UI event loop.
type Panel interface {
	// SetTitle updates the panel caption.
	SetTitle(title string)
	// SetHTML replaces the panel document.
	SetHTML(html string)
	// Reveal brings the panel to the foreground.
	Reveal()
	// OnMessage registers the handler for messages posted by the document.
	OnMessage(handler func(ctx context.Context, msg Message))
	// OnDispose registers a handler fired exactly once when the panel goes
	// away, whether closed by the user or via Dispose.
	OnDispose(handler func())
	// Dispose closes the panel and releases its resources.
	Dispose()
}

// Factory opens a new host panel with the given title.
type Factory func(title string) (Panel, error)
