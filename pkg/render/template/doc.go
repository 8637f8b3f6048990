// Package template defines the renderer-agnostic template seam so the
// webview renderer does not depend on a concrete engine. The gotemplate
// subpackage provides the default pongo2-backed implementation.
package template
