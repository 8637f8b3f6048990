// Package webview renders the reserve-sandbox form as a self-contained HTML
// document suitable for a host-embedded webview panel. The document carries
// its own styles and the submit script that posts messages back to the host.
package webview

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/render"
	rendertemplate "github.com/goliatone/go-torqueui/pkg/render/template"
	gotemplate "github.com/goliatone/go-torqueui/pkg/render/template/gotemplate"
)

// Option configures the webview renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        *bluemonday.Policy
	themeSelection   *theme.Selection
	includeStyles    bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the bluemonday policy applied to blueprint
// descriptions before they are embedded in the document. The default strict
// policy strips all markup; pass a looser policy to allow formatting tags.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// WithTheme injects a resolved go-theme selection whose manifest tokens are
// emitted as CSS custom properties on the document root.
func WithTheme(selection *theme.Selection) Option {
	return func(cfg *config) {
		cfg.themeSelection = selection
	}
}

// WithoutDefaultStyles drops the embedded stylesheet from rendered documents.
func WithoutDefaultStyles() Option {
	return func(cfg *config) {
		cfg.includeStyles = false
	}
}

// Renderer produces the reserve form HTML document.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	sanitizer     *bluemonday.Policy
	themeCSS      string
	includeStyles bool
}

// New constructs the webview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:    TemplatesFS(),
		includeStyles: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.sanitizer == nil {
		cfg.sanitizer = bluemonday.StrictPolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("webview renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:     renderer,
		sanitizer:     cfg.sanitizer,
		themeCSS:      themeVariables(cfg.themeSelection),
		includeStyles: cfg.includeStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return "webview"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full HTML document for the given form model.
func (r *Renderer) Render(_ context.Context, model form.Model, options render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("webview renderer: template renderer is nil")
	}

	styles := ""
	if r.includeStyles {
		styles = defaultStylesheet()
	}

	title := options.Title
	if title == "" {
		title = model.Title
	}

	result, err := r.templates.RenderTemplate("templates/form.tmpl", map[string]any{
		"title":       title,
		"description": r.sanitizer.Sanitize(model.Description),
		"sandboxName": resolveValue(options, "sandbox_name", model.SandboxName),
		"branch":      model.Branch,
		"duration":    map[string]any{"value": form.DurationDefault, "min": form.DurationMin, "max": form.DurationMax},
		"inputs":      fieldViews(model.InputFields(), options),
		"artifacts":   fieldViews(model.ArtifactFields(), options),
		"styles":      styles,
		"themeCSS":    r.themeCSS,
		"blueprint":   model.BlueprintName,
	})
	if err != nil {
		return nil, fmt.Errorf("webview renderer: render template: %w", err)
	}
	return []byte(result), nil
}

var _ render.Renderer = (*Renderer)(nil)

type fieldView struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

func fieldViews(fields []form.Field, options render.Options) []fieldView {
	out := make([]fieldView, 0, len(fields))
	for _, field := range fields {
		kind := "text"
		if field.Masked {
			kind = "password"
		}
		out = append(out, fieldView{
			Name:     field.Name,
			Label:    field.Label,
			Type:     kind,
			Value:    resolveValue(options, field.Name, field.Default),
			Required: field.Required,
		})
	}
	return out
}

func resolveValue(options render.Options, name, fallback string) string {
	if value, ok := options.Values[name]; ok {
		return value
	}
	return fallback
}

// themeVariables flattens a theme manifest's tokens into CSS custom
// properties. Returns "" when no usable selection is present.
func themeVariables(selection *theme.Selection) string {
	if selection == nil || selection.Manifest == nil || len(selection.Manifest.Tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range sortedKeys(selection.Manifest.Tokens) {
		fmt.Fprintf(&b, "  --torque-%s: %s;\n", key, selection.Manifest.Tokens[key])
	}
	b.WriteString("}")
	return b.String()
}

func sortedKeys(tokens map[string]string) []string {
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
