// Package prompt collects the reserve-sandbox form interactively through
// terminal prompts and emits the resulting submit payload as JSON. It drives
// the same form model as the webview renderer, so the two stay in lockstep.
package prompt

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/render"
)

// Payload is the collected submission, shaped like the webview's run message.
type Payload struct {
	SandboxName string            `json:"sandbox_name"`
	Duration    int               `json:"duration"`
	Inputs      map[string]string `json:"inputs"`
	Artifacts   map[string]string `json:"artifacts"`
}

// Option configures the prompt renderer.
type Option func(*Renderer)

// WithDriver injects a prompt driver, typically a test double.
func WithDriver(driver Driver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Renderer implements render.Renderer over terminal prompts.
type Renderer struct {
	driver Driver
}

// New constructs a prompt renderer with the survey driver as default.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "prompt"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render walks the form model prompting for every field and returns the
// submit payload as JSON.
func (r *Renderer) Render(ctx context.Context, model form.Model, options render.Options) ([]byte, error) {
	payload, err := r.Collect(ctx, model, options)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("prompt: encode payload: %w", err)
	}
	return out, nil
}

// Collect prompts for the sandbox name, duration, and every input and
// artifact field, honouring defaults and required/masked flags.
func (r *Renderer) Collect(ctx context.Context, model form.Model, options render.Options) (Payload, error) {
	if r.driver == nil {
		return Payload{}, fmt.Errorf("prompt: driver is nil")
	}

	name, err := r.driver.Input(ctx, InputConfig{
		Message:   "Sandbox name",
		Default:   resolveValue(options, "sandbox_name", model.SandboxName),
		Validator: requireValue("sandbox name"),
	})
	if err != nil {
		return Payload{}, err
	}

	rawDuration, err := r.driver.Input(ctx, InputConfig{
		Message:   "Duration (minutes)",
		Default:   strconv.Itoa(form.DurationDefault),
		Help:      fmt.Sprintf("Between %d and %d minutes", form.DurationMin, form.DurationMax),
		Validator: validateDuration,
	})
	if err != nil {
		return Payload{}, err
	}
	duration, err := strconv.Atoi(strings.TrimSpace(rawDuration))
	if err != nil {
		return Payload{}, fmt.Errorf("prompt: parse duration: %w", err)
	}

	payload := Payload{
		SandboxName: name,
		Duration:    duration,
		Inputs:      make(map[string]string),
		Artifacts:   make(map[string]string),
	}

	for _, field := range model.Fields {
		cfg := InputConfig{
			Message: field.Label,
			Default: resolveValue(options, field.Name, field.Default),
		}
		if field.Required {
			cfg.Validator = requireValue(field.Name)
		}

		ask := r.driver.Input
		if field.Masked {
			ask = r.driver.Password
		}

		value, err := ask(ctx, cfg)
		if err != nil {
			return Payload{}, err
		}

		switch field.Group {
		case form.GroupArtifact:
			payload.Artifacts[field.Name] = value
		default:
			payload.Inputs[field.Name] = value
		}
	}

	return payload, nil
}

var _ render.Renderer = (*Renderer)(nil)

func resolveValue(options render.Options, name, fallback string) string {
	if value, ok := options.Values[name]; ok {
		return value
	}
	return fallback
}

func requireValue(what string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateDuration(value string) error {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("duration must be a number")
	}
	if minutes < form.DurationMin || minutes > form.DurationMax {
		return fmt.Errorf("duration must be between %d and %d minutes", form.DurationMin, form.DurationMax)
	}
	return nil
}
