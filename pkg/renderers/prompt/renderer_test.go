package prompt_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/render"
	"github.com/goliatone/go-torqueui/pkg/renderers/prompt"
)

// scriptedDriver answers prompts from a queue and records how each prompt was
// asked.
type scriptedDriver struct {
	answers  []string
	messages []string
	masked   []bool
}

func (d *scriptedDriver) next(cfg prompt.InputConfig, masked bool) (string, error) {
	if len(d.answers) == 0 {
		return "", fmt.Errorf("no scripted answer for %q", cfg.Message)
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	d.messages = append(d.messages, cfg.Message)
	d.masked = append(d.masked, masked)
	return answer, nil
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.next(cfg, false)
}

func (d *scriptedDriver) Password(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.next(cfg, true)
}

func testModel() form.Model {
	return form.Build("web-app",
		[]blueprint.Input{
			{Name: "env", Optional: false, DefaultValue: "dev"},
			{Name: "api_key", Optional: true, DisplayStyle: "masked"},
		},
		blueprint.Artifacts{"image": "v1"},
		"main")
}

func TestCollect(t *testing.T) {
	driver := &scriptedDriver{
		// sandbox name, duration, env, api_key, image
		answers: []string{"demo-sandbox", "45", "prod", "secret", ""},
	}
	renderer, err := prompt.New(prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	payload, err := renderer.Collect(context.Background(), testModel(), render.Options{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := prompt.Payload{
		SandboxName: "demo-sandbox",
		Duration:    45,
		Inputs:      map[string]string{"env": "prod", "api_key": "secret"},
		Artifacts:   map[string]string{"image": "v1"},
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}

	// The masked input is the only concealed prompt.
	wantMasked := []bool{false, false, false, true, false}
	if diff := cmp.Diff(wantMasked, driver.masked); diff != "" {
		t.Fatalf("masked prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_DurationValidation(t *testing.T) {
	for _, bad := range []string{"abc", "5", "4000"} {
		driver := &scriptedDriver{answers: []string{"demo", bad}}
		renderer, err := prompt.New(prompt.WithDriver(driver))
		if err != nil {
			t.Fatalf("new renderer: %v", err)
		}
		if _, err := renderer.Collect(context.Background(), testModel(), render.Options{}); err == nil {
			t.Fatalf("expected validation error for duration %q", bad)
		}
	}
}

func TestCollect_RequiredFieldValidation(t *testing.T) {
	model := form.Build("bp", []blueprint.Input{{Name: "env"}}, nil, "main")
	driver := &scriptedDriver{answers: []string{"demo", "30", "   "}}
	renderer, err := prompt.New(prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Collect(context.Background(), model, render.Options{}); err == nil {
		t.Fatal("expected required-field validation error")
	}
}

func TestRender_EmitsJSONPayload(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"demo", "", "prod", "key", "v2"}}
	renderer, err := prompt.New(prompt.WithDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(context.Background(), testModel(), render.Options{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var payload prompt.Payload
	if err := json.Unmarshal(output, &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if payload.SandboxName != "demo" {
		t.Fatalf("sandbox name = %q", payload.SandboxName)
	}
	// Empty duration answer falls back to the default.
	if payload.Duration != form.DurationDefault {
		t.Fatalf("duration = %d, want %d", payload.Duration, form.DurationDefault)
	}
	if payload.Artifacts["image"] != "v2" {
		t.Fatalf("artifact = %q", payload.Artifacts["image"])
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := prompt.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "prompt" {
		t.Fatalf("name = %q", renderer.Name())
	}
	if renderer.ContentType() != "application/json" {
		t.Fatalf("content type = %q", renderer.ContentType())
	}
}
