package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/form"
)

func TestDurationBounds(t *testing.T) {
	if form.DurationDefault != 30 {
		t.Fatalf("duration default = %d, want 30", form.DurationDefault)
	}
	if form.DurationMin != 10 || form.DurationMax != 3600 {
		t.Fatalf("duration bounds = [%d, %d], want [10, 3600]", form.DurationMin, form.DurationMax)
	}
}

func TestBuild(t *testing.T) {
	inputs := []blueprint.Input{
		{Name: "env", Optional: false, DefaultValue: "dev"},
		{Name: "api_key", Optional: true, DisplayStyle: "masked"},
	}
	artifacts := blueprint.Artifacts{"image": "v1", "config": ""}

	model := form.Build("web-app", inputs, artifacts, "main")

	if model.BlueprintName != "web-app" {
		t.Fatalf("blueprint name = %q", model.BlueprintName)
	}
	if model.Branch != "main" {
		t.Fatalf("branch = %q", model.Branch)
	}
	if model.SandboxName != "web-app" {
		t.Fatalf("sandbox name = %q", model.SandboxName)
	}

	want := []form.Field{
		{Name: "env", Label: "env *", Group: form.GroupInput, Required: true, Default: "dev"},
		{Name: "api_key", Label: "api_key", Group: form.GroupInput, Masked: true},
		{Name: "config", Label: "config *", Group: form.GroupArtifact, Required: true},
		{Name: "image", Label: "image *", Group: form.GroupArtifact, Required: true, Default: "v1"},
	}
	if diff := cmp.Diff(want, model.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_GroupAccessors(t *testing.T) {
	model := form.Build("bp",
		[]blueprint.Input{{Name: "a"}, {Name: "b"}},
		blueprint.Artifacts{"z": ""},
		"main")

	if got := len(model.InputFields()); got != 2 {
		t.Fatalf("input fields = %d, want 2", got)
	}
	if got := len(model.ArtifactFields()); got != 1 {
		t.Fatalf("artifact fields = %d, want 1", got)
	}
}

func TestBuild_SandboxNameCleanup(t *testing.T) {
	cases := []struct {
		name      string
		blueprint string
		want      string
	}{
		{"path prefix stripped", "environments/web-app.yaml", "web-app"},
		{"yaml suffix stripped", "web-app.yaml", "web-app"},
		{"sample marker removed", "[Sample] web-app", "web-app"},
		{"plain name untouched", "web-app", "web-app"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := form.Build(tc.blueprint, nil, nil, "main")
			if model.SandboxName != tc.want {
				t.Fatalf("sandbox name = %q, want %q", model.SandboxName, tc.want)
			}
			if model.BlueprintName != tc.blueprint {
				t.Fatalf("blueprint name must stay raw, got %q", model.BlueprintName)
			}
		})
	}
}
