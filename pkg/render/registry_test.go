package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }

func (s stubRenderer) Render(context.Context, form.Model, render.Options) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("renderer name = %q", renderer.Name())
	}
	if !registry.Has("html") {
		t.Fatal("expected registry to report html")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "html"})

	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistry_UnknownName(t *testing.T) {
	registry := render.NewRegistry()

	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
	if registry.Has("missing") {
		t.Fatal("registry must not report unknown renderer")
	}
}

func TestRegistry_RejectsInvalidRenderers(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer to be rejected")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected unnamed renderer to be rejected")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "prompt"})
	registry.MustRegister(stubRenderer{name: "html"})

	want := []string{"html", "prompt"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}
}
