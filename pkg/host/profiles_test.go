package host_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-torqueui/pkg/host"
)

const profilesDoc = `
active: team-a
profiles:
  - label: team-a
    account: acme
    space: dev
  - label: team-b
    account: acme
    space: prod
`

func TestParseProfiles_Active(t *testing.T) {
	store, err := host.ParseProfiles([]byte(profilesDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	profile, ok := store.Active()
	if !ok {
		t.Fatal("expected an active profile")
	}
	want := host.Profile{Label: "team-a", Account: "acme", Space: "dev"}
	if diff := cmp.Diff(want, profile); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"team-a", "team-b"}, store.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProfiles_NoActive(t *testing.T) {
	store, err := host.ParseProfiles([]byte("profiles:\n  - label: only\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := store.Active(); ok {
		t.Fatal("expected no active profile")
	}
}

func TestParseProfiles_DanglingActive(t *testing.T) {
	store, err := host.ParseProfiles([]byte("active: ghost\nprofiles:\n  - label: real\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := store.Active(); ok {
		t.Fatal("dangling active reference must resolve to no profile")
	}
}

func TestParseProfiles_DuplicateLabel(t *testing.T) {
	doc := "profiles:\n  - label: twin\n  - label: twin\n"
	if _, err := host.ParseProfiles([]byte(doc)); err == nil {
		t.Fatal("expected duplicate label error")
	}
}

func TestLoadProfiles(t *testing.T) {
	fsys := fstest.MapFS{
		"profiles.yaml": {Data: []byte(profilesDoc)},
	}

	store, err := host.LoadProfiles(fsys, "profiles.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := store.Active(); !ok {
		t.Fatal("expected an active profile")
	}

	if _, err := host.LoadProfiles(fsys, "missing.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStaticProfile(t *testing.T) {
	if _, ok := (host.StaticProfile{}).Active(); ok {
		t.Fatal("zero static profile must report no active profile")
	}
	profile, ok := (host.StaticProfile{Profile: host.Profile{Label: "local"}}).Active()
	if !ok || profile.Label != "local" {
		t.Fatalf("Active() = %+v, %v", profile, ok)
	}
}
