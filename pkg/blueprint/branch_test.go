package blueprint_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
)

func TestBranch(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "main branch",
			url:  "https://github.com/acme/infra/blob/main/blueprints/web.yaml",
			want: "main",
		},
		{
			name: "branch with slash",
			url:  "https://github.com/acme/infra/blob/feature/new-ui/blueprints/web.yaml",
			want: "feature/new-ui",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := blueprint.Branch(tc.url)
			if err != nil {
				t.Fatalf("branch: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Branch(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestBranch_NotFound(t *testing.T) {
	for _, url := range []string{
		"",
		"https://example.com/acme/infra",
		"https://github.com/acme/infra/tree/main/blueprints/web.yaml",
	} {
		_, err := blueprint.Branch(url)
		if err == nil {
			t.Fatalf("expected error for %q", url)
		}
		var notFound *blueprint.BranchNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected BranchNotFoundError, got %T", err)
		}
		if notFound.URL != url {
			t.Fatalf("error url = %q, want %q", notFound.URL, url)
		}
	}
}
