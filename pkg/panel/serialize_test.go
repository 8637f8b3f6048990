package panel_test

import (
	"testing"

	"github.com/goliatone/go-torqueui/pkg/panel"
)

func TestSerializeValues(t *testing.T) {
	cases := []struct {
		name   string
		names  []string
		values map[string]string
		want   string
	}{
		{
			name:   "two entries keep order and empty values",
			names:  []string{"env", "optional_field"},
			values: map[string]string{"env": "prod", "optional_field": ""},
			want:   "env=prod, optional_field=",
		},
		{
			name:   "single entry has no separator",
			names:  []string{"image"},
			values: map[string]string{"image": "v1"},
			want:   "image=v1",
		},
		{
			name:   "missing names are skipped",
			names:  []string{"a", "b", "c"},
			values: map[string]string{"a": "1", "c": "3"},
			want:   "a=1, c=3",
		},
		{
			name:   "no values",
			names:  []string{"a"},
			values: nil,
			want:   "",
		},
		{
			name:   "no names",
			names:  nil,
			values: map[string]string{"a": "1"},
			want:   "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := panel.SerializeValues(tc.names, tc.values); got != tc.want {
				t.Fatalf("SerializeValues() = %q, want %q", got, tc.want)
			}
		})
	}
}
