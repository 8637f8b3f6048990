package host

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// profilesDocument mirrors the on-disk profiles file:
//
//	active: team-a
//	profiles:
//	  - label: team-a
//	    account: acme
//	    space: dev
type profilesDocument struct {
	Active   string    `yaml:"active"`
	Profiles []Profile `yaml:"profiles"`
}

// FileProfileStore reads connection profiles from a YAML document and
// resolves the active one. The file is parsed once at construction; the
// store itself is immutable afterwards.
type FileProfileStore struct {
	active   string
	profiles map[string]Profile
}

// LoadProfiles parses a profiles document from the given filesystem path.
func LoadProfiles(fsys fs.FS, path string) (*FileProfileStore, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("host: read profiles %q: %w", path, err)
	}
	return ParseProfiles(raw)
}

// ParseProfiles builds a FileProfileStore from raw YAML bytes.
func ParseProfiles(raw []byte) (*FileProfileStore, error) {
	var doc profilesDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("host: parse profiles: %w", err)
	}

	store := &FileProfileStore{
		active:   strings.TrimSpace(doc.Active),
		profiles: make(map[string]Profile, len(doc.Profiles)),
	}
	for _, profile := range doc.Profiles {
		label := strings.TrimSpace(profile.Label)
		if label == "" {
			continue
		}
		if _, exists := store.profiles[label]; exists {
			return nil, fmt.Errorf("host: duplicate profile label %q", label)
		}
		profile.Label = label
		store.profiles[label] = profile
	}
	return store, nil
}

// Active resolves the profile named by the document's active field. An empty
// or dangling reference means no profile is active.
func (s *FileProfileStore) Active() (Profile, bool) {
	if s == nil || s.active == "" {
		return Profile{}, false
	}
	profile, ok := s.profiles[s.active]
	return profile, ok
}

// Labels returns the sorted labels known to the store.
func (s *FileProfileStore) Labels() []string {
	if s == nil {
		return nil
	}
	labels := make([]string, 0, len(s.profiles))
	for label := range s.profiles {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

var _ ProfileStore = (*FileProfileStore)(nil)
