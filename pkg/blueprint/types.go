// Package blueprint decodes and filters the listing payload produced by the
// host's list_blueprints command. The payload is the source of truth; nothing
// here mutates or persists it.
package blueprint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SampleMarker prefixes the names of sample blueprints in the listing.
const SampleMarker = "[Sample]"

// Input is a single blueprint parameter as the listing reports it.
type Input struct {
	Name         string `json:"name"`
	Optional     bool   `json:"optional"`
	DisplayStyle string `json:"display_style,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
}

// Masked reports whether the input should be collected through a concealed
// field.
func (i Input) Masked() bool {
	return strings.EqualFold(strings.TrimSpace(i.DisplayStyle), "masked")
}

// Artifacts maps artifact names to optional default values. A null default in
// the payload decodes to "".
type Artifacts map[string]string

// UnmarshalJSON tolerates null artifact values, which the listing emits for
// artifacts without defaults.
func (a *Artifacts) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Artifacts, len(raw))
	for name, value := range raw {
		if value == nil {
			out[name] = ""
			continue
		}
		out[name] = *value
	}
	*a = out
	return nil
}

// Summary is one entry of the list_blueprints payload.
type Summary struct {
	Name        string    `json:"blueprint_name"`
	Description string    `json:"description"`
	IsSample    bool      `json:"is_sample"`
	Enabled     bool      `json:"enabled"`
	Errors      []Error   `json:"errors"`
	Inputs      []Input   `json:"inputs"`
	Artifacts   Artifacts `json:"artifacts"`
	URL         string    `json:"url"`
}

// Error is a validation failure attached to a blueprint by the remote API.
// Entries carrying any error are excluded from the listing.
type Error struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

// Launchable reports whether a blueprint should appear in the tree: it must
// be enabled and carry no errors.
func (s Summary) Launchable() bool {
	return s.Enabled && len(s.Errors) == 0
}

// DisplayName returns the name with the sample marker stripped for entries
// flagged as samples. Non-sample names pass through untouched even if they
// happen to contain the marker.
func (s Summary) DisplayName() string {
	if !s.IsSample {
		return s.Name
	}
	return strings.TrimSpace(strings.Replace(s.Name, SampleMarker, "", 1))
}

// DecodeList parses a list_blueprints result. An empty payload is valid and
// means no blueprints.
func DecodeList(payload string) ([]Summary, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, nil
	}

	var summaries []Summary
	if err := json.Unmarshal([]byte(trimmed), &summaries); err != nil {
		return nil, fmt.Errorf("blueprint: decode listing: %w", err)
	}
	return summaries, nil
}
