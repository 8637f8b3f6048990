package form

import (
	"sort"
	"strings"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
)

// requiredSuffix marks mandatory rows in field labels.
const requiredSuffix = " *"

// Build assembles the reserve form model for one blueprint. Input rows keep
// the listing's order; artifact rows are sorted by name so the rendered form
// is deterministic. Artifacts are always mandatory in this UI.
func Build(blueprintName string, inputs []blueprint.Input, artifacts blueprint.Artifacts, branch string) Model {
	display := displayName(blueprintName)

	model := Model{
		BlueprintName: blueprintName,
		Title:         display,
		SandboxName:   display,
		Branch:        branch,
		Fields:        make([]Field, 0, len(inputs)+len(artifacts)),
	}

	for _, input := range inputs {
		label := input.Name
		if !input.Optional {
			label += requiredSuffix
		}
		model.Fields = append(model.Fields, Field{
			Name:     input.Name,
			Label:    label,
			Group:    GroupInput,
			Required: !input.Optional,
			Masked:   input.Masked(),
			Default:  input.DefaultValue,
		})
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		model.Fields = append(model.Fields, Field{
			Name:     name,
			Label:    name + requiredSuffix,
			Group:    GroupArtifact,
			Required: true,
			Default:  artifacts[name],
		})
	}

	return model
}

// displayName strips any path prefix, a trailing .yaml extension, and the
// sample marker, leaving the name a sandbox would sensibly be called.
func displayName(name string) string {
	cleaned := name
	if idx := strings.LastIndex(cleaned, "/"); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	cleaned = strings.TrimSuffix(cleaned, ".yaml")
	cleaned = strings.Replace(cleaned, blueprint.SampleMarker, "", 1)
	return strings.TrimSpace(cleaned)
}
