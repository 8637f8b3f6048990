// Package form builds the reserve-sandbox form model renderers consume. It is
// the equivalent of a form-model builder stage: blueprint listing data in,
// display-ready field list out.
package form

// Duration field constraints, in minutes. The bounds are advisory client-side
// constraints; the host command performs no re-validation here.
const (
	DurationDefault = 30
	DurationMin     = 10
	DurationMax     = 3600
)

// FieldGroup says which submit grouping a field belongs to.
type FieldGroup string

const (
	GroupInput    FieldGroup = "inputs"
	GroupArtifact FieldGroup = "artifacts"
)

// Field models one row of the reserve form.
type Field struct {
	Name     string     `json:"name"`
	Label    string     `json:"label"`
	Group    FieldGroup `json:"group"`
	Required bool       `json:"required"`
	Masked   bool       `json:"masked"`
	Default  string     `json:"default,omitempty"`
}

// Model is the top-level representation renderers consume.
type Model struct {
	// BlueprintName is the raw name as the listing reported it; the start
	// command needs it verbatim.
	BlueprintName string `json:"blueprint_name"`
	// Title is the cleaned display name shown as the form heading.
	Title string `json:"title"`
	// Description is untrusted remote text; renderers must sanitise it.
	Description string `json:"description,omitempty"`
	// SandboxName pre-fills the sandbox-name field.
	SandboxName string  `json:"sandbox_name"`
	Branch      string  `json:"branch"`
	Fields      []Field `json:"fields"`
}

// InputFields returns the fields in the inputs grouping, in form order.
func (m Model) InputFields() []Field {
	return m.groupFields(GroupInput)
}

// ArtifactFields returns the fields in the artifacts grouping, in form order.
func (m Model) ArtifactFields() []Field {
	return m.groupFields(GroupArtifact)
}

func (m Model) groupFields(group FieldGroup) []Field {
	var out []Field
	for _, field := range m.Fields {
		if field.Group == group {
			out = append(out, field)
		}
	}
	return out
}
