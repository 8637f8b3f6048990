package panel

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/form"
	"github.com/goliatone/go-torqueui/pkg/host"
	"github.com/goliatone/go-torqueui/pkg/render"
)

// FormState is the panel-local state a session renders from. It is mutated
// in place when the live panel is reused for a different blueprint.
type FormState struct {
	BlueprintName string
	Inputs        []blueprint.Input
	Artifacts     blueprint.Artifacts
	Branch        string
}

// Session is one live form panel. At most one session exists process-wide;
// the Manager enforces that.
type Session struct {
	state    FormState
	panel    Panel
	renderer render.Renderer
	invoker  host.Invoker
	notifier host.Notifier
	logger   *log.Logger

	onClosed func(*Session)
}

// State returns a copy of the session's current form state.
func (s *Session) State() FormState {
	return s.state
}

// Update replaces the session state for a reuse request: the blueprint name
// arrives URL-encoded and is decoded here; inputs and artifacts are swapped
// wholesale. Branch is intentionally preserved across reuse; callers depend
// on this.
func (s *Session) Update(blueprintName string, inputs []blueprint.Input, artifacts blueprint.Artifacts) {
	if decoded, err := url.QueryUnescape(blueprintName); err == nil {
		blueprintName = decoded
	}
	s.state.BlueprintName = blueprintName
	s.state.Inputs = inputs
	s.state.Artifacts = artifacts
}

// Render rebuilds the document from the current state and pushes it into the
// panel.
func (s *Session) Render(ctx context.Context) error {
	model := form.Build(s.state.BlueprintName, s.state.Inputs, s.state.Artifacts, s.state.Branch)

	document, err := s.renderer.Render(ctx, model, render.Options{})
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Unable to render reserve form: %v", err))
		return fmt.Errorf("panel: render form: %w", err)
	}

	s.panel.SetTitle("Reserve " + model.Title)
	s.panel.SetHTML(string(document))
	return nil
}

// Reveal brings the panel to the foreground.
func (s *Session) Reveal() {
	s.panel.Reveal()
}

// Close disposes the panel. The panel's dispose handler clears the manager's
// singleton reference.
func (s *Session) Close() {
	s.panel.Dispose()
}

// handleMessage reacts to messages posted by the rendered document.
func (s *Session) handleMessage(ctx context.Context, msg Message) {
	switch msg.Command {
	case MessageRun:
		if err := s.submit(ctx, msg); err != nil {
			s.logger.Error("sandbox start failed", "blueprint", s.state.BlueprintName, "err", err)
		}
	case MessageAlert:
		// Deliberate pass-through: the form surfaces its own validation text.
		s.notifier.Error(msg.Text)
	default:
		s.logger.Debug("ignoring unknown panel message", "command", msg.Command)
	}
}

// submit starts the sandbox, refreshes the sandbox list view, and closes the
// panel on success.
func (s *Session) submit(ctx context.Context, msg Message) error {
	inputs := SerializeValues(s.inputOrder(), msg.Inputs)
	artifacts := SerializeValues(s.artifactOrder(), msg.Artifacts)

	_, err := s.invoker.Invoke(ctx, host.CommandStartSandbox,
		s.state.BlueprintName,
		msg.SandboxName,
		strconv.Itoa(msg.Duration),
		inputs,
		artifacts,
		s.state.Branch,
	)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Unable to start sandbox: %v", err))
		return fmt.Errorf("panel: start sandbox: %w", err)
	}

	if _, err := s.invoker.Invoke(ctx, host.CommandRefreshSandboxes); err != nil {
		// The sandbox did start; a failed refresh should not keep the form open.
		s.logger.Warn("sandbox list refresh failed", "err", err)
	}

	s.Close()
	return nil
}

// inputOrder fixes serialisation order to the listing's input order.
func (s *Session) inputOrder() []string {
	names := make([]string, 0, len(s.state.Inputs))
	for _, input := range s.state.Inputs {
		names = append(names, input.Name)
	}
	return names
}

// artifactOrder matches the rendered form's sorted artifact rows.
func (s *Session) artifactOrder() []string {
	names := make([]string, 0, len(s.state.Artifacts))
	for name := range s.state.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
