// Package torqueui is the presentation layer for Torque blueprints inside a
// host-driven plugin runtime: a tree provider that lists remote blueprints
// and a form panel that reserves a sandbox from a chosen blueprint. All real
// work (profiles, listing, sandbox launch) is delegated to host commands
// invoked by name; this module formats results into UI widgets.
package torqueui

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-torqueui/pkg/host"
	"github.com/goliatone/go-torqueui/pkg/panel"
	"github.com/goliatone/go-torqueui/pkg/render"
	"github.com/goliatone/go-torqueui/pkg/renderers/webview"
	"github.com/goliatone/go-torqueui/pkg/tree"
)

// Option configures the UI wiring.
type Option func(*config)

type config struct {
	logger   *log.Logger
	notifier host.Notifier
	renderer render.Renderer
}

// WithLogger attaches a structured logger to both components.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithNotifier routes user-facing notifications through the given notifier.
func WithNotifier(notifier host.Notifier) Option {
	return func(cfg *config) {
		if notifier != nil {
			cfg.notifier = notifier
		}
	}
}

// WithRenderer overrides the form renderer (webview by default).
func WithRenderer(renderer render.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderer = renderer
		}
	}
}

// UI bundles the blueprint tree provider and the form panel manager, and
// dispatches tree selections to the right place.
type UI struct {
	Blueprints *tree.Provider
	Forms      *panel.Manager

	invoker host.Invoker
}

// New wires the blueprint provider and form manager over the host's command
// bus, profile state, and panel factory.
func New(invoker host.Invoker, profiles host.ProfileStore, panels panel.Factory, options ...Option) (*UI, error) {
	if invoker == nil {
		return nil, fmt.Errorf("torqueui: invoker is required")
	}
	if profiles == nil {
		return nil, fmt.Errorf("torqueui: profile store is required")
	}

	cfg := config{
		logger:   log.Default(),
		notifier: host.NewLogNotifier(nil),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	manager, err := panel.NewManager(invoker, panels,
		panel.WithNotifier(cfg.notifier),
		panel.WithLogger(cfg.logger),
		panel.WithRenderer(cfg.renderer),
	)
	if err != nil {
		return nil, err
	}

	provider := tree.New(invoker, profiles,
		tree.WithNotifier(cfg.notifier),
		tree.WithLogger(cfg.logger),
	)

	return &UI{
		Blueprints: provider,
		Forms:      manager,
		invoker:    invoker,
	}, nil
}

// HandleSelection dispatches an activated tree item: blueprint items open the
// reserve form, anything else forwards its bound command to the host.
func (ui *UI) HandleSelection(ctx context.Context, item tree.Item) error {
	if item.Action == nil {
		return nil
	}

	if item.Action.Command == tree.ActionOpenReserveForm {
		args := item.Action.Reserve
		if args == nil {
			return fmt.Errorf("torqueui: item %q carries no reserve arguments", item.Label)
		}
		return ui.Forms.ShowOrUpdate(ctx, args.BlueprintName, args.Inputs, args.Artifacts, args.Branch)
	}

	if _, err := ui.invoker.Invoke(ctx, item.Action.Command); err != nil {
		return fmt.Errorf("torqueui: invoke %q: %w", item.Action.Command, err)
	}
	return nil
}

// EmbeddedTemplates exposes the built-in webview templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return webview.TemplatesFS()
}
