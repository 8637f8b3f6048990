package tree

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/host"
)

const noProfileNotice = "No active Torque profile. Add a profile to browse blueprints."

// Option configures a Provider.
type Option func(*Provider)

// WithNotifier routes user-facing notices through the given notifier.
func WithNotifier(notifier host.Notifier) Option {
	return func(p *Provider) {
		if notifier != nil {
			p.notifier = notifier
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *log.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Provider lists launchable blueprints as tree items. It implements the
// host's tree-data-provider shape: Children, TreeItem, and a change
// notification sink that requests a full re-render from the root.
type Provider struct {
	invoker  host.Invoker
	profiles host.ProfileStore
	notifier host.Notifier
	logger   *log.Logger

	mu          sync.Mutex
	started     bool
	noticeShown bool
	generation  uint64
	items       []Item
	listeners   []func()
}

// New constructs a Provider over the given command bus and profile state.
func New(invoker host.Invoker, profiles host.ProfileStore, options ...Option) *Provider {
	p := &Provider{
		invoker:  invoker,
		profiles: profiles,
		notifier: host.NewLogNotifier(nil),
		logger:   log.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// OnDidChange registers a listener fired whenever the provider wants the
// host to re-render the tree from the root.
func (p *Provider) OnDidChange(fn func()) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

// Refresh invalidates any in-flight listing and asks the host to re-render.
func (p *Provider) Refresh() {
	p.mu.Lock()
	p.generation++
	listeners := make([]func(), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// TreeItem resolves an item for display. Items are already display-shaped,
// so this is the identity; it exists to complete the provider contract.
func (p *Provider) TreeItem(item Item) Item {
	return item
}

// Children lists the items under parent. Blueprint items are leaves, so a
// non-nil parent always yields nil. The very first call returns nil too,
// deferring population to an explicit refresh so the view does not list
// before the host finished initialising.
func (p *Provider) Children(ctx context.Context, parent *Item) ([]Item, error) {
	if parent != nil {
		return nil, nil
	}

	p.mu.Lock()
	if !p.started {
		p.started = true
		p.mu.Unlock()
		return nil, nil
	}

	profile, active := p.profiles.Active()
	if !active {
		firstNotice := !p.noticeShown
		p.noticeShown = true
		p.mu.Unlock()

		if firstNotice {
			p.notifier.Info(noProfileNotice)
		}
		return []Item{loginItem()}, nil
	}

	token := p.generation
	p.mu.Unlock()

	payload, err := p.invoker.Invoke(ctx, host.CommandListBlueprints)
	if err != nil {
		p.notifier.Error(fmt.Sprintf("Unable to list blueprints: %v", err))
		return nil, fmt.Errorf("tree: list blueprints: %w", err)
	}

	summaries, err := blueprint.DecodeList(payload)
	if err != nil {
		p.notifier.Error(fmt.Sprintf("Unable to read blueprints listing: %v", err))
		return nil, fmt.Errorf("tree: %w", err)
	}

	items := p.buildItems(summaries)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.generation {
		// A newer refresh superseded this listing while it was in flight;
		// keep the snapshot belonging to the newer generation.
		p.logger.Debug("dropping stale blueprint listing",
			"token", token, "generation", p.generation, "profile", profile.Label)
		return p.items, nil
	}
	p.items = items
	return items, nil
}

func (p *Provider) buildItems(summaries []blueprint.Summary) []Item {
	items := make([]Item, 0, len(summaries))
	for _, summary := range summaries {
		if !summary.Launchable() {
			p.logger.Debug("skipping blueprint",
				"blueprint", summary.Name, "enabled", summary.Enabled, "errors", len(summary.Errors))
			continue
		}

		branch, err := blueprint.Branch(summary.URL)
		if err != nil {
			// Per-entry skip: one malformed URL must not blank the whole view.
			p.logger.Warn("skipping blueprint without branch segment",
				"blueprint", summary.Name, "url", summary.URL)
			continue
		}

		items = append(items, Item{
			Label:       summary.DisplayName(),
			Description: summary.Description,
			Action: &Action{
				Command: ActionOpenReserveForm,
				Reserve: &ReserveArgs{
					BlueprintName: summary.Name,
					Inputs:        summary.Inputs,
					Artifacts:     summary.Artifacts,
					Branch:        branch,
				},
			},
		})
	}
	return items
}

func loginItem() Item {
	return Item{
		Label:       "Login to Torque",
		Description: "Add a connection profile",
		Action:      &Action{Command: host.CommandAddProfile},
	}
}
