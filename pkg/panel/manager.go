package panel

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-torqueui/pkg/blueprint"
	"github.com/goliatone/go-torqueui/pkg/host"
	"github.com/goliatone/go-torqueui/pkg/render"
	"github.com/goliatone/go-torqueui/pkg/renderers/webview"
)

// Option configures a Manager.
type Option func(*Manager)

// WithRenderer overrides the renderer used to produce panel documents.
func WithRenderer(renderer render.Renderer) Option {
	return func(m *Manager) {
		if renderer != nil {
			m.renderer = renderer
		}
	}
}

// WithNotifier routes user-facing notifications through the given notifier.
func WithNotifier(notifier host.Notifier) Option {
	return func(m *Manager) {
		if notifier != nil {
			m.notifier = notifier
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager owns the single live form session. Show requests while a session
// is open mutate and re-reveal it instead of opening a duplicate; disposing
// the panel clears the slot so the next request opens fresh.
//
// The host delivers every callback on its UI event loop, so the manager's
// state is effectively single-threaded; the struct itself holds no lock.
type Manager struct {
	factory  Factory
	invoker  host.Invoker
	renderer render.Renderer
	notifier host.Notifier
	logger   *log.Logger

	current *Session
}

// NewManager constructs a Manager. The webview renderer is the default; the
// factory opens host panels on demand.
func NewManager(invoker host.Invoker, factory Factory, options ...Option) (*Manager, error) {
	if invoker == nil {
		return nil, fmt.Errorf("panel: invoker is required")
	}
	if factory == nil {
		return nil, fmt.Errorf("panel: panel factory is required")
	}

	m := &Manager{
		factory:  factory,
		invoker:  invoker,
		notifier: host.NewLogNotifier(nil),
		logger:   log.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	if m.renderer == nil {
		renderer, err := webview.New()
		if err != nil {
			return nil, fmt.Errorf("panel: default renderer: %w", err)
		}
		m.renderer = renderer
	}
	return m, nil
}

// ShowOrUpdate opens the reserve form for a blueprint, or, when a session is
// already live, updates it in place and brings it to the foreground.
func (m *Manager) ShowOrUpdate(ctx context.Context, blueprintName string, inputs []blueprint.Input, artifacts blueprint.Artifacts, branch string) error {
	if session := m.current; session != nil {
		session.Update(blueprintName, inputs, artifacts)
		if err := session.Render(ctx); err != nil {
			return err
		}
		session.Reveal()
		return nil
	}

	hostPanel, err := m.factory("Reserve sandbox")
	if err != nil {
		m.notifier.Error(fmt.Sprintf("Unable to open reserve form: %v", err))
		return fmt.Errorf("panel: open panel: %w", err)
	}

	session := &Session{
		state: FormState{
			BlueprintName: blueprintName,
			Inputs:        inputs,
			Artifacts:     artifacts,
			Branch:        branch,
		},
		panel:    hostPanel,
		renderer: m.renderer,
		invoker:  m.invoker,
		notifier: m.notifier,
		logger:   m.logger,
	}

	hostPanel.OnMessage(session.handleMessage)
	hostPanel.OnDispose(func() {
		m.release(session)
	})

	m.current = session

	if err := session.Render(ctx); err != nil {
		session.Close()
		return err
	}
	session.Reveal()
	return nil
}

// Current returns the live session, if any.
func (m *Manager) Current() *Session {
	return m.current
}

// Close disposes the live session, if any.
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Close()
	}
}

// release clears the singleton slot once the panel is gone.
func (m *Manager) release(session *Session) {
	if m.current == session {
		m.current = nil
		m.logger.Debug("form session released", "blueprint", session.state.BlueprintName)
	}
}
