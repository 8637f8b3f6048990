package host

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// CommandFunc implements a single host command.
type CommandFunc func(ctx context.Context, args ...string) (string, error)

// Registry is an in-process Invoker backed by a named handler map. It exists
// so the CLI and tests can stand in for the editor's command bus; an embedded
// deployment would implement Invoker against the real host instead.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]CommandFunc
	logger   *log.Logger
}

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger attaches a logger used to trace command dispatch.
func WithRegistryLogger(logger *log.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty command registry.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		handlers: make(map[string]CommandFunc),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Register adds a handler under a command name. Duplicate names return an
// error so wiring mistakes fail loudly at startup.
func (r *Registry) Register(command string, fn CommandFunc) error {
	if command == "" {
		return fmt.Errorf("host: command name is required")
	}
	if fn == nil {
		return fmt.Errorf("host: handler for %q is required", command)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[command]; exists {
		return fmt.Errorf("host: command %q already registered", command)
	}
	r.handlers[command] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(command string, fn CommandFunc) {
	if err := r.Register(command, fn); err != nil {
		panic(err)
	}
}

// Invoke dispatches a command by name.
func (r *Registry) Invoke(ctx context.Context, command string, args ...string) (string, error) {
	r.mu.RLock()
	fn, ok := r.handlers[command]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("host: command %q not registered", command)
	}
	if r.logger != nil {
		r.logger.Debug("invoke host command", "command", command, "args", len(args))
	}
	return fn(ctx, args...)
}

// Has reports whether a command is registered.
func (r *Registry) Has(command string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.handlers[command]
	return ok
}

// List returns the sorted registered command names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ Invoker = (*Registry)(nil)
