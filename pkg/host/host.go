// Package host models the capabilities this module borrows from the editor
// runtime it is embedded in: a named command bus, user notifications, and the
// active connection profile. Everything behind these interfaces is owned by
// the host; this module only formats what goes in and comes out.
package host

import "context"

// Command names understood by the host. The host owns their implementations;
// callers here invoke them by name and await the result as a black box.
const (
	CommandListBlueprints   = "list_blueprints"
	CommandStartSandbox     = "start_torque_sandbox"
	CommandAddProfile       = "add_profile"
	CommandRefreshSandboxes = "refresh_sandboxes"
)

// Invoker dispatches a host command by name and returns its raw string
// result. Commands that produce no payload return "".
type Invoker interface {
	Invoke(ctx context.Context, command string, args ...string) (string, error)
}

// Notifier surfaces user-facing notifications through the host UI.
type Notifier interface {
	Info(message string)
	Warn(message string)
	Error(message string)
}

// Profile is a stored connection context. Label selects the profile; Account
// and Space describe the remote environment it targets.
type Profile struct {
	Label   string `yaml:"label" json:"label"`
	Account string `yaml:"account,omitempty" json:"account,omitempty"`
	Space   string `yaml:"space,omitempty" json:"space,omitempty"`
}

// ProfileStore reports which profile, if any, is currently active.
type ProfileStore interface {
	Active() (Profile, bool)
}

// StaticProfile is a ProfileStore pinned to a single profile. A zero Label
// means no active profile.
type StaticProfile struct {
	Profile Profile
}

func (s StaticProfile) Active() (Profile, bool) {
	if s.Profile.Label == "" {
		return Profile{}, false
	}
	return s.Profile, true
}
