package host

import "github.com/charmbracelet/log"

// LogNotifier routes notifications to a structured logger. It is the default
// Notifier for headless runs; an embedded deployment would wire the host's
// toast/notification API instead.
type LogNotifier struct {
	Logger *log.Logger
}

// NewLogNotifier wraps the given logger. A nil logger falls back to the
// package default.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Info(message string)  { n.Logger.Info(message) }
func (n *LogNotifier) Warn(message string)  { n.Logger.Warn(message) }
func (n *LogNotifier) Error(message string) { n.Logger.Error(message) }

var _ Notifier = (*LogNotifier)(nil)
