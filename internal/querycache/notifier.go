package querycache

import "log/slog"

// Notifier receives the user-visible outcome of every mutation; the UI
// plugs its toast implementation in here.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// SlogNotifier is the default sink when no UI notifier is attached.
type SlogNotifier struct{}

func (SlogNotifier) Success(message string) { slog.Info("notification", "kind", "success", "msg", message) }

func (SlogNotifier) Error(message string) { slog.Warn("notification", "kind", "error", "msg", message) }
