// Package notify is the user-facing notification sink. Messages are
// fire-and-forget; no delivery acknowledgement exists or is awaited.
package notify

import "log"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier writes notifications to the application logger. It stands in
// for the client-side toast sink.
type LogNotifier struct {
	Logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Notify(kind Kind, message string) {
	n.Logger.Printf("notify %s: %s", kind, message)
}

// Nop discards all notifications, for tests.
type Nop struct{}

func (Nop) Notify(Kind, string) {}
