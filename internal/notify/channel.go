package notify

import "context"

// Transport interfaces consumed by the reminder dispatcher. Implementations
// live outside this core; the binary wires log-only stand-ins by default.

type EmailSender interface {
	Send(ctx context.Context, address, subject, body string) error
}

type SMSSender interface {
	Send(ctx context.Context, number, body string) error
}

type InAppNotifier interface {
	Notify(ctx context.Context, userID uint, body string) error
}
