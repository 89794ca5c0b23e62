package driven

import "context"

// NotificationSource defines the driven port for the externally produced
// notification message.
type NotificationSource interface {
	// Read returns the full message and true, or ("", false, nil) when no
	// notification has been published.
	Read(ctx context.Context) (string, bool, error)

	// Write publishes message, replacing any previous one.
	Write(ctx context.Context, message string) error

	// Clear removes the published message. Clearing an absent message is not an error.
	Clear(ctx context.Context) error
}
