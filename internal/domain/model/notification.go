package model

// NoNotificationMessage is served when no notification has been published.
const NoNotificationMessage = "No notification available."

// Notification is the message currently published by the external producer.
// Available is false when the placeholder is being served.
type Notification struct {
	Message   string
	Available bool
}
