package core

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

type (
	NotificationKind string

	// Notification is a transient user-facing message. It is never
	// persisted; display lifetime is owned by the notify package.
	Notification struct {
		ID      string
		Message string
		Kind    NotificationKind
	}
)
