package notification

// Kind is the visual style of a notice.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// Notification is a transient toast shown to the user.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// New builds a notification, treating unknown kinds as info.
func New(kind Kind, message string) Notification {
	switch kind {
	case Success, Error, Warning, Info:
	default:
		kind = Info
	}
	return Notification{Kind: kind, Message: message}
}

// Icon returns the icon name used for kind.
func Icon(kind Kind) string {
	switch kind {
	case Success:
		return "check-circle"
	case Error:
		return "exclamation-circle"
	case Warning:
		return "exclamation-triangle"
	default:
		return "info-circle"
	}
}

// Icon returns the icon name for the notification kind.
func (n Notification) Icon() string {
	return Icon(n.Kind)
}
