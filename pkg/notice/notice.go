// Package notice carries the ephemeral user-facing messages the frontend
// renders as toasts: a {title, message, severity} tuple, nothing more.
package notice

type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityDestructive Severity = "destructive"
)

type Notice struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func Info(title, message string) Notice {
	return Notice{Title: title, Message: message, Severity: SeverityInfo}
}

func Destructive(title, message string) Notice {
	return Notice{Title: title, Message: message, Severity: SeverityDestructive}
}
