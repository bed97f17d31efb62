// Package notification models the operational messages sent to the back-office
// team at the end of a run or when a run aborts.
package notification

import (
	"strings"
	"time"

	"shipconfirm/internal/pkg/errs"
)

// Level is the severity of a notification. It drives styling on every channel.
type Level int

const (
	Info Level = iota + 1
	Success
	Warning
	Critical
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Detail is one technical key/value pair attached to a notification. Details
// are kept as a slice so every channel renders them in the same order.
type Detail struct {
	Key   string
	Value string
}

// Notification is one operational message.
type Notification struct {
	Level     Level
	Title     string
	Message   string
	Details   []Detail
	Timestamp time.Time
}

// New builds a notification stamped with at.
func New(level Level, title, message string, at time.Time, details ...Detail) (Notification, error) {
	if strings.TrimSpace(title) == "" {
		return Notification{}, errs.NewValueIsRequiredError("notification title")
	}
	if level < Info || level > Critical {
		return Notification{}, errs.NewValueIsInvalidError("notification level")
	}
	return Notification{
		Level:     level,
		Title:     title,
		Message:   message,
		Details:   details,
		Timestamp: at,
	}, nil
}

// IsCritical reports whether the notification calls for immediate action.
func (n Notification) IsCritical() bool {
	return n.Level == Critical
}

// HumanKey turns a snake_case detail key into a title-cased label.
func HumanKey(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
