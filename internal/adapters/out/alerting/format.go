// Package alerting implements the operational notification channels: a
// back-office mailbox and a Slack incoming webhook.
package alerting

import (
	"fmt"
	"strings"
	"time"

	"shipconfirm/internal/core/domain/model/notification"
)

const (
	systemName      = "Confirmación de Envíos"
	footerText      = "Confirmación de Envíos - Sistema Automatizado - Generado automáticamente"
	timestampLayout = time.DateTime
	maxSlackDetails = 2000
)

type levelStyle struct {
	emoji       string
	status      string
	subjectTag  string
	color       string
	panelColor  string
	adviceTitle string
	advice      string
}

var styles = map[notification.Level]levelStyle{
	notification.Info: {
		emoji: "ℹ️", status: "INFO", subjectTag: "[INFO]",
		color: "#17a2b8", panelColor: "#d1ecf1",
		adviceTitle: "Recomendación:", advice: "Sin acción necesaria",
	},
	notification.Success: {
		emoji: "✅", status: "ÉXITO", subjectTag: "[ÉXITO]",
		color: "#28a745", panelColor: "#d4edda",
		adviceTitle: "Recomendación:", advice: "Sin acción necesaria",
	},
	notification.Warning: {
		emoji: "⚠️", status: "ADVERTENCIA", subjectTag: "[ADVERTENCIA]",
		color: "#ffc107", panelColor: "#fff3cd",
		adviceTitle: "Recomendación:", advice: "Monitorear la situación",
	},
	notification.Critical: {
		emoji: "🚨", status: "ERROR CRÍTICO", subjectTag: "[ERROR CRÍTICO]",
		color: "#dc3545", panelColor: "#f8d7da",
		adviceTitle: "Acción requerida:", advice: "Intervención inmediata requerida",
	},
}

func styleOf(level notification.Level) levelStyle {
	if s, ok := styles[level]; ok {
		return s
	}
	return styles[notification.Info]
}

func subjectOf(n notification.Notification) string {
	return fmt.Sprintf("%s - %s: %s", styleOf(n.Level).subjectTag, systemName, n.Title)
}

func timestampOf(n notification.Notification) string {
	at := n.Timestamp
	if at.IsZero() {
		at = time.Now()
	}
	return at.Format(timestampLayout)
}

// plainDetails renders details as "Key:\nvalue" blocks.
func plainDetails(details []notification.Detail) string {
	var sb strings.Builder
	sb.WriteString("Detalles técnicos:\n")
	for _, d := range details {
		fmt.Fprintf(&sb, "\n%s:\n%s\n", notification.HumanKey(d.Key), d.Value)
	}
	return sb.String()
}

// lineDetails renders details one "Key: value" per line.
func lineDetails(details []notification.Detail) string {
	lines := make([]string, 0, len(details))
	for _, d := range details {
		lines = append(lines, fmt.Sprintf("%s: %s", notification.HumanKey(d.Key), d.Value))
	}
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
