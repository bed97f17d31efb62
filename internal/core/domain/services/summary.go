package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/core/domain/model/notification"
	"shipconfirm/internal/core/domain/model/run"
)

// Titles of the operational notifications.
const (
	SummarySuccessTitle   = "Ejecución de envíos completada exitosamente"
	SummaryWarningTitle   = "Ejecución de envíos completada con errores"
	FetchFailureTitle     = "Error al consultar PrestaShop API"
	FetchFailureMessage   = "No se pudo conectar con la API de PrestaShop para obtener pedidos pendientes de envío"
	RunCrashTitle         = "Error crítico en proceso de confirmación de envíos"
	detailTimestampLayout = time.RFC3339
)

// BuildRunSummary shapes the end-of-run notification. It is success-styled
// when no order failed and warning-styled otherwise, in which case it carries
// the first run.MaxReportedErrors errors. Orders whose state could not be
// advanced are listed without affecting the styling.
func BuildRunSummary(stats *run.Statistics, runID kernel.RunID, at time.Time) (notification.Notification, error) {
	message := fmt.Sprintf(
		"Procesamiento de envíos completado:\n"+
			"- Total de pedidos: %d\n"+
			"- Exitosos: %d\n"+
			"- Fallidos: %d\n"+
			"- Tasa de éxito: %.1f%%",
		stats.Processed(), stats.Succeeded(), stats.Failed(), stats.SuccessRate(),
	)

	var details []notification.Detail
	if stats.HasFailures() {
		details = append(details,
			notification.Detail{Key: "total_orders", Value: strconv.Itoa(stats.Processed())},
			notification.Detail{Key: "successful", Value: strconv.Itoa(stats.Succeeded())},
			notification.Detail{Key: "failed", Value: strconv.Itoa(stats.Failed())},
			notification.Detail{Key: "errors", Value: formatErrors(stats.ReportedErrors())},
		)
	}
	if drift := stats.StateDrift(); len(drift) > 0 {
		details = append(details, notification.Detail{
			Key:   "state_not_updated",
			Value: strings.Join(drift, ", "),
		})
	}
	if len(details) > 0 {
		details = append(details, notification.Detail{Key: "run_id", Value: runID.String()})
	}

	if stats.HasFailures() {
		return notification.New(notification.Warning, SummaryWarningTitle, message, at, details...)
	}
	return notification.New(notification.Success, SummarySuccessTitle, message, at, details...)
}

// BuildCriticalNotification shapes the notification of a run that aborted.
// A nil cause means the order source could not be queried without further
// detail.
func BuildCriticalNotification(title, message string, cause error, runID kernel.RunID, at time.Time) (notification.Notification, error) {
	details := []notification.Detail{
		{Key: "timestamp", Value: at.Format(detailTimestampLayout)},
		{Key: "run_id", Value: runID.String()},
	}
	if cause != nil {
		details = append(details, notification.Detail{Key: "error", Value: cause.Error()})
	}
	return notification.New(notification.Critical, title, message, at, details...)
}

func formatErrors(entries []run.ErrorEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("order %s [%s]: %s", e.OrderID, e.Stage, e.Message))
	}
	return strings.Join(lines, "\n")
}
