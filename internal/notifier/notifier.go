package notifier

import "github.com/mbkold/scoutline/internal/reports"

// Notifier defines a high-level interface for announcing generated
// scouting reports. This decouples the rest of the application from the
// specific notification provider (e.g., Slack).
type Notifier interface {
	SendReportNotification(report *reports.Report, dryRun bool) (string, error)
}
