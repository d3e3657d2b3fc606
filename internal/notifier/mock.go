package notifier

import (
	"sync"

	"github.com/mbkold/scoutline/internal/reports"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendReportNotificationFunc func(report *reports.Report, dryRun bool) (string, error)

	// Call records
	SendReportNotificationCalls []SendReportNotificationCall
}

// SendReportNotificationCall records the arguments of one call.
type SendReportNotificationCall struct {
	Report *reports.Report
	DryRun bool
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendReportNotificationCalls = nil
}

func (m *Mock) SendReportNotification(report *reports.Report, dryRun bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendReportNotificationCalls = append(m.SendReportNotificationCalls, SendReportNotificationCall{Report: report, DryRun: dryRun})
	if m.SendReportNotificationFunc != nil {
		return m.SendReportNotificationFunc(report, dryRun)
	}
	return "mock-ts", nil
}
