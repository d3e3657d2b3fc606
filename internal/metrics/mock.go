package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	reportRuns        int
	reportsGenerated  int
	recordsSkipped    int
	narrativeFailures int
	reportDurations   []float64
	notifSent         int
	notifFailed       int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		reportDurations: make([]float64, 0),
	}
}

func (m *Mock) IncReportRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportRuns++
}

func (m *Mock) IncReportsGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportsGenerated++
}

func (m *Mock) AddRecordsSkipped(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordsSkipped += count
}

func (m *Mock) IncNarrativeFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.narrativeFailures++
}

func (m *Mock) ObserveReportDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportDurations = append(m.reportDurations, seconds)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// ReportRuns returns the number of times IncReportRuns was called.
func (m *Mock) ReportRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reportRuns
}

// ReportsGenerated returns the number of times IncReportsGenerated was called.
func (m *Mock) ReportsGenerated() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reportsGenerated
}

// RecordsSkipped returns the accumulated skip count.
func (m *Mock) RecordsSkipped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recordsSkipped
}

// NarrativeFailures returns the number of times IncNarrativeFailures was called.
func (m *Mock) NarrativeFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.narrativeFailures
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
