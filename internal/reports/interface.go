package reports

import "github.com/cockroachdb/errors"

// ErrNotFound is returned when no report exists for the requested id.
var ErrNotFound = errors.New("report not found")

// ReportStore defines the interface for persisting and retrieving
// generated scouting reports.
type ReportStore interface {
	Save(report *Report) error
	Get(id string) (*Report, error)
	List(teamID string, limit int) ([]Summary, error)
	Delete(id string) error
}
