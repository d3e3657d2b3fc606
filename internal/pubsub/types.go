package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"

	"github.com/mbkold/scoutline/internal/gridapi"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventReportGenerated EventType = "report-generated"
	EventReportDeleted   EventType = "report-deleted"
)

// ReportEvent is the payload published when a scouting report is
// generated or deleted. Consumers decode it with ProcessMessage.
type ReportEvent struct {
	ReportID        string       `msgpack:"report_id"`
	TeamID          string       `msgpack:"team_id"`
	Game            gridapi.Game `msgpack:"game"`
	MatchesAnalyzed int          `msgpack:"matches_analyzed"`
	GeneratedAt     time.Time    `msgpack:"generated_at"`
}
