package reports

import (
	"database/sql"
	"sync"
	"time"

	"github.com/mbkold/scoutline/internal/analytics"
	"github.com/mbkold/scoutline/internal/gridapi"
)

// store handles all database operations for scouting reports.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Report is one generated scouting report. Narrative is nil when
// generation was degraded to numbers only.
type Report struct {
	ID              string                 `json:"id"`
	TeamID          string                 `json:"team_id"`
	Game            gridapi.Game           `json:"game"`
	Profile         *analytics.TeamProfile `json:"profile"`
	Narrative       *string                `json:"narrative,omitempty"`
	KeyFindings     []string               `json:"key_findings"`
	PrepPriorities  []string               `json:"prep_priorities"`
	MatchesAnalyzed int                    `json:"matches_analyzed"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// Summary is the listing projection of a report, without the profile
// payload.
type Summary struct {
	ID              string       `json:"id"`
	TeamID          string       `json:"team_id"`
	Game            gridapi.Game `json:"game"`
	MatchesAnalyzed int          `json:"matches_analyzed"`
	GeneratedAt     time.Time    `json:"generated_at"`
}
