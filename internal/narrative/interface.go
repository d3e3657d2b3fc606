package narrative

import (
	"context"

	"github.com/mbkold/scoutline/internal/analytics"
)

// Kind selects the narrative flavor for a single-team summary.
type Kind string

const (
	// KindScouting is the standard opponent scouting summary.
	KindScouting Kind = "scouting"
	// KindCounterStrategy asks for concrete counter-play suggestions.
	KindCounterStrategy Kind = "counter-strategy"
)

// Generator defines the interface for turning numeric team profiles
// into prose. Implementations must be side-effect free on failure so
// callers can degrade to a numbers-only report.
type Generator interface {
	Summarize(ctx context.Context, profile *analytics.TeamProfile, kind Kind) (string, error)
	SummarizeMatchup(ctx context.Context, opponent, ours *analytics.TeamProfile) (string, error)
}
