package gridapi

import "context"

// MatchSource defines the interface for fetching recent matches for a
// team. This allows for mock implementations to be used in tests.
type MatchSource interface {
	FetchMatches(ctx context.Context, teamID string, game Game, matchCount int) ([]RawMatch, error)
}
