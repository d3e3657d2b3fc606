package gridapi

import (
	"context"
	"sync"
)

// MockSource is a mock implementation of the MatchSource interface for
// testing. It is safe for concurrent use.
type MockSource struct {
	mu sync.Mutex

	// Spies for method calls
	FetchMatchesFunc func(ctx context.Context, teamID string, game Game, matchCount int) ([]RawMatch, error)

	// Call records
	FetchMatchesCalls []FetchMatchesCall
}

// FetchMatchesCall records the arguments of one FetchMatches call.
type FetchMatchesCall struct {
	TeamID     string
	Game       Game
	MatchCount int
}

// NewMockSource creates a new mock instance.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Reset clears all call records.
func (m *MockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchMatchesCalls = nil
}

func (m *MockSource) FetchMatches(ctx context.Context, teamID string, game Game, matchCount int) ([]RawMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchMatchesCalls = append(m.FetchMatchesCalls, FetchMatchesCall{TeamID: teamID, Game: game, MatchCount: matchCount})
	if m.FetchMatchesFunc != nil {
		return m.FetchMatchesFunc(ctx, teamID, game, matchCount)
	}
	return []RawMatch{}, nil
}
