package narrative

import (
	"context"
	"sync"

	"github.com/mbkold/scoutline/internal/analytics"
)

// MockGenerator is a mock implementation of the Generator interface for
// testing. It is safe for concurrent use.
type MockGenerator struct {
	mu sync.Mutex

	// Spies for method calls
	SummarizeFunc        func(ctx context.Context, profile *analytics.TeamProfile, kind Kind) (string, error)
	SummarizeMatchupFunc func(ctx context.Context, opponent, ours *analytics.TeamProfile) (string, error)

	// Call records
	SummarizeCalls        []SummarizeCall
	SummarizeMatchupCalls []SummarizeMatchupCall
}

// SummarizeCall records the arguments of one Summarize call.
type SummarizeCall struct {
	TeamID string
	Kind   Kind
}

// SummarizeMatchupCall records the arguments of one SummarizeMatchup call.
type SummarizeMatchupCall struct {
	OpponentID string
	OurID      string
}

// NewMockGenerator creates a new mock instance.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Reset clears all call records.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummarizeCalls = nil
	m.SummarizeMatchupCalls = nil
}

func (m *MockGenerator) Summarize(ctx context.Context, profile *analytics.TeamProfile, kind Kind) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummarizeCalls = append(m.SummarizeCalls, SummarizeCall{TeamID: profile.TeamID, Kind: kind})
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, profile, kind)
	}
	return "mock summary", nil
}

func (m *MockGenerator) SummarizeMatchup(ctx context.Context, opponent, ours *analytics.TeamProfile) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SummarizeMatchupCalls = append(m.SummarizeMatchupCalls, SummarizeMatchupCall{OpponentID: opponent.TeamID, OurID: ours.TeamID})
	if m.SummarizeMatchupFunc != nil {
		return m.SummarizeMatchupFunc(ctx, opponent, ours)
	}
	return "mock matchup brief", nil
}
