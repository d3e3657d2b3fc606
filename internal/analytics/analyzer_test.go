package analytics

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbkold/scoutline/internal/gridapi"
	"github.com/mbkold/scoutline/internal/metrics"
)

func newTestAnalyzer(source gridapi.MatchSource) (*Analyzer, *metrics.Mock) {
	m := metrics.NewMock()
	return New(source, m, DefaultParams()), m
}

func TestBuildTeamProfile(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return []gridapi.RawMatch{
			rawValMatch("m1", "team-a"),
			rawValMatch("m2", "team-b"),
		}, nil
	}
	analyzer, _ := newTestAnalyzer(source)

	profile, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)

	require.NoError(t, err)
	assert.Equal(t, "team-a", profile.TeamID)
	assert.Equal(t, 2, profile.MatchesAnalyzed)
	assert.Equal(t, 1, profile.Wins)
	assert.Equal(t, 1, profile.Losses)
	assert.NotEmpty(t, profile.Compositions)
	assert.NotEmpty(t, profile.Players)
	assert.NotEmpty(t, profile.Threats)
	assert.NotEmpty(t, profile.MapStats)

	require.Len(t, source.FetchMatchesCalls, 1)
	assert.Equal(t, 10, source.FetchMatchesCalls[0].MatchCount)
}

func TestBuildTeamProfileSourceFailure(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return nil, errors.New("upstream timeout")
	}
	analyzer, _ := newTestAnalyzer(source)

	_, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSource))
}

func TestBuildTeamProfileEmptyWindow(t *testing.T) {
	analyzer, _ := newTestAnalyzer(gridapi.NewMockSource())

	_, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
}

func TestBuildTeamProfileAllRecordsMalformed(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return []gridapi.RawMatch{rawValMatch("m1", "")}, nil
	}
	analyzer, m := newTestAnalyzer(source)

	_, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	assert.Equal(t, 1, m.RecordsSkipped())
}

func TestBuildTeamProfileCountsSkippedRecords(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return []gridapi.RawMatch{
			rawValMatch("m1", "team-a"),
			rawValMatch("m2", ""),
		}, nil
	}
	analyzer, m := newTestAnalyzer(source)

	profile, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, profile.MatchesAnalyzed)
	assert.Equal(t, 1, profile.SkippedRecords)
	assert.Equal(t, 1, m.RecordsSkipped())
}

func TestBuildTeamProfileLoLSkipsMapStats(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		raw := rawValMatch("m1", "team-a")
		raw.Game = gridapi.GameLoL
		raw.MapName = ""
		return []gridapi.RawMatch{raw}, nil
	}
	analyzer, _ := newTestAnalyzer(source)

	mapStatsCalls := 0
	analyzer.mapStatsFn = func(matches []NormalizedMatch, teamID string) []MapStat {
		mapStatsCalls++
		return AggregateMapStats(matches, teamID)
	}

	profile, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameLoL, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, mapStatsCalls)
	assert.Empty(t, profile.MapStats)
}

func TestBuildTeamProfileDeterministic(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return []gridapi.RawMatch{
			rawValMatch("m1", "team-a"),
			rawValMatch("m2", "team-b"),
			rawValMatch("m3", "team-a"),
		}, nil
	}
	analyzer, _ := newTestAnalyzer(source)

	first, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)
	require.NoError(t, err)
	second, err := analyzer.BuildTeamProfile(context.Background(), "team-a", gridapi.GameValorant, 10)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}
