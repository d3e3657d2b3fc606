package analytics

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"

	"github.com/mbkold/scoutline/internal/gridapi"
	"github.com/mbkold/scoutline/internal/metrics"
)

// Analyzer builds opponent team profiles from a match source. The
// aggregation stages are pure functions over the normalized window,
// so they run concurrently once normalization is done.
type Analyzer struct {
	source  gridapi.MatchSource
	metrics metrics.Metrics
	params  Params

	// seam for tests; production always uses AggregateMapStats.
	mapStatsFn func([]NormalizedMatch, string) []MapStat
}

func New(source gridapi.MatchSource, m metrics.Metrics, params Params) *Analyzer {
	return &Analyzer{
		source:     source,
		metrics:    m,
		params:     params,
		mapStatsFn: AggregateMapStats,
	}
}

// BuildTeamProfile fetches the most recent matchCount matches for the
// team, normalizes them, and runs every aggregation stage. Fetch
// failures are fatal; malformed records are skipped and counted; a
// window with zero usable matches yields ErrInsufficientData.
func (a *Analyzer) BuildTeamProfile(ctx context.Context, teamID string, game gridapi.Game, matchCount int) (*TeamProfile, error) {
	raw, err := a.source.FetchMatches(ctx, teamID, game, matchCount)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "fetching matches for team %s", teamID), ErrSource)
	}

	res := Normalize(raw)
	if res.Skipped > 0 {
		a.metrics.AddRecordsSkipped(res.Skipped)
		log.Warn("skipped malformed match records", "team_id", teamID, "skipped", res.Skipped)
	}
	if len(res.Matches) == 0 {
		return nil, errors.Mark(errors.Newf("no usable matches for team %s", teamID), ErrInsufficientData)
	}

	profile := &TeamProfile{
		TeamID:          teamID,
		Game:            game,
		MatchesAnalyzed: len(res.Matches),
		SkippedRecords:  res.Skipped,
	}
	for _, m := range res.Matches {
		if _, ok := m.Team(teamID); !ok {
			continue
		}
		if m.WonBy(teamID) {
			profile.Wins++
		} else {
			profile.Losses++
		}
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		profile.Compositions = TrackCompositions(res.Matches, teamID)
	})
	wg.Go(func() {
		profile.Players = ProfilePlayers(res.Matches, teamID, a.params.Weights)
	})
	if game == gridapi.GameValorant {
		wg.Go(func() {
			profile.MapStats = a.mapStatsFn(res.Matches, teamID)
		})
	}
	wg.Wait()

	profile.Threats = RankThreats(profile.Players, a.params.DecayLambda)
	return profile, nil
}
