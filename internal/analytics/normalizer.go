package analytics

import (
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/mbkold/scoutline/internal/gridapi"
)

// NormalizeResult carries the usable matches plus a skip-count
// diagnostic for records that were dropped as malformed.
type NormalizeResult struct {
	Matches []NormalizedMatch
	Skipped int
}

// Normalize converts raw provider records into the canonical internal
// representation, preserving order (most-recent-first). Records missing
// required fields are dropped and counted, never aborting the batch.
func Normalize(raw []gridapi.RawMatch) NormalizeResult {
	res := NormalizeResult{Matches: make([]NormalizedMatch, 0, len(raw))}
	for _, r := range raw {
		m, err := normalizeOne(r)
		if err != nil {
			res.Skipped++
			log.Warn("Dropping malformed match record", "matchID", r.MatchID, "error", err)
			continue
		}
		res.Matches = append(res.Matches, m)
	}
	return res
}

// normalizeOne validates and converts a single record. Every violation
// is marked ErrData so the caller's skip accounting stays uniform.
func normalizeOne(r gridapi.RawMatch) (NormalizedMatch, error) {
	if !r.Game.Valid() {
		return NormalizedMatch{}, errors.Mark(errors.Newf("unknown game %q", r.Game), ErrData)
	}
	if len(r.Teams) != 2 {
		return NormalizedMatch{}, errors.Mark(errors.Newf("expected 2 teams, got %d", len(r.Teams)), ErrData)
	}
	if r.WinnerID == "" {
		return NormalizedMatch{}, errors.Mark(errors.New("missing winner"), ErrData)
	}
	if r.WinnerID != r.Teams[0].ID && r.WinnerID != r.Teams[1].ID {
		return NormalizedMatch{}, errors.Mark(errors.Newf("winner %q is not a participant", r.WinnerID), ErrData)
	}
	if r.Teams[0].ID == "" || r.Teams[1].ID == "" {
		return NormalizedMatch{}, errors.Mark(errors.New("missing team id"), ErrData)
	}
	if r.Game == gridapi.GameValorant && r.MapName == "" {
		return NormalizedMatch{}, errors.Mark(errors.New("valorant record missing map"), ErrData)
	}

	m := NormalizedMatch{
		MatchID:   r.MatchID,
		Game:      r.Game,
		Timestamp: r.Timestamp,
		WinnerID:  r.WinnerID,
	}
	// The shared schema only carries a map for VALORANT.
	if r.Game == gridapi.GameValorant {
		m.MapName = r.MapName
	}
	for i := 0; i < 2; i++ {
		m.Teams[i] = NormalizedTeam{
			ID:    r.Teams[i].ID,
			Name:  r.Teams[i].Name,
			Picks: append([]string(nil), r.Teams[i].Picks...),
		}
	}
	for _, p := range r.Players {
		side := p.Side
		if r.Game != gridapi.GameValorant {
			side = gridapi.SideNone
		}
		m.Players = append(m.Players, PlayerLine{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			TeamID:      p.TeamID,
			Role:        p.Role,
			Kills:       p.Kills,
			Deaths:      p.Deaths,
			Assists:     p.Assists,
			Damage:      p.Damage,
			CombatScore: p.CombatScore,
			Side:        side,
		})
	}
	return m, nil
}
