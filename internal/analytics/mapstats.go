package analytics

import (
	"sort"

	"github.com/mbkold/scoutline/internal/gridapi"
)

type mapAccum struct {
	name        string
	attackWins  int
	attackGames int
	defWins     int
	defGames    int
	sample      int
}

// AggregateMapStats computes per-map attack and defense win rates for
// teamID across the window. Round-level data is not available at this
// granularity, so each match contributes one observation on the side
// the team started on; HalfStartOnly marks the approximation so
// downstream consumers do not read the rates as round win rates.
func AggregateMapStats(matches []NormalizedMatch, teamID string) []MapStat {
	accums := make(map[string]*mapAccum)
	for i := range matches {
		m := &matches[i]
		if m.MapName == "" {
			continue
		}
		if _, ok := m.Team(teamID); !ok {
			continue
		}
		side := startSide(m, teamID)
		if side == gridapi.SideNone {
			continue
		}
		a, ok := accums[m.MapName]
		if !ok {
			a = &mapAccum{name: m.MapName}
			accums[m.MapName] = a
		}
		a.sample++
		won := m.WonBy(teamID)
		if side == gridapi.SideAttack {
			a.attackGames++
			if won {
				a.attackWins++
			}
		} else {
			a.defGames++
			if won {
				a.defWins++
			}
		}
	}

	stats := make([]MapStat, 0, len(accums))
	for _, a := range accums {
		stats = append(stats, MapStat{
			MapName:        a.name,
			AttackWinRate:  rate(a.attackWins, a.attackGames),
			DefenseWinRate: rate(a.defWins, a.defGames),
			SampleSize:     a.sample,
			HalfStartOnly:  true,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].SampleSize != stats[j].SampleSize {
			return stats[i].SampleSize > stats[j].SampleSize
		}
		return stats[i].MapName < stats[j].MapName
	})
	return stats
}

// startSide derives the side a team started the match on from its
// players' recorded start sides. Conflicting or missing sides yield
// SideNone and the match is excluded from side splits.
func startSide(m *NormalizedMatch, teamID string) gridapi.Side {
	side := gridapi.SideNone
	for _, p := range m.Players {
		if p.TeamID != teamID || p.Side == gridapi.SideNone {
			continue
		}
		if side == gridapi.SideNone {
			side = p.Side
		} else if side != p.Side {
			return gridapi.SideNone
		}
	}
	return side
}

func rate(wins, games int) *float64 {
	if games == 0 {
		return nil
	}
	r := float64(wins) / float64(games)
	return &r
}
