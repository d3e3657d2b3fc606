package analytics

import (
	"sort"
	"strings"
)

// CompositionSignature canonicalizes a team's picks into a
// case-insensitive, order-independent key. Duplicate picks are kept, so
// the signature is a multiset, not a set: ["Jett","Omen"] and
// ["omen","jett"] collide, ["Jett","Jett"] does not collide with
// ["Jett"].
func CompositionSignature(picks []string) string {
	sorted := make([]string, len(picks))
	for i, p := range picks {
		sorted[i] = strings.ToLower(p)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// TrackCompositions aggregates the target team's draft choices across
// the window into frequency-ranked tendencies. A team with zero
// qualifying matches yields an empty set, not an error.
func TrackCompositions(matches []NormalizedMatch, teamID string) []CompositionEntry {
	type bucket struct {
		picks []string
		pick  int
		win   int
	}
	buckets := make(map[string]*bucket)
	qualifying := 0

	for i := range matches {
		team, ok := matches[i].Team(teamID)
		if !ok {
			continue
		}
		qualifying++
		sig := CompositionSignature(team.Picks)
		b, ok := buckets[sig]
		if !ok {
			sorted := append([]string(nil), team.Picks...)
			sort.Strings(sorted)
			b = &bucket{picks: sorted}
			buckets[sig] = b
		}
		b.pick++
		if matches[i].WonBy(teamID) {
			b.win++
		}
	}

	entries := make([]CompositionEntry, 0, len(buckets))
	for sig, b := range buckets {
		e := CompositionEntry{
			Signature: sig,
			Picks:     b.picks,
			PickCount: b.pick,
			WinCount:  b.win,
		}
		if qualifying > 0 {
			e.PickRate = float64(b.pick) / float64(qualifying)
		}
		if b.pick > 0 {
			wr := float64(b.win) / float64(b.pick)
			e.WinRate = &wr
		}
		entries = append(entries, e)
	}

	// Deterministic order: pick count desc, win rate desc, signature asc.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.PickCount != b.PickCount {
			return a.PickCount > b.PickCount
		}
		awr, bwr := rateOrNeg(a.WinRate), rateOrNeg(b.WinRate)
		if awr != bwr {
			return awr > bwr
		}
		return a.Signature < b.Signature
	})
	return entries
}

func rateOrNeg(r *float64) float64 {
	if r == nil {
		return -1
	}
	return *r
}
