package analytics

import (
	"fmt"
	"math"
	"sort"
)

// RankThreats orders a team's profiled players by how dangerous they
// are right now. The threat score is the impact score dampened by a
// recency factor: players whose appearances cluster in the most recent
// matches keep close to their full impact, while players who have not
// played lately decay towards zero.
func RankThreats(profiles []PlayerProfile, lambda float64) []ThreatEntry {
	entries := make([]ThreatEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, ThreatEntry{
			PlayerID:    p.PlayerID,
			Name:        p.Name,
			ThreatScore: p.ImpactScore * recencyFactor(p.Contributions, lambda),
		})
	}

	// Tie-breaks keep the ordering a strict total order: score, then
	// kill participation, then player id.
	kpByID := make(map[string]float64, len(profiles))
	for _, p := range profiles {
		kpByID[p.PlayerID] = p.KillParticipation
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ThreatScore != entries[j].ThreatScore {
			return entries[i].ThreatScore > entries[j].ThreatScore
		}
		if kpByID[entries[i].PlayerID] != kpByID[entries[j].PlayerID] {
			return kpByID[entries[i].PlayerID] > kpByID[entries[j].PlayerID]
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	tagThreats(entries, profiles)
	return entries
}

// recencyFactor weights each appearance by lambda^matchIndex (index 0
// is the most recent match) and normalizes against the best possible
// weight for the same number of appearances, so a player who played
// the N most recent matches gets exactly 1.0.
func recencyFactor(contribs []MatchContribution, lambda float64) float64 {
	if len(contribs) == 0 {
		return 0
	}
	actual := 0.0
	for _, c := range contribs {
		actual += math.Pow(lambda, float64(c.MatchIndex))
	}
	best := 0.0
	for i := 0; i < len(contribs); i++ {
		best += math.Pow(lambda, float64(i))
	}
	return actual / best
}

// tagThreats attaches deterministic rationale tags describing why a
// player ranks where they do.
func tagThreats(entries []ThreatEntry, profiles []PlayerProfile) {
	byID := make(map[string]PlayerProfile, len(profiles))
	for _, p := range profiles {
		byID[p.PlayerID] = p
	}
	for i := range entries {
		p, ok := byID[entries[i].PlayerID]
		if !ok {
			continue
		}
		var tags []string
		if entries[i].Rank == 1 {
			tags = append(tags, "primary-threat")
		}
		if p.KillParticipation >= 0.65 {
			tags = append(tags, "high-kill-participation")
		}
		if p.RoleConsistency >= 0.9 {
			tags = append(tags, fmt.Sprintf("locked-role:%s", p.Role))
		} else if p.RoleConsistency < 0.6 {
			tags = append(tags, "flex-player")
		}
		if recent := recentForm(p.Contributions); recent != "" {
			tags = append(tags, recent)
		}
		entries[i].RationaleTags = tags
	}
}

// recentForm flags players trending up or down across their three most
// recent appearances versus their window average.
func recentForm(contribs []MatchContribution) string {
	if len(contribs) < 3 {
		return ""
	}
	total := 0.0
	for _, c := range contribs {
		total += c.CombatScore
	}
	avg := total / float64(len(contribs))
	if avg == 0 {
		return ""
	}
	// Contributions are appended in window order, so the lowest match
	// indexes (most recent games) come first.
	recent := (contribs[0].CombatScore + contribs[1].CombatScore + contribs[2].CombatScore) / 3
	switch {
	case recent >= avg*1.15:
		return "hot-streak"
	case recent <= avg*0.85:
		return "cold-streak"
	}
	return ""
}
