package reports

import (
	"fmt"
	"strings"

	"github.com/mbkold/scoutline/internal/analytics"
)

// KeyFindings derives headline observations from a profile. The output
// is fully deterministic: the same profile always yields the same
// findings in the same order, independent of any narrative generation.
func KeyFindings(profile *analytics.TeamProfile) []string {
	var findings []string

	if profile.MatchesAnalyzed > 0 {
		winRate := float64(profile.Wins) / float64(profile.MatchesAnalyzed)
		findings = append(findings, fmt.Sprintf("Won %d of last %d matches (%.0f%%)",
			profile.Wins, profile.MatchesAnalyzed, winRate*100))
	}

	if len(profile.Compositions) > 0 {
		top := profile.Compositions[0]
		findings = append(findings, fmt.Sprintf("Most drafted composition: %s (%d of %d matches, win rate %s)",
			strings.Join(top.Picks, ", "), top.PickCount, profile.MatchesAnalyzed, formatRate(top.WinRate)))
		if top.PickRate >= 0.5 && profile.MatchesAnalyzed >= 4 {
			findings = append(findings, "Draft is predictable: one composition covers at least half the window")
		}
	}

	if len(profile.Threats) > 0 {
		top := profile.Threats[0]
		findings = append(findings, fmt.Sprintf("Primary threat: %s (threat score %.3f)", top.Name, top.ThreatScore))
	}

	for _, ms := range profile.MapStats {
		if ms.AttackWinRate != nil && *ms.AttackWinRate >= 0.7 && ms.SampleSize >= 3 {
			findings = append(findings, fmt.Sprintf("Strong attack starts on %s (%s over %d matches)",
				ms.MapName, formatRate(ms.AttackWinRate), ms.SampleSize))
		}
		if ms.DefenseWinRate != nil && *ms.DefenseWinRate <= 0.3 && ms.SampleSize >= 3 {
			findings = append(findings, fmt.Sprintf("Weak defense starts on %s (%s over %d matches)",
				ms.MapName, formatRate(ms.DefenseWinRate), ms.SampleSize))
		}
	}

	return findings
}

// PrepPriorities derives a short ordered preparation list from a
// profile, highest leverage first.
func PrepPriorities(profile *analytics.TeamProfile) []string {
	var priorities []string

	if len(profile.Threats) > 0 {
		top := profile.Threats[0]
		priorities = append(priorities, fmt.Sprintf("Neutralize %s early; they drive this team's wins", top.Name))
	}
	for _, th := range profile.Threats {
		if containsTag(th.RationaleTags, "hot-streak") {
			priorities = append(priorities, fmt.Sprintf("Watch recent form of %s; trending above their average", th.Name))
		}
	}

	if len(profile.Compositions) > 0 {
		top := profile.Compositions[0]
		if top.PickRate >= 0.5 {
			priorities = append(priorities, fmt.Sprintf("Prepare a counter to their default draft: %s",
				strings.Join(top.Picks, ", ")))
		}
	}

	for _, ms := range profile.MapStats {
		if ms.DefenseWinRate != nil && *ms.DefenseWinRate <= 0.3 && ms.SampleSize >= 3 {
			priorities = append(priorities, fmt.Sprintf("Target %s and force them onto defense starts", ms.MapName))
			break
		}
	}

	if len(priorities) == 0 && profile.MatchesAnalyzed > 0 {
		priorities = append(priorities, "No standout weaknesses in window; prepare standard defaults")
	}
	return priorities
}

// CounterRecommendations derives draft-level counter suggestions from
// the opponent's composition tendencies.
func CounterRecommendations(profile *analytics.TeamProfile) []string {
	var recs []string
	for i, c := range profile.Compositions {
		if i == 3 {
			break
		}
		recs = append(recs, fmt.Sprintf("Expect %s (picked %d times, win rate %s); draft to deny its win conditions",
			strings.Join(c.Picks, ", "), c.PickCount, formatRate(c.WinRate)))
	}
	for _, th := range profile.Threats {
		if containsTag(th.RationaleTags, "flex-player") {
			recs = append(recs, fmt.Sprintf("Ban around %s; their role is unpredictable", th.Name))
		}
	}
	return recs
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func formatRate(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", *r*100)
}
