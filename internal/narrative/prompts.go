package narrative

import (
	"fmt"
	"strings"

	"github.com/mbkold/scoutline/internal/analytics"
)

const systemPrompt = `You are an esports analyst writing scouting notes for a professional team.
Be concise and concrete. Base every claim strictly on the statistics provided.
Do not invent players, matches, or numbers that are not in the input.`

// buildPrompt renders a team profile into a stable textual prompt. The
// rendering is deterministic: the same profile always produces the same
// string, so prompt changes show up in diffs rather than flaking tests.
func buildPrompt(profile *analytics.TeamProfile, kind Kind) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Team %s (%s), last %d matches: %d wins, %d losses.\n",
		profile.TeamID, profile.Game, profile.MatchesAnalyzed, profile.Wins, profile.Losses)
	if profile.SkippedRecords > 0 {
		fmt.Fprintf(&b, "Note: %d malformed records were excluded from this window.\n", profile.SkippedRecords)
	}

	if len(profile.Compositions) > 0 {
		b.WriteString("\nMost played compositions:\n")
		for i, c := range profile.Compositions {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %s: picked %d times, win rate %s\n",
				strings.Join(c.Picks, ", "), c.PickCount, formatRate(c.WinRate))
		}
	}

	if len(profile.Threats) > 0 {
		b.WriteString("\nThreat ranking:\n")
		for _, th := range profile.Threats {
			fmt.Fprintf(&b, "%d. %s (threat %.3f", th.Rank, th.Name, th.ThreatScore)
			if len(th.RationaleTags) > 0 {
				fmt.Fprintf(&b, "; %s", strings.Join(th.RationaleTags, ", "))
			}
			b.WriteString(")\n")
		}
	}

	if len(profile.MapStats) > 0 {
		b.WriteString("\nMap tendencies (start-side win rates):\n")
		for _, ms := range profile.MapStats {
			fmt.Fprintf(&b, "- %s (%d matches): attack %s, defense %s\n",
				ms.MapName, ms.SampleSize, formatRate(ms.AttackWinRate), formatRate(ms.DefenseWinRate))
		}
	}

	switch kind {
	case KindCounterStrategy:
		b.WriteString("\nWrite a short counter-strategy brief: how should we draft and play against this team? Give 3 to 5 actionable points.")
	default:
		b.WriteString("\nWrite a short scouting summary of this team's identity, strengths, and exploitable weaknesses.")
	}
	return b.String()
}

// buildMatchupPrompt renders both profiles for a head-to-head brief.
func buildMatchupPrompt(opponent, ours *analytics.TeamProfile) string {
	var b strings.Builder
	b.WriteString("Opponent profile:\n")
	b.WriteString(buildPrompt(opponent, KindScouting))
	b.WriteString("\n\nOur profile:\n")
	b.WriteString(buildPrompt(ours, KindScouting))
	b.WriteString("\n\nCompare the two teams and write a short matchup brief: where we hold the edge, where they do, and what to prepare.")
	return b.String()
}

func formatRate(r *float64) string {
	if r == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", *r*100)
}
