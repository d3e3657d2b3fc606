package analytics

import "sort"

// playerAccum holds the running aggregates for one player while the
// profiler walks the window in a single pass.
type playerAccum struct {
	playerID      string
	name          string
	matches       int
	kills         int
	assists       int
	teamKills     int
	combatScore   float64
	roleCounts    map[string]int
	roleOrder     []string
	contributions []MatchContribution
}

// ProfilePlayers computes per-player impact and role-tendency metrics
// for every player who appeared for teamID in the window. Impact scores
// are min-max normalized against the window itself and are therefore
// only comparable within one report; this is deliberate.
func ProfilePlayers(matches []NormalizedMatch, teamID string, w Weights) []PlayerProfile {
	accums := make(map[string]*playerAccum)
	var order []string

	for i := range matches {
		m := &matches[i]
		if _, ok := m.Team(teamID); !ok {
			continue
		}
		teamKills := 0
		for _, p := range m.Players {
			if p.TeamID == teamID {
				teamKills += p.Kills
			}
		}
		won := m.WonBy(teamID)
		for _, p := range m.Players {
			if p.TeamID != teamID {
				continue
			}
			a, ok := accums[p.PlayerID]
			if !ok {
				a = &playerAccum{
					playerID:   p.PlayerID,
					name:       p.Name,
					roleCounts: make(map[string]int),
				}
				accums[p.PlayerID] = a
				order = append(order, p.PlayerID)
			}
			a.matches++
			a.kills += p.Kills
			a.assists += p.Assists
			a.teamKills += teamKills
			a.combatScore += p.CombatScore
			if _, seen := a.roleCounts[p.Role]; !seen {
				a.roleOrder = append(a.roleOrder, p.Role)
			}
			a.roleCounts[p.Role]++
			a.contributions = append(a.contributions, MatchContribution{
				MatchIndex:  i,
				Kills:       p.Kills,
				Deaths:      p.Deaths,
				Assists:     p.Assists,
				CombatScore: p.CombatScore,
				Won:         won,
			})
		}
	}

	profiles := make([]PlayerProfile, 0, len(accums))
	minACS, maxACS := 0.0, 0.0
	for i, id := range order {
		a := accums[id]
		avgACS := a.combatScore / float64(a.matches)
		if i == 0 || avgACS < minACS {
			minACS = avgACS
		}
		if i == 0 || avgACS > maxACS {
			maxACS = avgACS
		}
		role, consistency := dominantRole(a)
		kp := 0.0
		if a.teamKills > 0 {
			kp = float64(a.kills+a.assists) / float64(a.teamKills)
		}
		profiles = append(profiles, PlayerProfile{
			PlayerID:           a.playerID,
			Name:               a.name,
			Role:               role,
			MatchesPlayed:      a.matches,
			AverageCombatScore: avgACS,
			KillParticipation:  kp,
			RoleConsistency:    consistency,
			Contributions:      a.contributions,
		})
	}

	// Second pass: impact scores need the window's ACS extremes.
	for i := range profiles {
		norm := 0.5
		if maxACS > minACS {
			norm = (profiles[i].AverageCombatScore - minACS) / (maxACS - minACS)
		}
		profiles[i].ImpactScore = w.CombatScore*norm +
			w.KillParticipation*profiles[i].KillParticipation +
			w.RoleConsistency*profiles[i].RoleConsistency
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].ImpactScore != profiles[j].ImpactScore {
			return profiles[i].ImpactScore > profiles[j].ImpactScore
		}
		return profiles[i].PlayerID < profiles[j].PlayerID
	})
	return profiles
}

// dominantRole returns the player's most frequent role and its share of
// their matches. Ties resolve to the role observed first in the window.
func dominantRole(a *playerAccum) (string, float64) {
	best := ""
	bestCount := -1
	for _, role := range a.roleOrder {
		if a.roleCounts[role] > bestCount {
			best = role
			bestCount = a.roleCounts[role]
		}
	}
	if a.matches == 0 {
		return best, 0
	}
	return best, float64(bestCount) / float64(a.matches)
}
