package analytics

import "github.com/mbkold/scoutline/internal/gridapi"

// valMatch builds a minimal VALORANT match for tests. The winner flag
// decides whether team-a or team-b took the match.
func valMatch(id, mapName string, teamAWon bool, picksA, picksB []string, players []PlayerLine) NormalizedMatch {
	winner := "team-a"
	if !teamAWon {
		winner = "team-b"
	}
	return NormalizedMatch{
		MatchID:   id,
		Game:      gridapi.GameValorant,
		Timestamp: 1756300000,
		Teams: [2]NormalizedTeam{
			{ID: "team-a", Name: "Alpha", Picks: picksA},
			{ID: "team-b", Name: "Bravo", Picks: picksB},
		},
		WinnerID: winner,
		MapName:  mapName,
		Players:  players,
	}
}

func line(playerID, teamID, role string, kills, deaths, assists int, acs float64, side gridapi.Side) PlayerLine {
	return PlayerLine{
		PlayerID:    playerID,
		Name:        playerID,
		TeamID:      teamID,
		Role:        role,
		Kills:       kills,
		Deaths:      deaths,
		Assists:     assists,
		CombatScore: acs,
		Side:        side,
	}
}

func rawValMatch(id string, winnerID string) gridapi.RawMatch {
	return gridapi.RawMatch{
		MatchID:   id,
		Game:      gridapi.GameValorant,
		Timestamp: 1756300000,
		Teams: []gridapi.RawTeam{
			{ID: "team-a", Name: "Alpha", Picks: []string{"jett", "omen"}},
			{ID: "team-b", Name: "Bravo", Picks: []string{"raze", "sova"}},
		},
		WinnerID: winnerID,
		MapName:  "Ascent",
		Players: []gridapi.RawPlayer{
			{PlayerID: "p1", Name: "p1", TeamID: "team-a", Role: "duelist", Kills: 20, Deaths: 10, Assists: 4, CombatScore: 250, Side: gridapi.SideAttack},
			{PlayerID: "p2", Name: "p2", TeamID: "team-b", Role: "sentinel", Kills: 12, Deaths: 18, Assists: 6, CombatScore: 170, Side: gridapi.SideDefense},
		},
	}
}
