package analytics

import "github.com/mbkold/scoutline/internal/gridapi"

// Weights are the coefficients of the impact-score linear combination.
// They are configuration, not data: changing them changes every score
// in a report, so they are injected once at construction time.
type Weights struct {
	CombatScore       float64
	KillParticipation float64
	RoleConsistency   float64
}

// Params holds the tunable constants of the aggregation core.
type Params struct {
	Weights Weights

	// DecayLambda is the per-match recency decay base: a match at window
	// index i (0 = most recent) carries weight DecayLambda^i.
	DecayLambda float64
}

// DefaultParams returns the documented default coefficients.
func DefaultParams() Params {
	return Params{
		Weights: Weights{
			CombatScore:       0.5,
			KillParticipation: 0.3,
			RoleConsistency:   0.2,
		},
		DecayLambda: 0.85,
	}
}

// NormalizedTeam is one side of a normalized match.
type NormalizedTeam struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Picks []string `json:"picks"`
}

// NormalizedMatch is the canonical internal match representation shared
// by both games. Exactly one of the two teams is the winner; MapName is
// set iff Game is VALORANT.
type NormalizedMatch struct {
	MatchID   string            `json:"match_id"`
	Game      gridapi.Game      `json:"game"`
	Timestamp int64             `json:"timestamp"`
	Teams     [2]NormalizedTeam `json:"teams"`
	WinnerID  string            `json:"winner_id"`
	MapName   string            `json:"map_name,omitempty"`
	Players   []PlayerLine      `json:"players"`
}

// WonBy reports whether teamID won this match.
func (m *NormalizedMatch) WonBy(teamID string) bool {
	return m.WinnerID == teamID
}

// Team returns the normalized team with the given id, if present.
func (m *NormalizedMatch) Team(teamID string) (NormalizedTeam, bool) {
	for _, t := range m.Teams {
		if t.ID == teamID {
			return t, true
		}
	}
	return NormalizedTeam{}, false
}

// PlayerLine is one player's stat line within a normalized match.
type PlayerLine struct {
	PlayerID    string       `json:"player_id"`
	Name        string       `json:"name"`
	TeamID      string       `json:"team_id"`
	Role        string       `json:"role"`
	Kills       int          `json:"kills"`
	Deaths      int          `json:"deaths"`
	Assists     int          `json:"assists"`
	Damage      int          `json:"damage"`
	CombatScore float64      `json:"combat_score"`
	Side        gridapi.Side `json:"side,omitempty"`
}

// CompositionEntry is one distinct composition a team has drafted,
// keyed by an order-independent signature of its picks.
type CompositionEntry struct {
	Signature string   `json:"signature"`
	Picks     []string `json:"picks"`
	PickCount int      `json:"pick_count"`
	WinCount  int      `json:"win_count"`
	PickRate  float64  `json:"pick_rate"`
	// WinRate is nil iff PickCount is zero.
	WinRate *float64 `json:"win_rate"`
}

// MatchContribution is one player's per-match slice of the window,
// exposed so the threat ranker can apply recency weighting.
type MatchContribution struct {
	// MatchIndex is the position in the window, 0 = most recent.
	MatchIndex  int     `json:"match_index"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     int     `json:"assists"`
	CombatScore float64 `json:"combat_score"`
	Won         bool    `json:"won"`
}

// PlayerProfile holds per-player aggregates over one match window.
// ImpactScore is normalized against the window itself, so scores are
// only comparable within a single report.
type PlayerProfile struct {
	PlayerID           string              `json:"player_id"`
	Name               string              `json:"name"`
	Role               string              `json:"role"`
	MatchesPlayed      int                 `json:"matches_played"`
	AverageCombatScore float64             `json:"average_combat_score"`
	KillParticipation  float64             `json:"kill_participation"`
	RoleConsistency    float64             `json:"role_consistency"`
	ImpactScore        float64             `json:"impact_score"`
	Contributions      []MatchContribution `json:"contributions"`
}

// ThreatEntry is one row of a threat ranking.
type ThreatEntry struct {
	PlayerID      string   `json:"player_id"`
	Name          string   `json:"name"`
	Rank          int      `json:"rank"`
	ThreatScore   float64  `json:"threat_score"`
	RationaleTags []string `json:"rationale_tags"`
}

// MapStat holds per-map attack/defense win rates for a VALORANT team.
// Rates are nil when their sample is empty.
type MapStat struct {
	MapName        string   `json:"map_name"`
	AttackWinRate  *float64 `json:"attack_win_rate"`
	DefenseWinRate *float64 `json:"defense_win_rate"`
	SampleSize     int      `json:"sample_size"`
	// HalfStartOnly records the simplification that each match
	// contributes only to the half the team started on, since the
	// normalized record carries no per-half outcomes.
	HalfStartOnly bool `json:"half_start_only"`
}

// TeamProfile is the aggregate root for one team over one match window.
// It is built per request and never persisted by the core; MapStats is
// populated only for VALORANT profiles.
type TeamProfile struct {
	TeamID          string             `json:"team_id"`
	Game            gridapi.Game       `json:"game"`
	MatchesAnalyzed int                `json:"matches_analyzed"`
	SkippedRecords  int                `json:"skipped_records"`
	Wins            int                `json:"wins"`
	Losses          int                `json:"losses"`
	Compositions    []CompositionEntry `json:"compositions"`
	Players         []PlayerProfile    `json:"players"`
	Threats         []ThreatEntry      `json:"threats"`
	MapStats        []MapStat          `json:"map_stats,omitempty"`
}
