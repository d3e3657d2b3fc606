package gridapi

// Game identifies which title a match belongs to. The aggregation core
// treats both titles through the same normalized schema.
type Game string

const (
	GameLoL      Game = "lol"
	GameValorant Game = "valorant"
)

// Valid reports whether g is one of the supported titles.
func (g Game) Valid() bool {
	return g == GameLoL || g == GameValorant
}

// Side is the side a player started a VALORANT match on. LoL records
// always carry SideNone.
type Side string

const (
	SideNone    Side = ""
	SideAttack  Side = "attack"
	SideDefense Side = "defense"
)

// RawMatch is one match record as delivered by the data provider,
// before validation. Matches arrive most-recent-first.
type RawMatch struct {
	MatchID   string
	Game      Game
	Timestamp int64
	Teams     []RawTeam
	WinnerID  string
	MapName   string
	Players   []RawPlayer
}

// RawTeam is one side of a raw match. Picks are champions for LoL and
// agents for VALORANT.
type RawTeam struct {
	ID    string
	Name  string
	Picks []string
}

// RawPlayer is one player's stat line in a raw match.
type RawPlayer struct {
	PlayerID    string
	Name        string
	TeamID      string
	Role        string
	Kills       int
	Deaths      int
	Assists     int
	Damage      int
	CombatScore float64
	Side        Side
}

// Wire types for the provider's series endpoint. Kept separate from the
// Raw* types so schema drift on the provider side stays contained here.
type seriesResponse struct {
	Series []seriesRecord `json:"series"`
}

type seriesRecord struct {
	ID        string       `json:"id"`
	Timestamp int64        `json:"started_at"`
	WinnerID  string       `json:"winner_id"`
	Map       *mapInfo     `json:"map"`
	Teams     []wireTeam   `json:"teams"`
	Players   []wirePlayer `json:"players"`
}

type mapInfo struct {
	Name string `json:"name"`
}

type wireTeam struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Picks []string `json:"picks"`
}

type wirePlayer struct {
	ID          string  `json:"id"`
	Nickname    string  `json:"nickname"`
	TeamID      string  `json:"team_id"`
	Role        string  `json:"role"`
	Kills       int     `json:"kills"`
	Deaths      int     `json:"deaths"`
	Assists     int     `json:"kill_assists_given"`
	DamageDealt int     `json:"damage_dealt"`
	CombatScore float64 `json:"combat_score"`
	StartSide   string  `json:"start_side"`
}
