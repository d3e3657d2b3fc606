package gridapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Provider title ids for the series endpoint.
const (
	titleIDLoL      = "3"
	titleIDValorant = "6"
)

// APIClient is a match source backed by the GRID series API.
type APIClient struct {
	httpClient *http.Client
	apiKey     string
	BaseURL    string
}

// NewClient creates a new GRID API client.
func NewClient(baseURL, apiKey string) MatchSource {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the MatchSource interface.
var _ MatchSource = (*APIClient)(nil)

// FetchMatches fetches the most recent matchCount series for a team.
func (c *APIClient) FetchMatches(ctx context.Context, teamID string, game Game, matchCount int) ([]RawMatch, error) {
	title := titleIDLoL
	if game == GameValorant {
		title = titleIDValorant
	}
	url := fmt.Sprintf("%s/v1/teams/%s/series?title=%s&limit=%d", c.BaseURL, teamID, title, matchCount)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	log.Debug("Requesting series from GRID API", "url", url, "team_id", teamID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from GRID API", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var seriesResp seriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&seriesResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	matches := make([]RawMatch, 0, len(seriesResp.Series))
	for _, s := range seriesResp.Series {
		matches = append(matches, convertSeries(s, game))
	}
	log.Info("Fetched series", "team_id", teamID, "count", len(matches))
	return matches, nil
}

func convertSeries(s seriesRecord, game Game) RawMatch {
	m := RawMatch{
		MatchID:   s.ID,
		Game:      game,
		Timestamp: s.Timestamp,
		WinnerID:  s.WinnerID,
	}
	if s.Map != nil {
		m.MapName = s.Map.Name
	}
	for _, t := range s.Teams {
		m.Teams = append(m.Teams, RawTeam{
			ID:    t.ID,
			Name:  t.Name,
			Picks: t.Picks,
		})
	}
	for _, p := range s.Players {
		m.Players = append(m.Players, RawPlayer{
			PlayerID:    p.ID,
			Name:        p.Nickname,
			TeamID:      p.TeamID,
			Role:        p.Role,
			Kills:       p.Kills,
			Deaths:      p.Deaths,
			Assists:     p.Assists,
			Damage:      p.DamageDealt,
			CombatScore: p.CombatScore,
			Side:        convertSide(p.StartSide),
		})
	}
	return m
}

func convertSide(s string) Side {
	switch s {
	case "attacker", "attack":
		return SideAttack
	case "defender", "defense":
		return SideDefense
	case "":
		return SideNone
	default:
		log.Warn("Unknown start side in series record", "side", s)
		return SideNone
	}
}
