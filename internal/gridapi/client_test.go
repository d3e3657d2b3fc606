package gridapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMatches(t *testing.T) {
	// Sample JSON response from the GRID series endpoint
	mockJSONResponse := `{
		"series": [{
			"id": "series-1",
			"started_at": 1756300000,
			"winner_id": "team-a",
			"map": { "name": "Ascent" },
			"teams": [
				{ "id": "team-a", "name": "Alpha", "picks": ["jett", "sova"] },
				{ "id": "team-b", "name": "Bravo", "picks": ["omen", "raze"] }
			],
			"players": [
				{
					"id": "p1", "nickname": "ace", "team_id": "team-a", "role": "duelist",
					"kills": 21, "deaths": 12, "kill_assists_given": 5,
					"damage_dealt": 3100, "combat_score": 245.5, "start_side": "attacker"
				},
				{
					"id": "p2", "nickname": "anchor", "team_id": "team-b", "role": "sentinel",
					"kills": 14, "deaths": 17, "kill_assists_given": 8,
					"damage_dealt": 2400, "combat_score": 180.0, "start_side": "defender"
				}
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/teams/team-a/series", r.URL.Path)
		assert.Equal(t, "6", r.URL.Query().Get("title"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, mockJSONResponse)
	}))
	defer server.Close()

	client := &APIClient{
		httpClient: server.Client(),
		apiKey:     "test-key",
		BaseURL:    server.URL,
	}

	matches, err := client.FetchMatches(context.Background(), "team-a", GameValorant, 5)

	require.NoError(t, err)
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "series-1", m.MatchID)
	assert.Equal(t, GameValorant, m.Game)
	assert.Equal(t, int64(1756300000), m.Timestamp)
	assert.Equal(t, "team-a", m.WinnerID)
	assert.Equal(t, "Ascent", m.MapName)
	require.Len(t, m.Teams, 2)
	assert.Equal(t, []string{"jett", "sova"}, m.Teams[0].Picks)
	require.Len(t, m.Players, 2)
	assert.Equal(t, "ace", m.Players[0].Name)
	assert.Equal(t, 5, m.Players[0].Assists)
	assert.Equal(t, SideAttack, m.Players[0].Side)
	assert.Equal(t, SideDefense, m.Players[1].Side)
}

func TestFetchMatchesTitleMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("title"))
		fmt.Fprintln(w, `{"series": []}`)
	}))
	defer server.Close()

	client := &APIClient{
		httpClient: server.Client(),
		apiKey:     "test-key",
		BaseURL:    server.URL,
	}

	matches, err := client.FetchMatches(context.Background(), "team-x", GameLoL, 10)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFetchMatchesNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := &APIClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		apiKey:     "test-key",
		BaseURL:    server.URL,
	}

	_, err := client.FetchMatches(context.Background(), "team-a", GameValorant, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-OK HTTP status")
}
