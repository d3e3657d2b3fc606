package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbkold/scoutline/internal/analytics"
	"github.com/mbkold/scoutline/internal/config"
	"github.com/mbkold/scoutline/internal/database"
	"github.com/mbkold/scoutline/internal/gridapi"
	"github.com/mbkold/scoutline/internal/metrics"
	"github.com/mbkold/scoutline/internal/narrative"
	"github.com/mbkold/scoutline/internal/notifier"
	"github.com/mbkold/scoutline/internal/pubsub"
	"github.com/mbkold/scoutline/internal/reports"
)

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T, source gridapi.MatchSource) (*Server, *notifier.Mock, *pubsub.MockPubSubClient, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := reports.New(db)
	cfg := config.Config{}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	notif := notifier.NewMock()
	ps := pubsub.NewMock("TEST")
	analyzer := analytics.New(source, metricsSvc, analytics.DefaultParams())
	gen := narrative.NewMockGenerator()

	server := NewServer(store, metricsSvc, metricsHandler, cfg, analyzer, gen, notif, ps)

	teardown := func() {
		dbTeardown()
	}
	return server, notif, ps, teardown
}

func healthySource() *gridapi.MockSource {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return []gridapi.RawMatch{
			{
				MatchID:   "m1",
				Game:      game,
				Timestamp: 1756300000,
				Teams: []gridapi.RawTeam{
					{ID: teamID, Name: "Alpha", Picks: []string{"jett", "omen"}},
					{ID: "team-b", Name: "Bravo", Picks: []string{"raze", "sova"}},
				},
				WinnerID: teamID,
				MapName:  "Ascent",
				Players: []gridapi.RawPlayer{
					{PlayerID: "p1", Name: "ace", TeamID: teamID, Role: "duelist", Kills: 20, Deaths: 10, Assists: 4, CombatScore: 250, Side: gridapi.SideAttack},
				},
			},
		}, nil
	}
	return source
}

func postJSON(t *testing.T, server *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, gridapi.NewMockSource())
	defer teardown()

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestGenerateReportHandler(t *testing.T) {
	server, notif, ps, teardown := setupTestServer(t, healthySource())
	defer teardown()

	rr := postJSON(t, server, "/reports/generate", map[string]any{
		"team_id": "team-a", "game": "valorant", "match_count": 5,
	})

	require.Equal(t, http.StatusOK, rr.Code)
	var report reports.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "team-a", report.TeamID)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 1, report.MatchesAnalyzed)
	require.NotNil(t, report.Narrative)
	assert.Equal(t, "mock summary", *report.Narrative)
	assert.NotEmpty(t, report.KeyFindings)

	// The report was persisted, published, and announced.
	saved, err := server.Store.Get(report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.TeamID, saved.TeamID)
	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, "report-generated", ps.SendMessageCalls[0].Topic)
	require.Len(t, notif.SendReportNotificationCalls, 1)
	assert.False(t, notif.SendReportNotificationCalls[0].DryRun)
}

func TestGenerateReportHandlerDryRun(t *testing.T) {
	server, notif, ps, teardown := setupTestServer(t, healthySource())
	defer teardown()

	rr := postJSON(t, server, "/reports/generate?dry_run=true", map[string]any{
		"team_id": "team-a", "game": "valorant",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	var report reports.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))

	// Nothing persisted or published in dry-run mode.
	_, err := server.Store.Get(report.ID)
	assert.True(t, errors.Is(err, reports.ErrNotFound))
	assert.Empty(t, ps.SendMessageCalls)
	require.Len(t, notif.SendReportNotificationCalls, 1)
	assert.True(t, notif.SendReportNotificationCalls[0].DryRun)
}

func TestGenerateReportHandlerValidation(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	rr := postJSON(t, server, "/reports/generate", map[string]any{"game": "valorant"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(t, server, "/reports/generate", map[string]any{"team_id": "team-a", "game": "chess"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateReportHandlerSourceFailure(t *testing.T) {
	source := gridapi.NewMockSource()
	source.FetchMatchesFunc = func(ctx context.Context, teamID string, game gridapi.Game, matchCount int) ([]gridapi.RawMatch, error) {
		return nil, errors.New("upstream timeout")
	}
	server, _, _, teardown := setupTestServer(t, source)
	defer teardown()

	rr := postJSON(t, server, "/reports/generate", map[string]any{
		"team_id": "team-a", "game": "valorant",
	})
	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGenerateReportHandlerInsufficientData(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, gridapi.NewMockSource())
	defer teardown()

	rr := postJSON(t, server, "/reports/generate", map[string]any{
		"team_id": "team-a", "game": "valorant",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGenerateReportHandlerNarrativeDegrades(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	gen := narrative.NewMockGenerator()
	gen.SummarizeFunc = func(ctx context.Context, profile *analytics.TeamProfile, kind narrative.Kind) (string, error) {
		return "", errors.Mark(errors.New("model overloaded"), analytics.ErrNarrative)
	}
	server.Narrative = gen

	rr := postJSON(t, server, "/reports/generate", map[string]any{
		"team_id": "team-a", "game": "valorant",
	})

	// The request still succeeds without a narrative.
	require.Equal(t, http.StatusOK, rr.Code)
	var report reports.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Nil(t, report.Narrative)
	assert.NotEmpty(t, report.KeyFindings)
}

func TestGetAndDeleteReportHandlers(t *testing.T) {
	server, _, ps, teardown := setupTestServer(t, healthySource())
	defer teardown()

	rr := postJSON(t, server, "/reports/generate", map[string]any{
		"team_id": "team-a", "game": "valorant",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var report reports.Report
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))

	req := httptest.NewRequest("GET", "/reports/"+report.ID, nil)
	getRR := httptest.NewRecorder()
	server.ServeHTTP(getRR, req)
	assert.Equal(t, http.StatusOK, getRR.Code)

	ps.Reset()
	delReq := httptest.NewRequest("DELETE", "/reports/"+report.ID, nil)
	delRR := httptest.NewRecorder()
	server.ServeHTTP(delRR, delReq)
	assert.Equal(t, http.StatusNoContent, delRR.Code)
	require.Len(t, ps.SendMessageCalls, 1)
	assert.Equal(t, "report-deleted", ps.SendMessageCalls[0].Topic)

	// Deleting again is a 404.
	delRR = httptest.NewRecorder()
	server.ServeHTTP(delRR, httptest.NewRequest("DELETE", "/reports/"+report.ID, nil))
	assert.Equal(t, http.StatusNotFound, delRR.Code)
}

func TestGetReportHandlerNotFound(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, gridapi.NewMockSource())
	defer teardown()

	req := httptest.NewRequest("GET", "/reports/missing", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListReportsHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	for i := 0; i < 2; i++ {
		rr := postJSON(t, server, "/reports/generate", map[string]any{
			"team_id": "team-a", "game": "valorant",
		})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	req := httptest.NewRequest("GET", "/reports?team_id=team-a", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var summaries []reports.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
}

func TestCompareTeamsHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	rr := postJSON(t, server, "/compare", map[string]any{
		"opponent_team_id": "team-a", "our_team_id": "team-c", "game": "valorant",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Opponent  *analytics.TeamProfile `json:"opponent"`
		Ours      *analytics.TeamProfile `json:"ours"`
		Narrative *string                `json:"narrative"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "team-a", resp.Opponent.TeamID)
	assert.Equal(t, "team-c", resp.Ours.TeamID)
	require.NotNil(t, resp.Narrative)
	assert.Equal(t, "mock matchup brief", *resp.Narrative)
}

func TestCounterStrategyHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	rr := postJSON(t, server, "/reports/counter-strategy", map[string]any{
		"team_id": "team-a", "game": "valorant",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Recommendations []string `json:"recommendations"`
		Narrative       *string  `json:"narrative"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Recommendations)
	require.NotNil(t, resp.Narrative)
}

func TestThreatsHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	req := httptest.NewRequest("GET", "/threats/team-a?game=valorant", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var threats []analytics.ThreatEntry
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &threats))
	require.NotEmpty(t, threats)
	assert.Equal(t, 1, threats[0].Rank)
}

func TestMapStatsHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	req := httptest.NewRequest("GET", "/maps/team-a?game=valorant", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var stats []analytics.MapStat
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.NotEmpty(t, stats)
	assert.Equal(t, "Ascent", stats[0].MapName)
}

func TestMapStatsHandlerRejectsLoL(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, healthySource())
	defer teardown()

	req := httptest.NewRequest("GET", "/maps/team-a?game=lol", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
