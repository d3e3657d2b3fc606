package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"

	"github.com/mbkold/scoutline/internal/analytics"
	"github.com/mbkold/scoutline/internal/gridapi"
	"github.com/mbkold/scoutline/internal/narrative"
	"github.com/mbkold/scoutline/internal/pubsub"
	"github.com/mbkold/scoutline/internal/reports"
)

const defaultMatchCount = 10

// generateRequest is the body of report-producing endpoints.
type generateRequest struct {
	TeamID     string       `json:"team_id"`
	Game       gridapi.Game `json:"game"`
	MatchCount int          `json:"match_count"`
}

type compareRequest struct {
	OpponentTeamID string       `json:"opponent_team_id"`
	OurTeamID      string       `json:"our_team_id"`
	Game           gridapi.Game `json:"game"`
	MatchCount     int          `json:"match_count"`
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// GenerateReportHandler builds a full scouting report for a team and,
// unless dry_run is set, persists and announces it.
func (s *Server) GenerateReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Metrics.IncReportRuns()
		start := time.Now()
		isDryRun := isDryRunFromContext(r)

		req, ok := s.decodeGenerateRequest(w, r)
		if !ok {
			return
		}

		profile, err := s.Analyzer.BuildTeamProfile(r.Context(), req.TeamID, req.Game, req.MatchCount)
		if err != nil {
			s.writeAnalyticsError(w, err)
			return
		}

		report := &reports.Report{
			ID:              uuid.NewString(),
			TeamID:          req.TeamID,
			Game:            req.Game,
			Profile:         profile,
			KeyFindings:     reports.KeyFindings(profile),
			PrepPriorities:  reports.PrepPriorities(profile),
			MatchesAnalyzed: profile.MatchesAnalyzed,
			GeneratedAt:     time.Now().UTC(),
		}

		// Narrative failures degrade the report to numbers only.
		summary, err := s.Narrative.Summarize(r.Context(), profile, narrative.KindScouting)
		if err != nil {
			s.Metrics.IncNarrativeFailures()
			log.Warn("Narrative generation failed, returning numbers-only report", "team_id", req.TeamID, "error", err)
		} else {
			report.Narrative = &summary
		}

		if !isDryRun {
			if err := s.Store.Save(report); err != nil {
				log.Error("Failed to save report", "report_id", report.ID, "error", err)
				http.Error(w, "Failed to save report", http.StatusInternalServerError)
				return
			}
			event := pubsub.ReportEvent{
				ReportID:        report.ID,
				TeamID:          report.TeamID,
				Game:            report.Game,
				MatchesAnalyzed: report.MatchesAnalyzed,
				GeneratedAt:     report.GeneratedAt,
			}
			if err := s.pubsub.SendMessage(pubsub.EventReportGenerated, event); err != nil {
				log.Error("Failed to publish report event", "report_id", report.ID, "error", err)
			}
		}
		if _, err := s.Notifier.SendReportNotification(report, isDryRun); err != nil {
			log.Error("Failed to send report notification", "report_id", report.ID, "error", err)
		}

		s.Metrics.IncReportsGenerated()
		s.Metrics.ObserveReportDuration(time.Since(start).Seconds())
		writeJSON(w, http.StatusOK, report)
	}
}

// CounterStrategyHandler builds a profile and returns counter-play
// suggestions without persisting anything.
func (s *Server) CounterStrategyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := s.decodeGenerateRequest(w, r)
		if !ok {
			return
		}

		profile, err := s.Analyzer.BuildTeamProfile(r.Context(), req.TeamID, req.Game, req.MatchCount)
		if err != nil {
			s.writeAnalyticsError(w, err)
			return
		}

		resp := struct {
			TeamID          string                 `json:"team_id"`
			Recommendations []string               `json:"recommendations"`
			Narrative       *string                `json:"narrative,omitempty"`
			Profile         *analytics.TeamProfile `json:"profile"`
		}{
			TeamID:          req.TeamID,
			Recommendations: reports.CounterRecommendations(profile),
			Profile:         profile,
		}

		brief, err := s.Narrative.Summarize(r.Context(), profile, narrative.KindCounterStrategy)
		if err != nil {
			s.Metrics.IncNarrativeFailures()
			log.Warn("Counter-strategy narrative failed", "team_id", req.TeamID, "error", err)
		} else {
			resp.Narrative = &brief
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// CompareTeamsHandler profiles two teams and returns a side-by-side
// view with a matchup brief.
func (s *Server) CompareTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.OpponentTeamID == "" || req.OurTeamID == "" {
			http.Error(w, "opponent_team_id and our_team_id are required", http.StatusBadRequest)
			return
		}
		if !req.Game.Valid() {
			http.Error(w, "game must be 'lol' or 'valorant'", http.StatusBadRequest)
			return
		}
		if req.MatchCount == 0 {
			req.MatchCount = defaultMatchCount
		}
		if req.MatchCount < 0 {
			http.Error(w, "match_count must be positive", http.StatusBadRequest)
			return
		}

		var opponent, ours *analytics.TeamProfile
		var opponentErr, oursErr error
		var wg conc.WaitGroup
		wg.Go(func() {
			opponent, opponentErr = s.Analyzer.BuildTeamProfile(r.Context(), req.OpponentTeamID, req.Game, req.MatchCount)
		})
		wg.Go(func() {
			ours, oursErr = s.Analyzer.BuildTeamProfile(r.Context(), req.OurTeamID, req.Game, req.MatchCount)
		})
		wg.Wait()

		if opponentErr != nil {
			s.writeAnalyticsError(w, opponentErr)
			return
		}
		if oursErr != nil {
			s.writeAnalyticsError(w, oursErr)
			return
		}

		resp := struct {
			Opponent  *analytics.TeamProfile `json:"opponent"`
			Ours      *analytics.TeamProfile `json:"ours"`
			Narrative *string                `json:"narrative,omitempty"`
		}{Opponent: opponent, Ours: ours}

		brief, err := s.Narrative.SummarizeMatchup(r.Context(), opponent, ours)
		if err != nil {
			s.Metrics.IncNarrativeFailures()
			log.Warn("Matchup narrative failed", "error", err)
		} else {
			resp.Narrative = &brief
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) ListReportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := r.URL.Query().Get("team_id")
		limit := defaultMatchCount
		if l := r.URL.Query().Get("limit"); l != "" {
			fmt.Sscanf(l, "%d", &limit)
			if limit <= 0 {
				http.Error(w, "limit must be positive", http.StatusBadRequest)
				return
			}
		}

		summaries, err := s.Store.List(teamID, limit)
		if err != nil {
			log.Error("Failed to list reports", "error", err)
			http.Error(w, "Failed to list reports", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, summaries)
	}
}

func (s *Server) GetReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		report, err := s.Store.Get(id)
		if errors.Is(err, reports.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Failed to get report", "report_id", id, "error", err)
			http.Error(w, "Failed to get report", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) DeleteReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would delete report", "report_id", id)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		err := s.Store.Delete(id)
		if errors.Is(err, reports.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Failed to delete report", "report_id", id, "error", err)
			http.Error(w, "Failed to delete report", http.StatusInternalServerError)
			return
		}

		if err := s.pubsub.SendMessage(pubsub.EventReportDeleted, pubsub.ReportEvent{ReportID: id}); err != nil {
			log.Error("Failed to publish delete event", "report_id", id, "error", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ThreatsHandler returns just the threat ranking for a team, for
// callers that do not need the full report.
func (s *Server) ThreatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, game, matchCount, ok := s.decodeProfileQuery(w, r)
		if !ok {
			return
		}

		profile, err := s.Analyzer.BuildTeamProfile(r.Context(), teamID, game, matchCount)
		if err != nil {
			s.writeAnalyticsError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile.Threats)
	}
}

// MapStatsHandler returns the per-map side splits for a VALORANT team.
func (s *Server) MapStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, game, matchCount, ok := s.decodeProfileQuery(w, r)
		if !ok {
			return
		}
		if game != gridapi.GameValorant {
			http.Error(w, "map statistics are only available for valorant", http.StatusBadRequest)
			return
		}

		profile, err := s.Analyzer.BuildTeamProfile(r.Context(), teamID, game, matchCount)
		if err != nil {
			s.writeAnalyticsError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile.MapStats)
	}
}

func (s *Server) decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return req, false
	}
	if req.TeamID == "" {
		http.Error(w, "team_id is required", http.StatusBadRequest)
		return req, false
	}
	if !req.Game.Valid() {
		http.Error(w, "game must be 'lol' or 'valorant'", http.StatusBadRequest)
		return req, false
	}
	if req.MatchCount == 0 {
		req.MatchCount = defaultMatchCount
	}
	if req.MatchCount < 0 {
		http.Error(w, "match_count must be positive", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func (s *Server) decodeProfileQuery(w http.ResponseWriter, r *http.Request) (string, gridapi.Game, int, bool) {
	teamID := r.PathValue("teamID")
	game := gridapi.Game(r.URL.Query().Get("game"))
	if !game.Valid() {
		http.Error(w, "game must be 'lol' or 'valorant'", http.StatusBadRequest)
		return "", "", 0, false
	}
	matchCount := defaultMatchCount
	if c := r.URL.Query().Get("match_count"); c != "" {
		fmt.Sscanf(c, "%d", &matchCount)
		if matchCount <= 0 {
			http.Error(w, "match_count must be positive", http.StatusBadRequest)
			return "", "", 0, false
		}
	}
	return teamID, game, matchCount, true
}

// writeAnalyticsError maps the analytics error taxonomy onto HTTP
// statuses: source outages are 502, empty windows are 422.
func (s *Server) writeAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analytics.ErrSource):
		log.Error("Match source failure", "error", err)
		http.Error(w, "Match source unavailable", http.StatusBadGateway)
	case errors.Is(err, analytics.ErrInsufficientData):
		log.Warn("Insufficient match data", "error", err)
		http.Error(w, "Not enough match data to build a profile", http.StatusUnprocessableEntity)
	default:
		log.Error("Failed to build team profile", "error", err)
		http.Error(w, "Failed to build team profile", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
