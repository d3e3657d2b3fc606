package reports

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/mbkold/scoutline/internal/analytics"
	"github.com/mbkold/scoutline/internal/gridapi"
)

// New creates a new ReportStore.
func New(db *sql.DB) ReportStore {
	return &store{
		db: db,
	}
}

// Save persists a report. Saving an existing id replaces the stored
// report wholesale.
func (s *store) Save(report *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profileJSON, err := json.Marshal(report.Profile)
	if err != nil {
		return errors.Wrap(err, "marshalling profile")
	}
	findingsJSON, err := json.Marshal(report.KeyFindings)
	if err != nil {
		return errors.Wrap(err, "marshalling key findings")
	}
	prioritiesJSON, err := json.Marshal(report.PrepPriorities)
	if err != nil {
		return errors.Wrap(err, "marshalling prep priorities")
	}

	var narrative sql.NullString
	if report.Narrative != nil {
		narrative = sql.NullString{String: *report.Narrative, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO reports (id, team_id, game, profile_json, narrative, key_findings_json, prep_priorities_json, matches_analyzed, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			team_id = excluded.team_id,
			game = excluded.game,
			profile_json = excluded.profile_json,
			narrative = excluded.narrative,
			key_findings_json = excluded.key_findings_json,
			prep_priorities_json = excluded.prep_priorities_json,
			matches_analyzed = excluded.matches_analyzed,
			generated_at = excluded.generated_at;
	`, report.ID, report.TeamID, string(report.Game), profileJSON, narrative, findingsJSON, prioritiesJSON, report.MatchesAnalyzed, report.GeneratedAt.Unix())
	return err
}

// Get retrieves a full report by id.
func (s *store) Get(id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, team_id, game, profile_json, narrative, key_findings_json, prep_priorities_json, matches_analyzed, generated_at
		FROM reports
		WHERE id = ?
	`, id)
	return scanReport(row)
}

// List retrieves report summaries, newest first. An empty teamID lists
// reports for all teams.
func (s *store) List(teamID string, limit int) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, team_id, game, matches_analyzed, generated_at
		FROM reports
	`
	args := []any{}
	if teamID != "" {
		query += " WHERE team_id = ?"
		args = append(args, teamID)
	}
	query += " ORDER BY generated_at DESC, id ASC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		var game string
		var generatedAt int64
		if err := rows.Scan(&sum.ID, &sum.TeamID, &game, &sum.MatchesAnalyzed, &generatedAt); err != nil {
			return nil, err
		}
		sum.Game = gridapi.Game(game)
		sum.GeneratedAt = unixTime(generatedAt)
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Delete removes a report. Deleting an unknown id returns ErrNotFound.
func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func unixTime(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

func scanReport(scanner interface{ Scan(...any) error }) (*Report, error) {
	var r Report
	var game string
	var profileJSON, findingsJSON, prioritiesJSON []byte
	var narrative sql.NullString
	var generatedAt int64

	err := scanner.Scan(&r.ID, &r.TeamID, &game, &profileJSON, &narrative, &findingsJSON, &prioritiesJSON, &r.MatchesAnalyzed, &generatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	r.Game = gridapi.Game(game)
	r.GeneratedAt = unixTime(generatedAt)
	if narrative.Valid {
		r.Narrative = &narrative.String
	}
	r.Profile = &analytics.TeamProfile{}
	if err := json.Unmarshal(profileJSON, r.Profile); err != nil {
		return nil, errors.Wrap(err, "unmarshalling profile")
	}
	if err := json.Unmarshal(findingsJSON, &r.KeyFindings); err != nil {
		return nil, errors.Wrap(err, "unmarshalling key findings")
	}
	if err := json.Unmarshal(prioritiesJSON, &r.PrepPriorities); err != nil {
		return nil, errors.Wrap(err, "unmarshalling prep priorities")
	}
	return &r, nil
}
