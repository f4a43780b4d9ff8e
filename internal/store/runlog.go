package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"kazi-engine/internal/pipeline"
)

// StartRun opens a row in the run log and returns its id.
func (d *DB) StartRun(ctx context.Context, source, query string) (string, error) {
	id := uuid.NewString()
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO scrape_runs (id, source, query, started_at, status)
VALUES (?, ?, ?, ?, 'running');
`, id, source, query, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateRun closes out a run log row with its final counts and status.
func (d *DB) UpdateRun(ctx context.Context, runID string, upd pipeline.RunUpdate) error {
	_, err := d.Pool.ExecContext(ctx, `
UPDATE scrape_runs
SET ended_at = ?, jobs_found = ?, jobs_saved = ?, errors = ?, status = ?, error_message = ?
WHERE id = ?;
`, time.Now().UTC().Format(time.RFC3339),
		upd.Found, upd.Saved, upd.Errors, upd.Status, upd.ErrorMsg, runID)
	return err
}

// RunRow is one run log entry as the API serves it.
type RunRow struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"`
	Query     string     `json:"query"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
	JobsFound int        `json:"jobs_found"`
	JobsSaved int        `json:"jobs_saved"`
	Errors    int        `json:"errors"`
	Status    string     `json:"status"`
	ErrorMsg  string     `json:"error_message,omitempty"`
}

// ListRuns returns run log entries newest-first.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]RunRow, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := d.Pool.QueryContext(ctx, `
SELECT id, source, query, started_at, ended_at, jobs_found, jobs_saved, errors, status, error_message
FROM scrape_runs
ORDER BY started_at DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var r RunRow
		var started string
		var ended sql.NullString
		if err := rows.Scan(&r.ID, &r.Source, &r.Query, &started, &ended,
			&r.JobsFound, &r.JobsSaved, &r.Errors, &r.Status, &r.ErrorMsg); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = t
		}
		r.EndedAt = parseTimePtr(ended)
		out = append(out, r)
	}
	return out, rows.Err()
}
