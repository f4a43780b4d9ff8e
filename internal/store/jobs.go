package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"kazi-engine/internal/domain"
)

// InsertJob stores a normalized record and its skill rows in one
// transaction. Dedupe rides on the unique url index via INSERT OR IGNORE,
// so two batches racing on the same URL both see a clean duplicate instead
// of a constraint error; the existing row is left untouched.
func (d *DB) InsertJob(ctx context.Context, rec domain.NormalizedJobRecord, tags []domain.SkillTag) (int64, bool, error) {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs
  (company, title, location, domain, salary_min, salary_max, salary_currency,
   experience_min, experience_max, education_level, is_internship,
   description, source, url, posted_at, scraped_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`,
		rec.Company, rec.Title, rec.Location, string(rec.Domain),
		rec.SalaryMin, rec.SalaryMax, rec.SalaryCurrency,
		rec.ExperienceMin, rec.ExperienceMax, rec.EducationLevel,
		boolToInt(rec.IsInternship), rec.Description, rec.Source, rec.URL,
		timePtrToString(rec.PostedAt), rec.ScrapedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, false, fmt.Errorf("insert job: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		var existing int64
		if err := tx.QueryRowContext(ctx, `SELECT id FROM jobs WHERE url = ?;`, rec.URL).Scan(&existing); err != nil {
			return 0, false, err
		}
		return existing, false, tx.Commit()
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, err
	}

	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO job_skills (job_id, skill_name, domain, category)
VALUES (?, ?, ?, ?);
`, id, tag.Name, string(tag.Domain), tag.Category); err != nil {
			return 0, false, fmt.Errorf("insert skill %q: %w", tag.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// JobRow is one stored job as the API serves it.
type JobRow struct {
	ID             int64      `json:"id"`
	Company        string     `json:"company"`
	Title          string     `json:"title"`
	Location       string     `json:"location"`
	Domain         string     `json:"domain"`
	SalaryMin      *float64   `json:"salary_min"`
	SalaryMax      *float64   `json:"salary_max"`
	SalaryCurrency string     `json:"salary_currency"`
	ExperienceMin  *int       `json:"experience_min"`
	ExperienceMax  *int       `json:"experience_max"`
	EducationLevel string     `json:"education_level"`
	IsInternship   bool       `json:"is_internship"`
	Source         string     `json:"source"`
	URL            string     `json:"url"`
	PostedAt       *time.Time `json:"posted_at"`
	ScrapedAt      time.Time  `json:"scraped_at"`
	Skills         []string   `json:"skills"`
}

// JobFilter narrows ListJobs. Zero values mean no filtering.
type JobFilter struct {
	Domain   string
	Location string
	Company  string
	Limit    int
	Offset   int
}

// ListJobs returns stored jobs newest-first, with their skill names.
func (d *DB) ListJobs(ctx context.Context, f JobFilter) ([]JobRow, error) {
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var where []string
	var args []any
	if f.Domain != "" {
		where = append(where, "domain = ?")
		args = append(args, f.Domain)
	}
	if f.Location != "" {
		where = append(where, "location = ?")
		args = append(args, f.Location)
	}
	if f.Company != "" {
		where = append(where, "company = ?")
		args = append(args, f.Company)
	}
	q := `
SELECT id, company, title, location, domain, salary_min, salary_max,
       salary_currency, experience_min, experience_max, education_level,
       is_internship, source, url, posted_at, scraped_at
FROM jobs
`
	if len(where) > 0 {
		q += "WHERE " + strings.Join(where, " AND ") + "\n"
	}
	q += "ORDER BY scraped_at DESC, id DESC LIMIT ? OFFSET ?;"
	args = append(args, limit, f.Offset)

	rows, err := d.Pool.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobRow
	var ids []int64
	for rows.Next() {
		var r JobRow
		var internship int
		var postedAt, scrapedAt sql.NullString
		if err := rows.Scan(&r.ID, &r.Company, &r.Title, &r.Location, &r.Domain,
			&r.SalaryMin, &r.SalaryMax, &r.SalaryCurrency,
			&r.ExperienceMin, &r.ExperienceMax, &r.EducationLevel,
			&internship, &r.Source, &r.URL, &postedAt, &scrapedAt); err != nil {
			return nil, err
		}
		r.IsInternship = internship != 0
		r.PostedAt = parseTimePtr(postedAt)
		if t := parseTimePtr(scrapedAt); t != nil {
			r.ScrapedAt = *t
		}
		r.Skills = []string{}
		out = append(out, r)
		ids = append(ids, r.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	byID := make(map[int64]*JobRow, len(out))
	for i := range out {
		byID[out[i].ID] = &out[i]
	}

	ph := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	sargs := make([]any, len(ids))
	for i, id := range ids {
		sargs[i] = id
	}
	srows, err := d.Pool.QueryContext(ctx,
		`SELECT job_id, skill_name FROM job_skills WHERE job_id IN (`+ph+`) ORDER BY skill_name;`, sargs...)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var jobID int64
		var name string
		if err := srows.Scan(&jobID, &name); err != nil {
			return nil, err
		}
		if r := byID[jobID]; r != nil {
			r.Skills = append(r.Skills, name)
		}
	}
	return out, srows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timePtrToString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
