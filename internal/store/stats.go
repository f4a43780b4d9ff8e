package store

import "context"

// Stats is the dataset overview the /stats endpoint serves.
type Stats struct {
	TotalJobs   int            `json:"total_jobs"`
	WithSalary  int            `json:"with_salary"`
	Internships int            `json:"internships"`
	BySource    map[string]int `json:"by_source"`
	ByDomain    map[string]int `json:"by_domain"`
	ByLocation  map[string]int `json:"by_location"`
}

func (d *DB) LoadStats(ctx context.Context) (Stats, error) {
	s := Stats{
		BySource:   map[string]int{},
		ByDomain:   map[string]int{},
		ByLocation: map[string]int{},
	}

	err := d.Pool.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(CASE WHEN salary_min IS NOT NULL THEN 1 ELSE 0 END), 0),
       COALESCE(SUM(is_internship), 0)
FROM jobs;
`).Scan(&s.TotalJobs, &s.WithSalary, &s.Internships)
	if err != nil {
		return s, err
	}

	for _, q := range []struct {
		sql  string
		dest map[string]int
	}{
		{`SELECT source, COUNT(*) FROM jobs GROUP BY source;`, s.BySource},
		{`SELECT domain, COUNT(*) FROM jobs GROUP BY domain;`, s.ByDomain},
		{`SELECT location, COUNT(*) FROM jobs GROUP BY location;`, s.ByLocation},
	} {
		rows, err := d.Pool.QueryContext(ctx, q.sql)
		if err != nil {
			return s, err
		}
		for rows.Next() {
			var key string
			var n int
			if err := rows.Scan(&key, &n); err != nil {
				rows.Close()
				return s, err
			}
			q.dest[key] = n
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return s, err
		}
		rows.Close()
	}
	return s, nil
}
