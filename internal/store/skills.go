package store

import (
	"context"

	"kazi-engine/internal/aggregate"
	"kazi-engine/internal/domain"
)

// LoadJobSkills pulls every job's skill set and experience bounds for
// aggregation, plus the total job count so percentage math uses the whole
// table and not just jobs that matched a skill.
func (d *DB) LoadJobSkills(ctx context.Context) ([]aggregate.JobSkills, int, error) {
	var total int
	if err := d.Pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs;`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := d.Pool.QueryContext(ctx, `
SELECT j.id, j.experience_min, j.experience_max, s.skill_name, s.domain, s.category
FROM jobs j
JOIN job_skills s ON s.job_id = j.id
ORDER BY j.id;
`)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []aggregate.JobSkills
	var cur *aggregate.JobSkills
	for rows.Next() {
		var jobID int64
		var expMin, expMax *int
		var tag domain.SkillTag
		var dom string
		if err := rows.Scan(&jobID, &expMin, &expMax, &tag.Name, &dom, &tag.Category); err != nil {
			return nil, 0, err
		}
		tag.Domain = domain.Domain(dom)

		if cur == nil || cur.JobID != jobID {
			out = append(out, aggregate.JobSkills{JobID: jobID, ExpMin: expMin, ExpMax: expMax})
			cur = &out[len(out)-1]
		}
		cur.Skills = append(cur.Skills, tag)
	}
	return out, total, rows.Err()
}
