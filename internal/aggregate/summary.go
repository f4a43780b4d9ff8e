package aggregate

import (
	"math"
	"sort"

	"kazi-engine/internal/domain"
)

// JobSkills is one job's contribution to a batch aggregation: its
// experience bounds and its deduplicated skill set.
type JobSkills struct {
	JobID  int64
	ExpMin *int
	ExpMax *int
	Skills []domain.SkillTag
}

// SkillSummary is one row of the dashboard's per-skill table.
type SkillSummary struct {
	Skill      string        `json:"skill_name"`
	Domain     domain.Domain `json:"domain"`
	Category   string        `json:"category"`
	JobCount   int           `json:"job_count"`
	PctOfTotal float64       `json:"pct_of_total"`
	AvgExpMin  *float64      `json:"avg_exp_min"`
	AvgExpMax  *float64      `json:"avg_exp_max"`
}

// Summarize computes per-skill frequency and mean experience over a batch.
// Jobs without experience data are excluded from the means, not counted as
// zero. Rows come back sorted by job count descending, name ascending.
func Summarize(jobs []JobSkills, totalJobs int) []SkillSummary {
	type acc struct {
		tag       domain.SkillTag
		jobCount  int
		sumMin    float64
		nMin      int
		sumMax    float64
		nMax      int
	}

	accs := make(map[string]*acc)
	for _, j := range jobs {
		for _, tag := range j.Skills {
			a := accs[tag.Name]
			if a == nil {
				a = &acc{tag: tag}
				accs[tag.Name] = a
			}
			a.jobCount++
			if j.ExpMin != nil {
				a.sumMin += float64(*j.ExpMin)
				a.nMin++
			}
			if j.ExpMax != nil {
				a.sumMax += float64(*j.ExpMax)
				a.nMax++
			}
		}
	}

	out := make([]SkillSummary, 0, len(accs))
	for _, a := range accs {
		row := SkillSummary{
			Skill:    a.tag.Name,
			Domain:   a.tag.Domain,
			Category: a.tag.Category,
			JobCount: a.jobCount,
		}
		if totalJobs > 0 {
			row.PctOfTotal = round1(float64(a.jobCount) / float64(totalJobs) * 100)
		}
		if a.nMin > 0 {
			v := round1(a.sumMin / float64(a.nMin))
			row.AvgExpMin = &v
		}
		if a.nMax > 0 {
			v := round1(a.sumMax / float64(a.nMax))
			row.AvgExpMax = &v
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].JobCount != out[j].JobCount {
			return out[i].JobCount > out[j].JobCount
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
