package aggregate

import (
	"sort"
	"strings"
)

// Categories that count as hard skills for the co-occurrence filter.
var hardSkillCategories = map[string]bool{
	// data science
	"languages": true, "ml_ai_frameworks": true, "data_processing": true,
	"visualization": true, "bi_tools": true, "big_data": true,
	"databases": true, "mlops": true,
	// web dev
	"frontend_frameworks": true, "css_styling": true, "backend_frameworks": true,
	"web_databases": true, "devops_tools": true, "testing": true,
	"api_tools": true, "mobile": true,
	// cyber security
	"tools": true, "frameworks": true, "certifications": true,
}

// Technical concepts stay, but process-flavored ones are too generic to be
// meaningful co-occurrence partners.
var excludedConcepts = map[string]bool{
	"compliance": true, "audit": true, "agile": true,
	"scrum": true, "project management": true,
}

// Pair is an unordered skill pair stored in sorted order, so (A,B) and
// (B,A) are the same key and symmetry holds by construction.
type Pair struct {
	A, B string
}

// MakePair builds the sorted key for two skill names.
func MakePair(x, y string) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// CoocRow is one row of the co-occurrence table. Pct is relative to the
// less frequent skill of the pair.
type CoocRow struct {
	Skill1 string  `json:"skill_1"`
	Skill2 string  `json:"skill_2"`
	Count  int     `json:"cooccurrence_count"`
	Pct    float64 `json:"cooccurrence_pct"`
}

// CoocOptions restricts which skills participate.
type CoocOptions struct {
	TopN           int  // most frequent skills to consider; 0 means 30
	HardSkillsOnly bool // drop soft skills and generic concepts
}

// Cooccurrence counts, for every unordered pair among the top-N skills,
// how many jobs carry both. Rows come back sorted by count descending.
func Cooccurrence(jobs []JobSkills, opts CoocOptions) []CoocRow {
	topN := opts.TopN
	if topN <= 0 {
		topN = 30
	}

	keep := func(name, category string) bool {
		if !opts.HardSkillsOnly {
			return true
		}
		if excludedConcepts[strings.ToLower(name)] {
			return false
		}
		return hardSkillCategories[category] || category == "concepts" ||
			category == "security_concepts"
	}

	// Rank skills by how many jobs mention them (post filter).
	freq := make(map[string]int)
	for _, j := range jobs {
		for _, tag := range j.Skills {
			if keep(tag.Name, tag.Category) {
				freq[tag.Name]++
			}
		}
	}

	ranked := make([]string, 0, len(freq))
	for name := range freq {
		ranked = append(ranked, name)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if freq[ranked[i]] != freq[ranked[j]] {
			return freq[ranked[i]] > freq[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	top := make(map[string]bool, len(ranked))
	for _, name := range ranked {
		top[name] = true
	}

	// Per-job sets intersected with the top set, then pair counting.
	pairCounts := make(map[Pair]int)
	skillCounts := make(map[string]int)

	for _, j := range jobs {
		var set []string
		seen := make(map[string]bool)
		for _, tag := range j.Skills {
			if top[tag.Name] && !seen[tag.Name] {
				seen[tag.Name] = true
				set = append(set, tag.Name)
			}
		}
		sort.Strings(set)

		for _, name := range set {
			skillCounts[name]++
		}
		for i := 0; i < len(set); i++ {
			for k := i + 1; k < len(set); k++ {
				pairCounts[MakePair(set[i], set[k])]++
			}
		}
	}

	out := make([]CoocRow, 0, len(pairCounts))
	for pair, count := range pairCounts {
		minCount := skillCounts[pair.A]
		if skillCounts[pair.B] < minCount {
			minCount = skillCounts[pair.B]
		}
		pct := 0.0
		if minCount > 0 {
			pct = round1(float64(count) / float64(minCount) * 100)
		}
		out = append(out, CoocRow{Skill1: pair.A, Skill2: pair.B, Count: count, Pct: pct})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Skill1 != out[j].Skill1 {
			return out[i].Skill1 < out[j].Skill1
		}
		return out[i].Skill2 < out[j].Skill2
	})
	return out
}
