package httpapi

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"kazi-engine/internal/aggregate"
	"kazi-engine/internal/config"
	"kazi-engine/internal/store"
)

type SkillsHandler struct {
	DB     *store.DB
	CfgVal *atomic.Value // config.Config
}

func (h SkillsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	jobs, total, err := h.DB.LoadJobSkills(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	rows := aggregate.Summarize(jobs, total)
	if rows == nil {
		rows = []aggregate.SkillSummary{}
	}
	writeJSON(w, map[string]any{"total_jobs": total, "skills": rows})
}

func (h SkillsHandler) Cooccurrence(w http.ResponseWriter, r *http.Request) {
	jobs, _, err := h.DB.LoadJobSkills(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}

	q := r.URL.Query()
	opts := aggregate.CoocOptions{
		HardSkillsOnly: q.Get("hard_only") == "1" || q.Get("hard_only") == "true",
		TopN:           h.CfgVal.Load().(config.Config).Aggregation.TopN,
	}
	if v := q.Get("top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.TopN = n
		}
	}

	rows := aggregate.Cooccurrence(jobs, opts)
	if rows == nil {
		rows = []aggregate.CoocRow{}
	}
	writeJSON(w, map[string]any{"pairs": rows})
}
