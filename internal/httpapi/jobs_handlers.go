package httpapi

import (
	"net/http"
	"strconv"

	"kazi-engine/internal/store"
)

type JobsHandler struct {
	DB *store.DB
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := store.JobFilter{
		Domain:   q.Get("domain"),
		Location: q.Get("location"),
		Company:  q.Get("company"),
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Offset = n
		}
	}

	jobs, err := h.DB.ListJobs(r.Context(), f)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if jobs == nil {
		jobs = []store.JobRow{}
	}
	writeJSON(w, map[string]any{"jobs": jobs, "count": len(jobs)})
}
