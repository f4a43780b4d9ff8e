package httpapi

import (
	"net/http"

	"kazi-engine/internal/store"
)

type StatsHandler struct {
	DB *store.DB
}

func (h StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DB.LoadStats(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, stats)
}
