package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"kazi-engine/internal/config"
	"kazi-engine/internal/events"
	"kazi-engine/internal/pipeline"
)

// BatchStatus is the last-known state of the batch loop, served on
// /batch/status and updated by both the scheduler and manual runs.
type BatchStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastSaved int    `json:"last_saved"`
	Running   bool   `json:"running"`
}

type BatchHandler struct {
	CfgVal      *atomic.Value // config.Config
	BatchStatus *atomic.Value // httpapi.BatchStatus
	Hub         *events.Hub
	RunBatch    func(ctx context.Context, cfg config.Config, onSaved func()) (pipeline.BatchResult, error)
}

func (h BatchHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.BatchStatus.Load().(BatchStatus)
	writeJSON(w, st)
}

func (h BatchHandler) Run(w http.ResponseWriter, r *http.Request) {
	st := h.BatchStatus.Load().(BatchStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.BatchStatus.Store(BatchStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
	})

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		res, err := h.RunBatch(context.Background(), cfg, func() {
			h.Hub.Publish(events.MakeEvent("", "job_saved", 1, nil))
		})

		now := time.Now().Format(time.RFC3339)
		next := h.BatchStatus.Load().(BatchStatus)
		next.Running = false
		next.LastRunAt = now
		next.LastSaved = res.Saved
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.BatchStatus.Store(next)

		h.Hub.Publish(events.MakeEvent("", "batch_done", 1, res))
	}()

	writeJSON(w, map[string]any{"ok": true})
}
