package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Jobs
	jh := JobsHandler{DB: d.DB}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))

	// Skill aggregation
	skh := SkillsHandler{DB: d.DB, CfgVal: d.CfgVal}
	mux.HandleFunc("/skills/summary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: skh.Summary,
	}))
	mux.HandleFunc("/skills/cooccurrence", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: skh.Cooccurrence,
	}))

	// Run log + stats
	rh := RunsHandler{DB: d.DB}
	mux.HandleFunc("/runs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.List,
	}))
	sth := StatsHandler{DB: d.DB}
	mux.HandleFunc("/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sth.Get,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Batch
	bh := BatchHandler{
		CfgVal:      d.CfgVal,
		BatchStatus: d.BatchStatus,
		Hub:         d.Hub,
		RunBatch:    d.RunBatch,
	}
	mux.HandleFunc("/batch/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: bh.Status,
	}))
	mux.HandleFunc("/batch/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: bh.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	return mux
}
