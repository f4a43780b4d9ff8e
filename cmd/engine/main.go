package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"kazi-engine/internal/config"
	"kazi-engine/internal/events"
	"kazi-engine/internal/httpapi"
	"kazi-engine/internal/patterns"
	"kazi-engine/internal/pipeline"
	"kazi-engine/internal/scheduler"
	"kazi-engine/internal/source"
	"kazi-engine/internal/store"
)

func main() {
	dataDir := os.Getenv("KAZI_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second instance would fight over sqlite.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running on %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config invalid (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "kazi.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	// Pattern tables: builtins plus an optional skills.yml overlay.
	tables, err := patterns.OverlayTables(patterns.BuiltinTables(), filepath.Join(dataDir, "skills.yml"))
	if err != nil {
		log.Fatalf("pattern overlay failed: %v", err)
	}
	lib, err := patterns.New(tables)
	if err != nil {
		log.Fatalf("pattern tables invalid: %v", err)
	}

	normalizer := pipeline.NewNormalizer(lib)
	hub := events.NewHub()

	runBatch := func(ctx context.Context, cfg config.Config, onSaved func()) (pipeline.BatchResult, error) {
		return runAllBoards(ctx, db, normalizer, cfg, onSaved)
	}

	var batchStatus atomic.Value
	batchStatus.Store(httpapi.BatchStatus{})

	// Periodic batch loop
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Batch.IntervalSeconds > 0 {
		go scheduler.Every(rootCtx, time.Duration(cfg.Batch.IntervalSeconds)*time.Second, "batch", func(ctx context.Context) error {
			current := cfgVal.Load().(config.Config)
			res, err := runBatch(ctx, current, func() {
				hub.Publish(events.MakeEvent("", "job_saved", 1, nil))
			})
			if err != nil {
				return err
			}
			log.Printf("[batch] found=%d saved=%d dup=%d malformed=%d", res.Found, res.Saved, res.Duplicates, res.Malformed)
			hub.Publish(events.MakeEvent("", "batch_done", 1, res))
			return nil
		})
	}

	mux := httpapi.NewMux(httpapi.Deps{
		DB:          db,
		Hub:         hub,
		CfgVal:      &cfgVal,
		BatchStatus: &batchStatus,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		RunBatch:    runBatch,
	})

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (db=%s)", addr, dbPath)

	srv := &http.Server{
		Handler:           cors(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}

// runAllBoards fetches every enabled board's queries and pushes the raw
// records through one normalization batch per board+query. Counts
// accumulate across boards; the first hard failure aborts the rest.
func runAllBoards(ctx context.Context, db *store.DB, n *pipeline.Normalizer, cfg config.Config, onSaved func()) (pipeline.BatchResult, error) {
	runner := source.NewRunner(cfg.Batch.RequestsPerSec, cfg.Batch.Burst)

	type enabled struct {
		board source.Board
		bc    config.BoardConfig
	}
	var boards []enabled
	if cfg.Sources.OYK.Enabled {
		boards = append(boards, enabled{source.NewOYK(), cfg.Sources.OYK})
	}
	if cfg.Sources.BrighterMonday.Enabled {
		boards = append(boards, enabled{source.NewBrighterMonday(), cfg.Sources.BrighterMonday})
	}
	if cfg.Sources.MyJobMag.Enabled {
		boards = append(boards, enabled{source.NewMyJobMag(), cfg.Sources.MyJobMag})
	}

	var total pipeline.BatchResult
	for _, e := range boards {
		for _, query := range e.bc.Queries {
			fctx, fcancel := context.WithTimeout(ctx, 5*time.Minute)
			raws, err := runner.Fetch(fctx, e.board, query, e.bc.Limit)
			fcancel()
			if err != nil {
				log.Printf("[batch:%s] fetch failed query=%q err=%v", e.board.Name(), query, err)
				total.Errors++
				continue
			}

			res, err := n.Run(ctx, db, e.board.Name(), query, raws, onSaved)
			total.Found += res.Found
			total.Saved += res.Saved
			total.Duplicates += res.Duplicates
			total.Malformed += res.Malformed
			total.Errors += res.Errors
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}
