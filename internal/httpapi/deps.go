package httpapi

import (
	"context"
	"sync/atomic"

	"kazi-engine/internal/config"
	"kazi-engine/internal/events"
	"kazi-engine/internal/pipeline"
	"kazi-engine/internal/store"
)

type Deps struct {
	DB *store.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal      *atomic.Value // stores config.Config
	BatchStatus *atomic.Value // stores httpapi.BatchStatus

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Batch entrypoint (inject for testability)
	RunBatch func(ctx context.Context, cfg config.Config, onSaved func()) (pipeline.BatchResult, error)
}
