package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"kazi-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	writeJSON(w, cfg)
}

func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		WriteError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, cfg); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_config", err.Error())
		return
	}

	// Reload from disk so the served config is what was persisted.
	fresh, err := h.LoadCfg()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "reload_failed", err.Error())
		return
	}
	h.CfgVal.Store(fresh)
	writeJSON(w, fresh)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"path": h.UserCfgPath})
}
