package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.Batch.IntervalSeconds < 0 {
		errs = append(errs, "batch.interval_seconds must be >= 0")
	}
	if cfg.Batch.RequestsPerSec < 0 {
		errs = append(errs, "batch.requests_per_sec must be >= 0")
	}
	if cfg.Aggregation.TopN < 0 {
		errs = append(errs, "aggregation.top_n must be >= 0")
	}

	checkBoard := func(name string, b BoardConfig) {
		if !b.Enabled {
			return
		}
		if len(b.Queries) == 0 {
			errs = append(errs, fmt.Sprintf("sources.%s.queries must have at least 1 query when enabled", name))
		}
		for i, q := range b.Queries {
			if strings.TrimSpace(q) == "" {
				errs = append(errs, fmt.Sprintf("sources.%s.queries[%d] cannot be empty", name, i))
			}
		}
		if b.Limit < 0 {
			errs = append(errs, fmt.Sprintf("sources.%s.limit must be >= 0", name))
		}
	}
	checkBoard("oyk", cfg.Sources.OYK)
	checkBoard("brightermonday", cfg.Sources.BrighterMonday)
	checkBoard("myjobmag", cfg.Sources.MyJobMag)

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
