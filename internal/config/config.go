package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type BoardConfig struct {
	Enabled bool     `yaml:"enabled"`
	Queries []string `yaml:"queries"`
	Limit   int      `yaml:"limit"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Batch struct {
		IntervalSeconds int     `yaml:"interval_seconds"`
		RequestsPerSec  float64 `yaml:"requests_per_sec"`
		Burst           int     `yaml:"burst"`
	} `yaml:"batch"`

	Sources struct {
		OYK            BoardConfig `yaml:"oyk"`
		BrighterMonday BoardConfig `yaml:"brightermonday"`
		MyJobMag       BoardConfig `yaml:"myjobmag"`
	} `yaml:"sources"`

	Aggregation struct {
		TopN int `yaml:"top_n"`
	} `yaml:"aggregation"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
