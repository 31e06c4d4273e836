package app

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
// Fields other than SweepPath override the sweep file when set.
type Config struct {
	SweepPath string // hcl file or directory

	RendererPath string
	WorkDir      string
	OutputDir    string
	Timeout      time.Duration
	DryRun       bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout %s must not be negative", cfg.Timeout)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d out of range 0..65535", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
