// Package config is the single configuration surface: environment variables
// (with optional .env file) for operational settings, and an optional YAML
// weights file for loop tuning.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/liminal-ware/querent/internal/homeostat"
)

// #region app-config

// App holds the operational settings read from the environment.
type App struct {
	DBPath      string `env:"QUERENT_DB_PATH" envDefault:"querent.db"`
	WeightsPath string `env:"QUERENT_WEIGHTS"`
	Debug       bool   `env:"QUERENT_DEBUG"`
	Seed        int64  `env:"QUERENT_SEED"`
	NoColor     bool   `env:"QUERENT_NO_COLOR"`
}

// Load reads App from the environment. A .env file in the working directory
// is loaded first if present; a missing file is not an error.
func Load() (App, error) {
	_ = godotenv.Load()

	var a App
	if err := env.Parse(&a); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}
	return a, nil
}

// #endregion app-config

// #region loop-config

// Loop returns the control-loop configuration: the canonical defaults,
// overridden by the YAML weights file when one is configured. The file must
// be complete; partial files would silently zero the remaining weights.
func (a App) Loop() (homeostat.Config, error) {
	if a.WeightsPath == "" {
		return homeostat.DefaultConfig(), nil
	}

	data, err := os.ReadFile(a.WeightsPath)
	if err != nil {
		return homeostat.Config{}, fmt.Errorf("read weights %s: %w", a.WeightsPath, err)
	}

	var cfg homeostat.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return homeostat.Config{}, fmt.Errorf("parse weights %s: %w", a.WeightsPath, err)
	}
	if err := validate(cfg); err != nil {
		return homeostat.Config{}, fmt.Errorf("weights %s: %w", a.WeightsPath, err)
	}
	return cfg, nil
}

// validate rejects weight files that would make the loop degenerate.
func validate(cfg homeostat.Config) error {
	if cfg.Variety.MaxInputLen <= 0 {
		return fmt.Errorf("max_input_len must be positive, got %d", cfg.Variety.MaxInputLen)
	}
	if cfg.Variety.Window < 1 {
		return fmt.Errorf("window must be at least 1, got %d", cfg.Variety.Window)
	}
	if cfg.Variety.Dispersal.Gain <= 0 || cfg.Variety.Intensity.Gain <= 0 || cfg.Variety.Complexity.Gain <= 0 {
		return fmt.Errorf("gains must be positive")
	}
	if cfg.Regulate.EmergeTurns < 1 {
		return fmt.Errorf("emerge_turns must be at least 1, got %d", cfg.Regulate.EmergeTurns)
	}
	return nil
}

// #endregion loop-config
