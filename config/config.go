// Package config loads the engine configuration from environment
// variables and optional .env files.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/lvukan/gwback/realize"
	"github.com/lvukan/gwback/samgrid"
)

// Config holds all tunables of the GWB engine.
type Config struct {
	Realization RealizationConfig
	Grid        GridConfig
	LogLevel    string
}

// RealizationConfig holds the stochastic-engine configuration.
type RealizationConfig struct {
	NReals       int
	PoissonLimit float64
	EccenCutoff  float64
	BoxVolume    float64
	Seed         uint64
	Workers      int
}

// GridConfig holds the grid-pathway configuration.
type GridConfig struct {
	Eccen        float64
	Harmonics    []int
	OutlierLimit float64
}

// Load reads configuration from a .env file (if present) and the
// environment, with environment variables taking precedence.
func Load() (*Config, error) {
	viper.SetDefault("GWB_NREALS", 100)
	viper.SetDefault("GWB_POISSON_LIMIT", realize.DefaultPoissonLimit)
	viper.SetDefault("GWB_ECCEN_CUTOFF", realize.DefaultEccenCutoff)
	viper.SetDefault("GWB_BOX_VOLUME", 0.0)
	viper.SetDefault("GWB_SEED", 0)
	viper.SetDefault("GWB_WORKERS", 1)
	viper.SetDefault("GWB_ECCEN", 0.0)
	viper.SetDefault("GWB_HARMONICS", "2")
	viper.SetDefault("GWB_OUTLIER_LIMIT", samgrid.DefaultOutlierLimit)
	viper.SetDefault("GWB_LOG_LEVEL", "info")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // file may not exist

	viper.AutomaticEnv()
	viper.BindEnv("GWB_NREALS")
	viper.BindEnv("GWB_POISSON_LIMIT")
	viper.BindEnv("GWB_ECCEN_CUTOFF")
	viper.BindEnv("GWB_BOX_VOLUME")
	viper.BindEnv("GWB_SEED")
	viper.BindEnv("GWB_WORKERS")
	viper.BindEnv("GWB_ECCEN")
	viper.BindEnv("GWB_HARMONICS")
	viper.BindEnv("GWB_OUTLIER_LIMIT")
	viper.BindEnv("GWB_LOG_LEVEL")

	harmonics, err := parseHarmonics(viper.GetString("GWB_HARMONICS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Realization: RealizationConfig{
			NReals:       viper.GetInt("GWB_NREALS"),
			PoissonLimit: viper.GetFloat64("GWB_POISSON_LIMIT"),
			EccenCutoff:  viper.GetFloat64("GWB_ECCEN_CUTOFF"),
			BoxVolume:    viper.GetFloat64("GWB_BOX_VOLUME"),
			Seed:         viper.GetUint64("GWB_SEED"),
			Workers:      viper.GetInt("GWB_WORKERS"),
		},
		Grid: GridConfig{
			Eccen:        viper.GetFloat64("GWB_ECCEN"),
			Harmonics:    harmonics,
			OutlierLimit: viper.GetFloat64("GWB_OUTLIER_LIMIT"),
		},
		LogLevel: viper.GetString("GWB_LOG_LEVEL"),
	}

	log.Debug().
		Int("nreals", cfg.Realization.NReals).
		Uint64("seed", cfg.Realization.Seed).
		Int("workers", cfg.Realization.Workers).
		Ints("harmonics", cfg.Grid.Harmonics).
		Msg("engine configuration loaded")

	return cfg, nil
}

// RealizeOptions converts the configuration into engine options.
func (c *Config) RealizeOptions(logger zerolog.Logger) realize.Options {
	return realize.Options{
		NReals:       c.Realization.NReals,
		PoissonLimit: c.Realization.PoissonLimit,
		EccenCutoff:  c.Realization.EccenCutoff,
		BoxVolume:    c.Realization.BoxVolume,
		Seed:         c.Realization.Seed,
		Workers:      c.Realization.Workers,
		Logger:       logger,
	}
}

// GridOptions converts the configuration into grid-pathway options.
func (c *Config) GridOptions(logger zerolog.Logger) samgrid.Options {
	return samgrid.Options{
		Eccen:        c.Grid.Eccen,
		Harmonics:    c.Grid.Harmonics,
		OutlierLimit: c.Grid.OutlierLimit,
		Realize:      c.RealizeOptions(logger),
	}
}

// ParseLevel maps the configured log level onto zerolog, defaulting to
// info on anything unrecognized.
func (c *Config) ParseLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// parseHarmonics parses a comma-separated harmonic list ("1,2,3").
func parseHarmonics(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("config: bad harmonic %q in GWB_HARMONICS", part)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		out = []int{2}
	}

	return out, nil
}
