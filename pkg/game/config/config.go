// Package config holds the tuning knobs for the decision core and the
// simulation harness, loaded from an optional YAML file.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Brain BrainConfig `mapstructure:"brain"`
	Sim   SimConfig   `mapstructure:"sim"`
}

type BrainConfig struct {
	// SurvivalThreshold is the health ratio at or below which the agent
	// treats itself as low on health.
	SurvivalThreshold float64 `mapstructure:"survival_threshold"`
	DangerRadius      int     `mapstructure:"danger_radius"`
	RiskWeight        float64 `mapstructure:"risk_weight"`
	HistoryWindow     int     `mapstructure:"history_window"`
	LoopBreakerTurns  int     `mapstructure:"loop_breaker_turns"`
}

type SimConfig struct {
	Floors       int    `mapstructure:"floors"`
	FloorWidth   int    `mapstructure:"floor_width"`
	FloorHeight  int    `mapstructure:"floor_height"`
	MaxTicks     int    `mapstructure:"max_ticks"`
	FOVRadius    int    `mapstructure:"fov_radius"`
	BestiaryPath string `mapstructure:"bestiary_path"`
}

// Load reads config from the given YAML file path. An empty path yields the
// built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("brain.survival_threshold", 0.3)
	v.SetDefault("brain.danger_radius", 3)
	v.SetDefault("brain.risk_weight", 10.0)
	v.SetDefault("brain.history_window", 8)
	v.SetDefault("brain.loop_breaker_turns", 3)
	v.SetDefault("sim.floors", 3)
	v.SetDefault("sim.floor_width", 24)
	v.SetDefault("sim.floor_height", 16)
	v.SetDefault("sim.max_ticks", 300)
	v.SetDefault("sim.fov_radius", 4)
	v.SetDefault("sim.bestiary_path", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
