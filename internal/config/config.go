// Package config loads runtime configuration: logging options plus overrides
// for the engine's balance constants. The layered structure of the engine's
// rolls is fixed in code; the magnitudes are configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/openfooty/match-engine-go/internal/engine"
	"github.com/openfooty/match-engine-go/internal/trace"
)

// Config is the full runtime configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Trace   TraceConfig   `mapstructure:"trace"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// EngineConfig overrides engine.Tuning. Zero values fall back to defaults.
type EngineConfig struct {
	BaseEventRate       float64 `mapstructure:"base_event_rate"`
	HomeAdvantage       float64 `mapstructure:"home_advantage"`
	HomeConversionBonus float64 `mapstructure:"home_conversion_bonus"`
	BaseConversion      float64 `mapstructure:"base_conversion"`
	CornerGoalRate      float64 `mapstructure:"corner_goal_rate"`
	FreeKickGoalRate    float64 `mapstructure:"free_kick_goal_rate"`
	BaseDrain           float64 `mapstructure:"base_drain"`
	SubEnergyFloor      float64 `mapstructure:"sub_energy_floor"`
}

// TraceConfig enables the trace sink and sets per-type emission policy.
type TraceConfig struct {
	Enabled    bool               `mapstructure:"enabled"`
	Sampling   map[string]float64 `mapstructure:"sampling"`
	ThrottleMS map[string]int     `mapstructure:"throttle_ms"`
}

// Load reads configuration from the given YAML file. A missing file is not
// an error: defaults apply, and MATCHENGINE_* environment variables can
// override individual keys.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("trace.enabled", false)

	v.SetEnvPrefix("MATCHENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Tuning materializes the engine tuning: defaults with any configured
// overrides applied on top.
func (c *Config) Tuning() engine.Tuning {
	t := engine.DefaultTuning()
	if c.Engine.BaseEventRate > 0 {
		t.BaseEventRate = c.Engine.BaseEventRate
	}
	if c.Engine.HomeAdvantage > 0 {
		t.HomeAdvantage = c.Engine.HomeAdvantage
	}
	if c.Engine.HomeConversionBonus > 0 {
		t.HomeConversionBonus = c.Engine.HomeConversionBonus
	}
	if c.Engine.BaseConversion > 0 {
		t.BaseConversion = c.Engine.BaseConversion
	}
	if c.Engine.CornerGoalRate > 0 {
		t.CornerGoalRate = c.Engine.CornerGoalRate
	}
	if c.Engine.FreeKickGoalRate > 0 {
		t.FreeKickGoalRate = c.Engine.FreeKickGoalRate
	}
	if c.Engine.BaseDrain > 0 {
		t.BaseDrain = c.Engine.BaseDrain
	}
	if c.Engine.SubEnergyFloor > 0 {
		t.SubEnergyFloor = c.Engine.SubEnergyFloor
	}
	return t
}

// TraceEmitterConfig converts the trace section into the emitter policy.
func (c *Config) TraceEmitterConfig() trace.Config {
	cfg := trace.Config{}
	if len(c.Trace.Sampling) > 0 {
		cfg.Sampling = make(map[trace.Type]float64, len(c.Trace.Sampling))
		for k, rate := range c.Trace.Sampling {
			cfg.Sampling[trace.Type(k)] = rate
		}
	}
	if len(c.Trace.ThrottleMS) > 0 {
		cfg.Throttle = make(map[trace.Type]time.Duration, len(c.Trace.ThrottleMS))
		for k, ms := range c.Trace.ThrottleMS {
			cfg.Throttle[trace.Type(k)] = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}
