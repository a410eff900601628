// Package config loads plantcheck settings from defaults, an optional YAML
// file, PLANTCHECK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// PLANTCHECK_SCORING_PASS_THRESHOLD.
const EnvPrefix = "PLANTCHECK"

type Config struct {
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

type ScoringConfig struct {
	PassThreshold    int               `mapstructure:"pass_threshold"`
	TrapFailureLimit int               `mapstructure:"trap_failure_limit"`
	Weighting        string            `mapstructure:"weighting"`
	NotApplicable    map[string]string `mapstructure:"not_applicable"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flagKeys maps config keys to the persistent CLI flags that override them.
var flagKeys = map[string]string{
	"database.path": "db",
	"log.level":     "log-level",
}

func setDefaults(v *viper.Viper) {
	def := scoring.DefaultConfig()
	v.SetDefault("scoring.pass_threshold", def.PassThreshold)
	v.SetDefault("scoring.trap_failure_limit", def.TrapFailureLimit)
	v.SetDefault("scoring.weighting", string(def.Weighting))
	for _, k := range scoring.AllKinds() {
		v.SetDefault("scoring.not_applicable."+string(k), string(def.NotApplicableFor(k)))
	}
	v.SetDefault("database.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Load reads configuration. When path is empty, plantcheck.yaml is looked up
// in the working directory and in $XDG_CONFIG_HOME/plantcheck; a missing
// file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("plantcheck")
		v.AddConfigPath(".")
		if dir := configHome(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "plantcheck"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, err := cfg.ScoringConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ScoringConfig converts the scoring section into an engine policy and
// validates it.
func (c *Config) ScoringConfig() (scoring.Config, error) {
	sc := scoring.Config{
		PassThreshold:    c.Scoring.PassThreshold,
		TrapFailureLimit: c.Scoring.TrapFailureLimit,
		Weighting:        scoring.Weighting(strings.ToLower(c.Scoring.Weighting)),
		NotApplicable:    make(map[scoring.EvaluationKind]scoring.NotApplicablePolicy, len(c.Scoring.NotApplicable)),
	}
	for kind, policy := range c.Scoring.NotApplicable {
		k := scoring.EvaluationKind(strings.ToLower(kind))
		if !k.Valid() {
			return scoring.Config{}, fmt.Errorf("scoring.not_applicable: unknown evaluation kind %q", kind)
		}
		sc.NotApplicable[k] = scoring.NotApplicablePolicy(strings.ToLower(policy))
	}
	if err := sc.Validate(); err != nil {
		return scoring.Config{}, fmt.Errorf("scoring: %w", err)
	}
	return sc, nil
}

func configHome() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
