package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/charcreate/internal/data"
)

// EnvPrefix prefixes every environment override, e.g. CHARCREATE_EXPANSION.
const EnvPrefix = "CHARCREATE_"

// Config holds all configuration of the character creation service.
type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Shard rules
	Expansion  data.Expansion `yaml:"expansion" env:"EXPANSION"`
	SiegeShard bool           `yaml:"siege_shard" env:"SIEGE_SHARD"`
	SkillCap   int32          `yaml:"skill_cap" env:"SKILL_CAP"` // fixed-point, 1000 = 100.0

	// Welcome message sent after placement
	WelcomeMessageID int32         `yaml:"welcome_message_id" env:"WELCOME_MESSAGE_ID"`
	WelcomeDelay     time.Duration `yaml:"welcome_delay" env:"WELCOME_DELAY"`

	// Extra words rejected in character names, on top of the built-in list
	BannedNames []string `yaml:"banned_names" env:"BANNED_NAMES" envSeparator:","`

	// Accounts
	AccountCharLimit   int  `yaml:"account_char_limit" env:"ACCOUNT_CHAR_LIMIT"`
	AutoCreateAccounts bool `yaml:"auto_create_accounts" env:"AUTO_CREATE_ACCOUNTS"`

	// Prometheus endpoint; empty disables it
	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDRESS"`

	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
// With Enabled false, slots are kept in memory.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"DBNAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:           "info",
		Expansion:          data.ExpansionSA,
		SkillCap:           1000,
		WelcomeMessageID:   1062050,
		WelcomeDelay:       3500 * time.Millisecond,
		AccountCharLimit:   7,
		AutoCreateAccounts: true,
		MetricsAddress:     ":9090",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "charcreate",
			Password: "charcreate",
			DBName:   "charcreate",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file and applies CHARCREATE_* environment overrides.
// If the file doesn't exist, defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.SkillCap <= 0 {
		return fmt.Errorf("skill_cap must be > 0, got %d", c.SkillCap)
	}
	if c.AccountCharLimit <= 0 {
		return fmt.Errorf("account_char_limit must be > 0, got %d", c.AccountCharLimit)
	}
	if c.WelcomeDelay < 0 {
		return fmt.Errorf("welcome_delay must be >= 0, got %s", c.WelcomeDelay)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return lvl, nil
}
