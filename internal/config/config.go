package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds folio's runtime settings. Values come from the TOML file and
// are then overridden by FOLIO_* environment variables.
type Config struct {
	Content  string `env:"CONTENT"`
	Prefs    string `env:"PREFS"`
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL"`
	SSH      SSH    `envPrefix:"SSH_"`
}

// SSH configures `folio serve`.
type SSH struct {
	Host               string        `env:"HOST"`
	Port               int           `env:"PORT"`
	HostKey            string        `env:"HOST_KEY"`
	IdleTimeout        time.Duration `env:"IDLE_TIMEOUT"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE"`
	Burst              int           `env:"BURST"`
}

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "FOLIO_"

const (
	defaultConfigPath  = "~/.config/folio/config.toml"
	defaultPrefsPath   = "~/.config/folio/prefs.toml"
	defaultLogFile     = "~/.local/state/folio/folio.log"
	defaultLogLevel    = "info"
	defaultSSHHost     = "0.0.0.0"
	defaultSSHPort     = 2222
	defaultHostKey     = "~/.config/folio/ssh_host_ed25519"
	defaultIdleTimeout = 2 * time.Minute
	defaultRatePerMin  = 30
	defaultBurst       = 10
)

// Defaults returns the settings used when neither file nor environment set them.
func Defaults() Config {
	return Config{
		Prefs:    mustExpand(defaultPrefsPath),
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
		SSH: SSH{
			Host:               defaultSSHHost,
			Port:               defaultSSHPort,
			HostKey:            mustExpand(defaultHostKey),
			IdleTimeout:        defaultIdleTimeout,
			RateLimitPerMinute: defaultRatePerMin,
			Burst:              defaultBurst,
		},
	}
}

type rawConfig struct {
	Content  string `toml:"content"`
	Prefs    string `toml:"prefs"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
	SSH      struct {
		Host               string `toml:"host"`
		Port               int    `toml:"port"`
		HostKey            string `toml:"host_key"`
		IdleTimeout        string `toml:"idle_timeout"`
		RateLimitPerMinute int    `toml:"rate_limit_per_minute"`
		Burst              int    `toml:"burst"`
	} `toml:"ssh"`
}

// Load reads the config file at path (the default location when empty),
// applies environment overrides, and validates the result. A missing file
// yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()
	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setString(&cfg.Content, raw.Content)
	setString(&cfg.Prefs, raw.Prefs)
	setString(&cfg.LogFile, raw.LogFile)
	setString(&cfg.LogLevel, raw.LogLevel)
	setString(&cfg.SSH.Host, raw.SSH.Host)
	setString(&cfg.SSH.HostKey, raw.SSH.HostKey)
	if raw.SSH.Port != 0 {
		cfg.SSH.Port = raw.SSH.Port
	}
	if raw.SSH.RateLimitPerMinute != 0 {
		cfg.SSH.RateLimitPerMinute = raw.SSH.RateLimitPerMinute
	}
	if raw.SSH.Burst != 0 {
		cfg.SSH.Burst = raw.SSH.Burst
	}
	if s := strings.TrimSpace(raw.SSH.IdleTimeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse config: ssh.idle_timeout: %w", err)
		}
		cfg.SSH.IdleTimeout = d
	}
	return nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(c.Content) != "" {
		c.Content = mustExpand(c.Content)
	}
	c.Prefs = mustExpand(orDefault(c.Prefs, defaultPrefsPath))
	c.LogFile = mustExpand(orDefault(c.LogFile, defaultLogFile))
	c.SSH.Host = orDefault(c.SSH.Host, defaultSSHHost)
	c.SSH.HostKey = mustExpand(orDefault(c.SSH.HostKey, defaultHostKey))
}

func (c *Config) validate() error {
	if c.SSH.Port < 1 || c.SSH.Port > 65535 {
		return fmt.Errorf("ssh.port must be between 1 and 65535, got %d", c.SSH.Port)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}
	if c.SSH.RateLimitPerMinute < 1 {
		return fmt.Errorf("ssh.rate_limit_per_minute must be positive, got %d", c.SSH.RateLimitPerMinute)
	}
	if c.SSH.Burst < 1 {
		return fmt.Errorf("ssh.burst must be positive, got %d", c.SSH.Burst)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	return nil
}

// Address returns the SSH listen address.
func (s SSH) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return strings.TrimSpace(v)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
