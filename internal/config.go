package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional config file name in the user's home directory.
const ConfigFile = ".mindwell.yaml"

// DefaultReplyDelay is the pause before a companion reply is shown.
// Purely presentational; the engine itself returns immediately.
const DefaultReplyDelay = 1200 * time.Millisecond

// Config holds user-level settings. Flags override config values, which
// override the built-in defaults.
type Config struct {
	DataDir      string        `yaml:"data_dir,omitempty"`
	DefaultUser  string        `yaml:"default_user,omitempty"`
	ReplyDelayMS int           `yaml:"reply_delay_ms,omitempty"`
	replyDelay   time.Duration `yaml:"-"`
}

// ReplyDelay returns the configured reply delay.
func (c *Config) ReplyDelay() time.Duration {
	if c.replyDelay > 0 {
		return c.replyDelay
	}
	return DefaultReplyDelay
}

// LoadConfig reads the config file from the user's home directory. A
// missing file is not an error; defaults are returned.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadConfigFrom(filepath.Join(home, ConfigFile))
}

// LoadConfigFrom reads a config file from an explicit path.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ReplyDelayMS < 0 {
		return nil, fmt.Errorf("reply_delay_ms must not be negative, got %d", cfg.ReplyDelayMS)
	}
	if cfg.ReplyDelayMS > 0 {
		cfg.replyDelay = time.Duration(cfg.ReplyDelayMS) * time.Millisecond
	}

	return cfg, nil
}

// ResolveDataDir picks the data directory: flag value first, then config,
// then the default under the home directory.
func ResolveDataDir(flagValue string, cfg *Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg != nil && cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	return DefaultDataDir()
}
