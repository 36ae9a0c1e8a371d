package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults point at the production chef-gourmet deployment. The access key is
// a shared application key every client of this service sends; it is not a
// user secret.
const (
	defaultBaseURL   = "https://admin.quilsoft.com/chef-gourmet/public/ws"
	defaultAccessKey = "e5c720cafc0eb5976128e674c2eac68e"
	defaultTimeout   = 30 * time.Second
)

// Config carries everything that was a compiled-in global in earlier clients
// of this service: endpoint, shared key, and local state paths. It is built
// once in main and passed down, so tests can point components at a mock
// endpoint and a throwaway store.
type Config struct {
	BaseURL         string
	AccessKey       string
	CredentialsPath string
	DBPath          string
	Timeout         time.Duration
	Debug           bool
}

// fileConfig is the YAML shape. Timeout is a string ("30s") because the YAML
// decoder has no native duration support; zero values mean "keep the default".
type fileConfig struct {
	BaseURL         string `yaml:"base_url"`
	AccessKey       string `yaml:"access_key"`
	CredentialsPath string `yaml:"credentials_path"`
	DBPath          string `yaml:"db_path"`
	Timeout         string `yaml:"timeout"`
	Debug           bool   `yaml:"debug"`
}

func (f fileConfig) apply(cfg *Config) error {
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.AccessKey != "" {
		cfg.AccessKey = f.AccessKey
	}
	if f.CredentialsPath != "" {
		cfg.CredentialsPath = f.CredentialsPath
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if f.Debug {
		cfg.Debug = true
	}
	return nil
}

// New builds the config from defaults, then an optional YAML file, then the
// CHEFCTL_DEBUG environment variable. An empty path means the default
// location under the user config dir; a missing file there is fine. An
// explicit path that does not exist is an error.
func New(path string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home dir: %w", err)
	}
	stateDir := filepath.Join(home, ".config", "chefctl")

	cfg := Config{
		BaseURL:         defaultBaseURL,
		AccessKey:       defaultAccessKey,
		CredentialsPath: filepath.Join(stateDir, "credentials.json"),
		DBPath:          filepath.Join(stateDir, "history.db"),
		Timeout:         defaultTimeout,
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(stateDir, "config.yaml")
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var overlay fileConfig
		if err := yaml.Unmarshal(raw, &overlay); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := overlay.apply(&cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// no config file, defaults stand
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if os.Getenv("CHEFCTL_DEBUG") == "1" {
		cfg.Debug = true
	}
	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("base_url must not be empty")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}
