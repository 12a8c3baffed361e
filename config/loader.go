package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config
// file search path.
const EnvConfigPath = "STATION_ROULETTE_CONFIG"

// Config is the global application configuration
var Config AppConfig

// Default returns the configuration used when no config file exists.
func Default() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.MaxSizeMB == 0 {
		cfg.Logging.MaxSizeMB = 10
	}
	if cfg.Logging.MaxBackups == 0 {
		cfg.Logging.MaxBackups = 5
	}
	if cfg.Logging.MaxAgeDays == 0 {
		cfg.Logging.MaxAgeDays = 30
	}
	if cfg.Quiz.Questions == 0 {
		cfg.Quiz.Questions = 10
	}
	if cfg.Quiz.Options == 0 {
		cfg.Quiz.Options = 4
	}
}

// LoadAppConfig loads and validates the application configuration. The path
// argument wins; otherwise STATION_ROULETTE_CONFIG, then config.yml next to
// the binary's working directory. A missing file is not an error — the
// defaults apply.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "config.yaml"}
	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = []string{env}
	}
	if path != "" {
		paths = []string{path}
	}

	var data []byte
	var err error
	found := false
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			found = true
			break
		}
	}
	if !found {
		// No file anywhere: fall back to defaults unless the caller named a
		// file explicitly.
		if path != "" || os.Getenv(EnvConfigPath) != "" {
			return fmt.Errorf("read config %s: %w", paths[0], err)
		}
		Config = Default()
		return nil
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	Config = cfg
	return nil
}
