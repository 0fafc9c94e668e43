package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr   string   `yaml:"listen_addr"`
	RulebookPath string   `yaml:"rulebook_path"`
	CatalogPath  string   `yaml:"catalog_path"`
	DevToken     string   `yaml:"dev_token"`
	AI           AIConfig `yaml:"ai"`
	DB           DBConfig `yaml:"db"`
}

type AIConfig struct {
	Provider       string        `yaml:"provider"`
	APIKey         string        `yaml:"api_key"`
	Model          string        `yaml:"model"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type DBConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

func Load(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}

	switch c.AI.Provider {
	case "", "none":
	case "gemini", "openai":
		if c.AI.APIKey == "" {
			return fmt.Errorf("ai.api_key is required when ai.provider=%s", c.AI.Provider)
		}
	default:
		return fmt.Errorf("ai.provider must be gemini, openai or none")
	}

	switch c.DB.Driver {
	case "", "memory":
	case "sqlite":
		if c.DB.DSN == "" {
			return fmt.Errorf("db.dsn is required when db.driver=sqlite")
		}
	default:
		return fmt.Errorf("db.driver must be memory or sqlite")
	}

	return nil
}
