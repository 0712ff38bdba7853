package config

import (
	"bytes"
	"fmt"
	neturl "net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 5005
	defaultEnv         = "development"
	defaultOllamaURL   = "http://localhost:11434/api/generate"
	defaultOllamaModel = "gemma3:12b"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port   int          `yaml:"port"`
	Env    string       `yaml:"env"` // "development" | "production"
	Ollama OllamaConfig `yaml:"ollama"`
}

// OllamaConfig points at the text-generation backend. The endpoint and
// model are deployment constants, never request parameters.
type OllamaConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Ollama: OllamaConfig{
			URL:   defaultOllamaURL,
			Model: defaultOllamaModel,
		},
	}
}

// Load reads the YAML config at path. A missing file at the default path is
// not an error: the built-in defaults let the binary run out of the box.
// An explicitly passed path must exist.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type rawAppConfig struct {
	Port   int             `yaml:"port"`
	Env    string          `yaml:"env"`
	Ollama rawOllamaConfig `yaml:"ollama"`

	// Flat legacy keys, kept for early deployments that predate the
	// nested ollama section.
	OllamaURL   string `yaml:"ollama_url"`
	OllamaModel string `yaml:"ollama_model"`
}

type rawOllamaConfig struct {
	URL   string `yaml:"url"`
	Model string `yaml:"model"`
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.Ollama.URL); v != "" {
		cfg.Ollama.URL = v
	} else if v := strings.TrimSpace(raw.OllamaURL); v != "" {
		cfg.Ollama.URL = v
	}
	if v := strings.TrimSpace(raw.Ollama.Model); v != "" {
		cfg.Ollama.Model = v
	} else if v := strings.TrimSpace(raw.OllamaModel); v != "" {
		cfg.Ollama.Model = v
	}
}

func (c *AppConfig) validate(path string) error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d in %q, expected 1-65535", c.Port, path)
	}
	u, err := neturl.Parse(c.Ollama.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid ollama.url %q in %q, expected absolute http(s) URL", c.Ollama.URL, path)
	}
	if strings.TrimSpace(c.Ollama.Model) == "" {
		return fmt.Errorf("ollama.model must not be empty in %q", path)
	}
	return nil
}
