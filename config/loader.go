package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort      = 8080
	defaultBaseURL   = "https://v6.db.transport.rest"
	defaultUserAgent = "bahn-copilot-poc"
	defaultTimeoutMS = 30000
)

// Load reads the configuration file at path, applies environment overrides
// and defaults, and validates the result. A missing file is not an error;
// the defaults describe a fully working setup against the public API.
func Load(path string) (*AppConfig, error) {
	// .env is optional, for local development
	_ = godotenv.Load()

	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("HAFAS_BASE_URL"); v != "" {
		cfg.HAFAS.BaseURL = v
	}
	if v := os.Getenv("HAFAS_USER_AGENT"); v != "" {
		cfg.HAFAS.UserAgent = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.HAFAS.BaseURL == "" {
		cfg.HAFAS.BaseURL = defaultBaseURL
	}
	if cfg.HAFAS.UserAgent == "" {
		cfg.HAFAS.UserAgent = defaultUserAgent
	}
	if cfg.HAFAS.TimeoutMS == 0 {
		cfg.HAFAS.TimeoutMS = defaultTimeoutMS
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
