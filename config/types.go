package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// HAFASConfig contains the journey provider endpoint configuration
type HAFASConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	UserAgent string `yaml:"userAgent"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	HAFAS  HAFASConfig  `yaml:"hafas"`
}
