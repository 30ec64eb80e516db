package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration. Secrets may be left out of
// the YAML file and supplied through the environment instead.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
	Payments struct {
		SecretKey string `yaml:"secret_key"`
		BaseURL   string `yaml:"base_url"`
	} `yaml:"payments"`
}

// LoadConfig reads configuration from the specified YAML file, applies
// environment fallbacks and validates the parts the process cannot run
// without.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	applyEnv(config)

	if config.Server.Port == "" {
		config.Server.Port = ":5000"
	}
	if config.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret is not configured (auth.jwt_secret or JWT_SECRET)")
	}
	if config.Database.URL == "" {
		return nil, errors.New("database url is not configured (database.url or DATABASE_URL)")
	}

	return config, nil
}

func applyEnv(config *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		config.Payments.SecretKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		config.Server.Port = ":" + v
	}
}
