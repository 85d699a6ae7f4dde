// Package config provides configuration management for the email service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Mail   MailConfig
}

// ServerConfig holds HTTP server-related configuration
type ServerConfig struct {
	Port string
}

// MailConfig holds SMTP relay configuration
type MailConfig struct {
	Provider       string        // Delivery mode: "smtp" or "console"
	Server         string        // SMTP server host
	Port           int           // SMTP server port; 465 implies implicit TLS
	SenderAddress  string        // Authenticated sender address, also used as From
	SenderPassword string        // SMTP password (app password for most providers)
	ResetURLBase   string        // Base URL embedded in password reset links
	Timeout        time.Duration // Per-send SMTP session timeout
}

// Load loads configuration from environment variables.
//
// Mail credentials are deliberately not validated here: a missing sender
// address or password surfaces as an authentication failure at send time,
// not as a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Mail: MailConfig{
			Provider:       getEnv("EMAIL_PROVIDER", "smtp"),
			Server:         getEnv("MAIL_SERVER", "smtp.gmail.com"),
			Port:           getEnvAsInt("MAIL_PORT", 465),
			SenderAddress:  getEnv("ADMIN_EMAIL", ""),
			SenderPassword: GetSecret("ADMIN_PASSWORD", ""),
			ResetURLBase:   getEnv("PASSWORD_RESET_URL_BASE", "https://yourapp.com/reset"),
			Timeout:        getEnvAsDuration("MAIL_TIMEOUT", "30s"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	switch c.Mail.Provider {
	case "smtp", "console":
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be %q or %q, got %q", "smtp", "console", c.Mail.Provider)
	}
	return nil
}

// Addr returns the SMTP server address in host:port form
func (m *MailConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Server, m.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}
