// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// ProvidersConfig holds per-vendor LLM settings. A provider with incomplete
// credentials still mounts; its requests fail with CONFIG_MISSING so the
// missing key is reported through the error envelope, not a crash.
type ProvidersConfig struct {
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	AzureOpenAI AzureOpenAIConfig `mapstructure:"azure_openai"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

type AzureOpenAIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Endpoint       string `mapstructure:"endpoint"`
	APIVersion     string `mapstructure:"api_version"`
	ChatDeployment string `mapstructure:"chat_deployment"`
	Timeout        int    `mapstructure:"timeout"` // milliseconds
}

// RetryConfig controls reissuing of transient vendor failures. Zero retries
// by default: one request in, at most one vendor call out.
type RetryConfig struct {
	MaxRetries     int `mapstructure:"max_retries"`
	InitialBackoff int `mapstructure:"initial_backoff"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
