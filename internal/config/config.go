package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Mail   MailConfig
	Auth   AuthConfig
	Chat   ChatConfig
	Site   SiteConfig
	Notify NotifyConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// StoreConfig holds file store and upload settings
type StoreConfig struct {
	DataDir       string `env:"DATA_DIR" envDefault:"./data"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./data/uploads"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB
}

// MailConfig holds SMTP account settings
type MailConfig struct {
	Host             string `env:"SMTP_HOST"`
	Port             int    `env:"SMTP_PORT" envDefault:"587"`
	Username         string `env:"SMTP_USERNAME"`
	Password         string `env:"SMTP_PASSWORD"`
	From             string `env:"MAIL_FROM"`
	ContactRecipient string `env:"CONTACT_RECIPIENT"`
}

// AuthConfig holds admin credential and signing settings
type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET"`
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// ChatConfig holds external completion API settings
type ChatConfig struct {
	OpenAIKey string `env:"OPENAI_API_KEY"`
	Model     string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// SiteConfig holds public site settings used in outgoing mail
type SiteConfig struct {
	Name    string `env:"SITE_NAME" envDefault:"Brightline Studio"`
	BaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
}

// NotifyConfig holds subscriber notification settings
type NotifyConfig struct {
	Delay time.Duration `env:"NOTIFY_DELAY" envDefault:"5m"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Mail.Host == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}
	if c.Mail.ContactRecipient == "" {
		return fmt.Errorf("CONTACT_RECIPIENT is required")
	}
	return nil
}
