package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string   `env:"GO_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	Port        string   `env:"PORT" envDefault:"8080"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Site    SiteConfig
	Release ReleaseConfig
	Email   EmailConfig
}

// SiteConfig holds the landing page identity and SEO metadata.
type SiteConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"Coming Soon"`
	URL         string `env:"SITE_URL"`
	Description string `env:"SITE_DESCRIPTION"` // Markdown
}

// ReleaseConfig holds the countdown target.
type ReleaseConfig struct {
	Date     string `env:"RELEASE_DATE,required"`
	Timezone string `env:"RELEASE_TIMEZONE" envDefault:"UTC"`
}

// EmailConfig holds the mail collaborator settings.
type EmailConfig struct {
	Provider           string        `env:"EMAIL_PROVIDER" envDefault:"smtp"`
	Host               string        `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	Port               int           `env:"EMAIL_PORT" envDefault:"587"`
	Secure             bool          `env:"EMAIL_SECURE" envDefault:"false"`
	User               string        `env:"EMAIL_USER"`
	Password           string        `env:"EMAIL_PASSWORD"`
	From               string        `env:"EMAIL_FROM"`
	AdminEmail         string        `env:"ADMIN_EMAIL"`
	Timeout            time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
	SubmissionTimezone string        `env:"SUBMISSION_TIMEZONE" envDefault:"UTC"`

	ResendAPIKey string `env:"RESEND_API_KEY"`

	AWSRegion             string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID        string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey    string `env:"AWS_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file is usually absent and the process
	// environment is authoritative.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	return Parse(nil)
}

// Parse builds a Config from environ (the process environment when nil) and
// applies the derived defaults.
func Parse(environ map[string]string) (*Config, error) {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Email.From == "" && c.Email.User != "" {
		c.Email.From = fmt.Sprintf("%q <%s>", c.Site.AppName+" Launch", c.Email.User)
	}
	if c.Email.AdminEmail == "" {
		c.Email.AdminEmail = c.Email.User
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsProduction reports whether GO_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
