package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-secret-change-in-production"

// Config holds the server and CLI settings read from the environment
type Config struct {
	Port string `env:"PORT" envDefault:"3001"`
	Env  string `env:"ENV" envDefault:"development"`

	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"root"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"geniuscrm"`

	JWTSecret        string        `env:"JWT_SECRET"`
	JWTAccessTTL     time.Duration `env:"JWT_ACCESS_TTL" envDefault:"5m"`
	JWTRefreshTTL    time.Duration `env:"JWT_REFRESH_TTL" envDefault:"24h"`
	PasswordResetTTL time.Duration `env:"PASSWORD_RESET_TTL" envDefault:"1h"`

	LogDir   string `env:"LOG_DIR" envDefault:"logs"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"chrome-extension://*" envSeparator:","`

	// PublicBaseURL is the origin used in emailed links. When empty the
	// request host is used, but only if it is listed in AllowedHosts.
	PublicBaseURL string   `env:"PUBLIC_BASE_URL"`
	AllowedHosts  []string `env:"ALLOWED_HOSTS" envDefault:"localhost,127.0.0.1" envSeparator:","`

	FacebookAPIKey   string `env:"FACEBOOK_API_KEY"`
	FacebookBaseURL  string `env:"FACEBOOK_BASE_URL" envDefault:"https://graph.facebook.com/v17.0"`
	SendGridAPIKey   string `env:"SENDGRID_API_KEY"`
	SendGridBaseURL  string `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com/v3"`
	DefaultFromEmail string `env:"DEFAULT_FROM_EMAIL" envDefault:"no-reply@geniuscrm.local"`
}

// Load reads a .env file when one exists and parses the environment.
func Load() (*Config, error) {
	loadDotEnv()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("JWT_SECRET must be set outside development")
		}
		c.JWTSecret = devJWTSecret
	}
	if c.JWTAccessTTL <= 0 || c.JWTRefreshTTL <= 0 || c.PasswordResetTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	if c.PublicBaseURL != "" {
		u, err := url.Parse(c.PublicBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("PUBLIC_BASE_URL must be an absolute http(s) URL, got %q", c.PublicBaseURL)
		}
	}
	return nil
}

// IsDevelopment reports whether the server runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

// DSN returns the MySQL data source name
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// loadDotEnv tries the working directory and its parent, so the server and
// the tests both find the same file.
func loadDotEnv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}
