package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL,required"`

	AccessTokenSecret  string `env:"ACCESS_TOKEN_SECRET,required"`
	RefreshTokenSecret string `env:"REFRESH_TOKEN_SECRET,required"`
	// Access must stay well below refresh; defaults are 1 day / 7 days.
	AccessExpiryMin  int `env:"ACCESS_TOKEN_EXPIRY" envDefault:"1440"`
	RefreshExpiryMin int `env:"REFRESH_TOKEN_EXPIRY" envDefault:"10080"`

	// OTPWindowSec is the challenge validity window (2 minutes).
	OTPWindowSec int `env:"OTP_TTL" envDefault:"120"`
	// OTPStore selects the backing store: postgres, redis or memory.
	OTPStore string `env:"OTP_STORE" envDefault:"postgres"`
	RedisURL string `env:"REDIS_URL"`

	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	EmailFromAddress     string `env:"EMAIL_FROM_ADDRESS"`
	EmailFromName        string `env:"EMAIL_FROM_NAME" envDefault:"ID Snap Portal"`

	InteraktAPIKey  string `env:"INTERAKT_API_KEY"`
	InteraktBaseURL string `env:"INTERAKT_BASE_URL"`
}

// Load reads configuration from the environment, with .env support for
// local development. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
