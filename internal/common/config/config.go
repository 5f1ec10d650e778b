package config

import (
	"slices"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug   bool   `env:"DEBUG" envDefault:"false"`
	Version string `env:"APP_VERSION" envDefault:"1.0.0"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Admin struct {
		User string `env:"ADMIN_USER"`
		Pass string `env:"ADMIN_PASS"`
		// Optional allow-list of Telegram IDs that may receive the admin OTP.
		TelegramIDs []string `env:"ADMIN_TELEGRAM_IDS" envSeparator:","`
	}

	Telegram struct {
		// Absence of the token disables OTP dispatch; it is reported, not fatal.
		BotToken    string `env:"BOT_TOKEN"`
		InitDataTTL int    `env:"INIT_DATA_TTL" envDefault:"86400"`
		// Linked from the companion bot's /id reply when set.
		SiteURL     string `env:"SITE_URL"`
	}

	Throttle struct {
		OTPPerMinute int `env:"OTP_REQUESTS_PER_MINUTE" envDefault:"5"`
		OTPBurst     int `env:"OTP_BURST" envDefault:"3"`
	}
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// .env is optional; production sets variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) HasBotToken() bool {
	return c.Telegram.BotToken != ""
}

func (c *Config) HasAdminCredentials() bool {
	return c.Admin.User != "" && c.Admin.Pass != ""
}

// AdminIDAllowed reports whether id may receive an admin code. An empty
// allow-list admits every id.
func (c *Config) AdminIDAllowed(id string) bool {
	if len(c.Admin.TelegramIDs) == 0 {
		return true
	}
	return slices.Contains(c.Admin.TelegramIDs, id)
}

func (c *Config) InitDataMaxAge() time.Duration {
	return time.Duration(c.Telegram.InitDataTTL) * time.Second
}
