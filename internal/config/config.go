package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the API process needs. All values come from
// env (or an env-file loaded by the process runner); no business logic
// should depend on raw environment variables.
type Config struct {
	App      AppConfig
	Redis    RedisConfig
	WhatsApp WhatsAppConfig

	// DatabaseURL is either a postgres:// DSN or a sqlite file path.
	DatabaseURL string

	// SessionTTL is how long an idle conversation stays alive.
	SessionTTL time.Duration
}

type AppConfig struct {
	Env  string
	Port int
}

type RedisConfig struct {
	Addr string
}

// WhatsAppConfig points at the messaging provider's REST API. Per-shop
// instance ids and tokens live on the shop records, not here.
type WhatsAppConfig struct {
	BaseURL string
}

func Load() (Config, error) {
	c := Config{}

	c.App.Env = strings.TrimSpace(os.Getenv("APP_ENV"))
	c.App.Port = 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.New("APP_PORT must be an integer")
		}
		c.App.Port = n
	}

	c.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if c.DatabaseURL == "" {
		return c, errors.New("DATABASE_URL is empty")
	}

	c.Redis.Addr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	c.WhatsApp.BaseURL = strings.TrimSpace(os.Getenv("WHATSAPP_API_URL"))
	if c.WhatsApp.BaseURL == "" {
		return c, errors.New("WHATSAPP_API_URL is empty")
	}

	c.SessionTTL = 24 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return c, errors.New("SESSION_TTL must be a duration (e.g. 24h)")
		}
		c.SessionTTL = d
	}

	return c, nil
}
