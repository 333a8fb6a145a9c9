package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Ingestion modes. Exactly one adapter runs per process.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

type Config struct {
	AppEnv   string
	LogLevel string

	BotToken     string
	DatabaseURL  string
	PaymentToken string

	// Allowed holds the allow-listed user ids. Empty means the gate is off.
	Allowed []int64

	Mode          string
	PublicURL     string
	WebhookSecret string
	HTTPPort      int

	CatalogPath string
	Currency    string
	DeliveryFee int64
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BotToken:     os.Getenv("BOT_TOKEN"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PaymentToken: os.Getenv("MP_ACCESS_TOKEN"),

		Allowed: parseIDs(os.Getenv("ADMINS")),

		Mode:          getEnv("INGEST_MODE", ModePolling),
		PublicURL:     strings.TrimRight(os.Getenv("PUBLIC_URL"), "/"),
		WebhookSecret: getEnv("WEBHOOK_SECRET", uuid.NewString()),
		HTTPPort:      getEnvInt("PORT", 10000),

		CatalogPath: getEnv("CATALOG_PATH", "configs/catalog.yaml"),
		Currency:    getEnv("CURRENCY", "BRL"),
		DeliveryFee: int64(getEnvInt("DELIVERY_FEE", 1000)),
	}
}

func (c Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	switch c.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.PublicURL == "" {
			return errors.New("PUBLIC_URL is required in webhook mode")
		}
	default:
		return fmt.Errorf("unknown INGEST_MODE %q", c.Mode)
	}
	if c.DeliveryFee < 0 {
		return fmt.Errorf("DELIVERY_FEE cannot be negative, got %d", c.DeliveryFee)
	}
	return nil
}

// IsAllowed reports whether the user may interact with the bot.
func (c Config) IsAllowed(userID int64) bool {
	if len(c.Allowed) == 0 {
		return true
	}
	for _, id := range c.Allowed {
		if id == userID {
			return true
		}
	}
	return false
}

func parseIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
