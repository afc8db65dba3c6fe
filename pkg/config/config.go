package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	Kafka    Kafka
	Notifier Notifier
	WhatsApp WhatsApp
	Mailer   Mailer
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Enabled          bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          []string `env:"KAFKA_BROKERS" envDefault:""`
	LedgerEventTopic string   `env:"KAFKA_LEDGER_EVENT_TOPIC" envDefault:"ledger-events"`
}

type Notifier struct {
	// Channel selects the delivery transport: "whatsapp" or "email".
	Channel       string        `env:"NOTIFIER_CHANNEL" envDefault:"whatsapp"`
	DrainInterval time.Duration `env:"NOTIFIER_DRAIN_INTERVAL" envDefault:"30s"`
	BatchSize     int32         `env:"NOTIFIER_BATCH_SIZE" envDefault:"10"`
}

type WhatsApp struct {
	BaseURL       string `env:"WHATSAPP_BASE_URL" envDefault:"https://graph.facebook.com/v24.0"`
	PhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID" envDefault:""`
	AccessToken   string `env:"WHATSAPP_ACCESS_TOKEN" envDefault:""`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:""`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Fiado"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
