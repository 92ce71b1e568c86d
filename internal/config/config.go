package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment (plus .env via godotenv in
// main). RabbitMQ and SMTP are optional: without them routing falls
// back to log-only notifications.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	RabbitMQUser string `envconfig:"RABBITMQ_USER" default:"guest"`
	RabbitMQPass string `envconfig:"RABBITMQ_PASS" default:"guest"`
	RabbitMQHost string `envconfig:"RABBITMQ_HOST"`
	RabbitMQPort string `envconfig:"RABBITMQ_PORT" default:"5672"`

	SMTPHost string `envconfig:"SMTP_HOST"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser string `envconfig:"SMTP_USER"`
	SMTPPass string `envconfig:"SMTP_PASS"`
	MailFrom string `envconfig:"MAIL_FROM" default:"no-reply@dealflow.local"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,*"`

	IngestRateLimit int `envconfig:"INGEST_RATE_LIMIT" default:"60"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("dealflow", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) HasRabbitMQ() bool {
	return c.RabbitMQHost != ""
}

func (c *Config) HasSMTP() bool {
	return c.SMTPHost != ""
}
