package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// SiteURL is the public origin of the marketing site. Verification links
	// and post-verification redirects are built against it.
	SiteURL string `env:"SITE_URL" envDefault:"http://localhost:3000"`

	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"welcome@tikaramspirits.com"`

	// AMQPURL is optional. When set, verification emails are dispatched
	// through RabbitMQ; when empty they are sent directly in-process.
	AMQPURL string `env:"AMQP_URL"`

	GeoAPIURL string `env:"GEO_API_URL" envDefault:"https://ipapi.co/json/"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,*"`
}

// Load reads .env when present, then parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
