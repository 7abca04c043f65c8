package config

import (
	"os"
	"time"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	MercadoPago MercadoPagoConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// MercadoPagoConfig for the PIX charge API. A missing AccessToken means the
// provider is unconfigured; create/webhook flows then return diagnostic
// errors instead of crashing.
type MercadoPagoConfig struct {
	AccessToken     string // PAYMENT_PROVIDER_ACCESS_TOKEN
	NotificationURL string // NOTIFICATION_CALLBACK_URL - explicit webhook override
	DeploymentHost  string // DEPLOYMENT_HOST - synthesizes the default callback
}

// NotificationTarget returns the webhook URL handed to the provider on charge
// creation: the explicit override if set, else one derived from the
// deployment host.
func (c MercadoPagoConfig) NotificationTarget() string {
	if c.NotificationURL != "" {
		return c.NotificationURL
	}
	host := c.DeploymentHost
	if host == "" {
		host = "<deployment-host>"
	}
	return "https://" + host + "/webhook/mercadopago"
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8099"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             os.Getenv("STATUS_STORE_DSN"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     os.Getenv("PAYMENT_PROVIDER_ACCESS_TOKEN"),
			NotificationURL: os.Getenv("NOTIFICATION_CALLBACK_URL"),
			DeploymentHost:  os.Getenv("DEPLOYMENT_HOST"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
