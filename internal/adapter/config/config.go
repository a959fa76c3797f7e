package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
	VNPay    *VNPay
	Client   *Client
	Events   *Events
	Auth     *Auth
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// VNPay holds the merchant settings of the payment gateway.
type VNPay struct {
	TmnCode    string `env:"VNPAY_TMN_CODE"`
	HashSecret string `env:"VNPAY_HASH_SECRET"`
	URL        string `env:"VNPAY_URL" envDefault:"https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"`
	ReturnURL  string `env:"VNPAY_RETURN_URL"`
	Timezone   string `env:"VNPAY_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
}

// Validate reports missing gateway settings.
func (v *VNPay) Validate() error {
	missing := make([]string, 0)
	if v.TmnCode == "" {
		missing = append(missing, "VNPAY_TMN_CODE")
	}
	if v.HashSecret == "" {
		missing = append(missing, "VNPAY_HASH_SECRET")
	}
	if v.URL == "" {
		missing = append(missing, "VNPAY_URL")
	}
	if v.ReturnURL == "" {
		missing = append(missing, "VNPAY_RETURN_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrMissingConfig, missing)
	}
	return nil
}

type Client struct {
	Host string `env:"CLIENT_HOST"`
}

type Auth struct {
	// SymmetricKey is a hex encoded paseto v4 local key shared with the token issuer.
	SymmetricKey string        `env:"AUTH_SYMMETRIC_KEY"`
	TokenTTL     time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"24h"`
}

type Events struct {
	NatsURL string `env:"NATS_URL"`
	Subject string `env:"NATS_SUBJECT" envDefault:"bookstore.payments"`
	Workers int    `env:"NATS_WORKERS" envDefault:"2"`
}

// loadDotEnv reads an optional .env file into the process environment.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env: %w", err)
	}
	return nil
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var client Client
	var events Events
	var auth Auth

	err := loadDotEnv()
	if err != nil {
		return nil, err
	}

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&client.Host, "c", `http://localhost:3000`, "Client host for checkout redirects")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&client)
	if err != nil {
		return nil, fmt.Errorf("error parsing client config: %w", err)
	}
	err = env.Parse(&events)
	if err != nil {
		return nil, fmt.Errorf("error parsing events config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	vnpay, err := parseVNPay()
	if err != nil {
		return nil, err
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
		VNPay:    vnpay,
		Client:   &client,
		Events:   &events,
		Auth:     &auth,
	}

	return &config, nil
}

// NewVNPayConfig loads only the gateway section from the environment.
func NewVNPayConfig() (*VNPay, error) {
	err := loadDotEnv()
	if err != nil {
		return nil, err
	}
	return parseVNPay()
}

func parseVNPay() (*VNPay, error) {
	var vnpay VNPay
	err := env.Parse(&vnpay)
	if err != nil {
		return nil, fmt.Errorf("error parsing vnpay config: %w", err)
	}
	err = vnpay.Validate()
	if err != nil {
		return nil, err
	}
	return &vnpay, nil
}
