package config

import (
	"errors"
	"time"
)

// Client holds the ledgerctl settings read from the environment. Command-line
// flags override them.
type Client struct {
	// Address is the base URL of the ledger server.
	// Env: LEDGER_ADDRESS
	Address string `env:"LEDGER_ADDRESS" envDefault:"http://localhost:8000"`

	// Password is sent in the X-App-Password header.
	// Env: LEDGER_PASSWORD
	Password string `env:"LEDGER_PASSWORD"`

	// Timeout bounds every request.
	// Env: LEDGER_TIMEOUT
	Timeout time.Duration `env:"LEDGER_TIMEOUT" envDefault:"15s"`

	// LogLevel is the zerolog level of the stderr log.
	// Env: LEDGER_LOG_LEVEL
	LogLevel string `env:"LEDGER_LOG_LEVEL" envDefault:"info"`
}

// GetClientConfig reads the client settings from .env (if present) and the
// environment.
func GetClientConfig() (*Client, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := new(Client)
	if err := parseEnv(cfg); err != nil {
		return nil, errors.Join(ErrInvalidClientConfigs, err)
	}

	return cfg, nil
}
