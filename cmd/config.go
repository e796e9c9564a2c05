package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"
	"time"

	"valueguard/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort        = "8080"
	defaultDBSslMode       = "disable"
	defaultPurgeSchedule   = "0 */5 * * * *"
	defaultHolderRetention = 24 * time.Hour
)

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	PurgeSchedule   string
	HolderRetention time.Duration
}

var loadDotEnv sync.Once

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables that are already
// set in the process environment win.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		_ = godotenv.Load(".env")
	})

	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup builds a Config from lookup, applying defaults for unset keys.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
		return fallback
	}

	config := Config{
		HTTPPort:        get("HTTP_PORT", defaultHTTPPort),
		DBHost:          get("DB_HOST", ""),
		DBPort:          get("DB_PORT", "5432"),
		DBUser:          get("DB_USER", ""),
		DBPassword:      get("DB_PASSWORD", ""),
		DBName:          get("DB_NAME", ""),
		DBSslMode:       get("DB_SSLMODE", defaultDBSslMode),
		PurgeSchedule:   get("PURGE_SCHEDULE", defaultPurgeSchedule),
		HolderRetention: defaultHolderRetention,
	}

	if raw, ok := lookup("HOLDER_RETENTION"); ok && raw != "" {
		retention, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("HOLDER_RETENTION", err)
		}
		config.HolderRetention = retention
	}

	return config, nil
}

// Validate reports every missing or invalid setting at once.
func (c Config) Validate() error {
	var errList []error
	if c.DBHost == "" {
		errList = append(errList, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.HolderRetention <= 0 {
		errList = append(errList, errs.NewValueIsNotPositiveError("HOLDER_RETENTION", c.HolderRetention))
	}
	return errors.Join(errList...)
}

// DSN returns the postgres connection URL.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

// HTTPAddress is the listen address of the web server.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}
