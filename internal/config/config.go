// Package config loads the tracker's settings from environment variables,
// applying defaults and validating everything up front so a bad setting
// stops the program before any action runs.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Store   StoreConfig
	Server  ServerConfig
	Logging LoggingConfig
	App     AppConfig
}

// StoreConfig locates the stock file.
type StoreConfig struct {
	// Path is the CSV file holding the stock table (default: estoque.csv)
	Path string `env:"STORE_PATH" envAlt:"ESTOQUE_FILE" default:"estoque.csv"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8501)
	Port int `env:"SERVER_PORT" default:"8501"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds the graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// AppConfig holds presentation settings.
type AppConfig struct {
	// Locale selects the message catalog (default: pt-BR)
	Locale string `env:"APP_LOCALE" default:"pt-BR"`

	// Currency is the ISO 4217 code used to display values (default: BRL)
	Currency string `env:"APP_CURRENCY" default:"BRL"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
