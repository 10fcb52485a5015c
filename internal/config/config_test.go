package config

import (
	"strings"
	"testing"
	"time"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func validConfig() *Config {
	return &Config{
		Store:   StoreConfig{Path: "estoque.csv"},
		Server:  ServerConfig{Port: 8501, ShutdownTimeout: time.Second, RequestTimeout: time.Second},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		App:     AppConfig{Locale: "pt-BR", Currency: "BRL"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Store.Path != "estoque.csv" {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "estoque.csv")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8501)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want %v", cfg.Server.RequestTimeout, 30*time.Second)
	}
	if cfg.App.Locale != "pt-BR" {
		t.Errorf("App.Locale = %q, want %q", cfg.App.Locale, "pt-BR")
	}
	if cfg.App.Currency != "BRL" {
		t.Errorf("App.Currency = %q, want %q", cfg.App.Currency, "BRL")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"STORE_PATH":   "/data/stock.csv",
		"SERVER_PORT":  "9090",
		"LOG_LEVEL":    "debug",
		"APP_LOCALE":   "en",
		"APP_CURRENCY": "USD",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Store.Path != "/data/stock.csv" {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "/data/stock.csv")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.App.Locale != "en" || cfg.App.Currency != "USD" {
		t.Errorf("App = %+v, want en/USD", cfg.App)
	}
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 7000)
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{"ESTOQUE_FILE": "alt.csv"}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Store.Path != "alt.csv" {
		t.Errorf("Store.Path = %q, want %q", cfg.Store.Path, "alt.csv")
	}
}

func TestLoad_Duration(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"SERVER_READ_TIMEOUT":    "45s",
		"SERVER_REQUEST_TIMEOUT": "1m30s",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Server.RequestTimeout != 90*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want %v", cfg.Server.RequestTimeout, 90*time.Second)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{"port not a number", map[string]string{"SERVER_PORT": "http"}, "SERVER_PORT"},
		{"bad duration", map[string]string{"SERVER_IDLE_TIMEOUT": "soon"}, "SERVER_IDLE_TIMEOUT"},
		{"unsupported locale", map[string]string{"APP_LOCALE": "fr"}, "APP_LOCALE"},
		{"unknown currency", map[string]string{"APP_CURRENCY": "XYZ"}, "APP_CURRENCY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(envMap(tt.env))
			if err == nil {
				t.Fatal("LoadFrom() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %s: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999
	cfg.Logging.Level = "verbose"
	cfg.Store.Path = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"SERVER_PORT", "LOG_LEVEL", "STORE_PATH"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8501, ":8501"},
		{"0.0.0.0", 8501, "0.0.0.0:8501"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	str := validConfig().String()
	for _, want := range []string{`Path: "estoque.csv"`, `Locale: "pt-BR"`, `Currency: "BRL"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %s, want %s", str, want)
		}
	}
}
