package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	OrderStoreAddress    string
	DatabaseURI          string
	AuthSecret           string
	AdminLogin           string
	AdminPassword        string
	KafkaBrokers         []string
	KafkaTopic           string
	ServiceTypesFile     string
	LogLevel             string
	CacheRefreshInterval time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8081"
	defaultAuthSecret           = "change-me-in-production"
	defaultAdminLogin           = "admin"
	defaultKafkaTopic           = "backoffice.order-events"
	defaultLogLevel             = "info"
	defaultCacheRefreshInterval = time.Minute
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		OrderStoreAddress:    getString(lookup, "ORDER_STORE_ADDRESS", ""),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		AuthSecret:           getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		AdminLogin:           getString(lookup, "ADMIN_LOGIN", defaultAdminLogin),
		AdminPassword:        getString(lookup, "ADMIN_PASSWORD", ""),
		KafkaTopic:           getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		ServiceTypesFile:     getString(lookup, "SERVICE_TYPES_FILE", ""),
		LogLevel:             getString(lookup, "LOG_LEVEL", defaultLogLevel),
		CacheRefreshInterval: getDuration(lookup, "CACHE_REFRESH_INTERVAL", defaultCacheRefreshInterval),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	brokers := getString(lookup, "KAFKA_BROKERS", "")

	fs := flag.NewFlagSet("backoffice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		refreshIntervalStr = cfg.CacheRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.OrderStoreAddress, "s", cfg.OrderStoreAddress, "Order store base URL")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN for the audit trail (empty disables it)")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.AdminLogin, "admin-login", cfg.AdminLogin, "Operator login")
	fs.StringVar(&brokers, "kafka-brokers", brokers, "Comma separated Kafka brokers (empty disables events)")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", cfg.KafkaTopic, "Kafka topic for order events")
	fs.StringVar(&cfg.ServiceTypesFile, "service-types", cfg.ServiceTypesFile, "YAML file with the service enumeration")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level")
	fs.StringVar(&refreshIntervalStr, "refresh-interval", refreshIntervalStr, "Interval between order cache refreshes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CacheRefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	cfg.KafkaBrokers = splitBrokers(brokers)

	if cfg.CacheRefreshInterval <= 0 {
		cfg.CacheRefreshInterval = defaultCacheRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrderStoreAddress == "" {
		return nil, fmt.Errorf("order store address must be provided")
	}

	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin password must be provided")
	}

	return cfg, nil
}

func splitBrokers(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			brokers = append(brokers, trimmed)
		}
	}
	return brokers
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
