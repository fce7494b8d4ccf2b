package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadRequiresStoreAddressAndPassword(t *testing.T) {
	if _, err := load(nil, func(string) (string, bool) { return "", false }); err == nil {
		t.Fatal("expected error when required envs are missing")
	}

	env := map[string]string{"ORDER_STORE_ADDRESS": "http://store.local"}
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error when admin password is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	env := map[string]string{
		"ORDER_STORE_ADDRESS": "http://store.local",
		"ADMIN_PASSWORD":      "secret",
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.AdminLogin != defaultAdminLogin {
		t.Errorf("expected default admin login %q, got %q", defaultAdminLogin, cfg.AdminLogin)
	}
	if cfg.KafkaTopic != defaultKafkaTopic {
		t.Errorf("expected default kafka topic %q, got %q", defaultKafkaTopic, cfg.KafkaTopic)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected no brokers by default, got %v", cfg.KafkaBrokers)
	}
	if cfg.DatabaseURI != "" {
		t.Errorf("expected audit trail disabled by default, got %q", cfg.DatabaseURI)
	}
	if cfg.CacheRefreshInterval != defaultCacheRefreshInterval {
		t.Errorf("expected default refresh interval %v, got %v", defaultCacheRefreshInterval, cfg.CacheRefreshInterval)
	}
}

func TestLoadWithFlagOverrides(t *testing.T) {
	env := map[string]string{
		"ORDER_STORE_ADDRESS": "http://store.local",
		"ADMIN_PASSWORD":      "secret",
		"KAFKA_BROKERS":       "broker-1:9092, broker-2:9092",
	}

	args := []string{
		"-a", ":9090",
		"-s", "http://override",
		"-d", "postgres://audit",
		"--refresh-interval", "30s",
		"--kafka-topic", "orders.events",
	}

	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.OrderStoreAddress != "http://override" {
		t.Errorf("unexpected store address %q", cfg.OrderStoreAddress)
	}
	if cfg.DatabaseURI != "postgres://audit" {
		t.Errorf("unexpected database uri %q", cfg.DatabaseURI)
	}
	if cfg.CacheRefreshInterval != 30*time.Second {
		t.Errorf("unexpected refresh interval %v", cfg.CacheRefreshInterval)
	}
	if cfg.KafkaTopic != "orders.events" {
		t.Errorf("unexpected kafka topic %q", cfg.KafkaTopic)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[0] != "broker-1:9092" || cfg.KafkaBrokers[1] != "broker-2:9092" {
		t.Errorf("unexpected brokers %v", cfg.KafkaBrokers)
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	env := map[string]string{
		"ORDER_STORE_ADDRESS": "http://store.local",
		"ADMIN_PASSWORD":      "secret",
	}

	if _, err := load([]string{"--refresh-interval", "nope"}, lookupFrom(env)); err == nil {
		t.Fatal("expected error for invalid refresh interval")
	}
	if _, err := load([]string{"--shutdown-timeout", "nope"}, lookupFrom(env)); err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
}

func TestLoadReadsSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := map[string]string{
		"ORDER_STORE_ADDRESS": "http://store.local",
		"ADMIN_PASSWORD":      "secret",
		"AUTH_SECRET_FILE":    path,
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.AuthSecret != "file-secret" {
		t.Errorf("expected secret from file, got %q", cfg.AuthSecret)
	}

	env["AUTH_SECRET_FILE"] = filepath.Join(t.TempDir(), "missing")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for missing secret file")
	}
}

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
