package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "REMOTE_DRIVER", "LIVE_POLL_INTERVAL", "PROBE_INTERVAL", "LOCAL_CACHE_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.RemoteDriver != RemoteDriverDynamoDB {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LivePollInterval != 15*time.Second || cfg.ProbeInterval != 5*time.Minute {
		t.Fatalf("unexpected intervals: %+v", cfg)
	}
	if cfg.LocalCacheKey != "consolidador:v1" {
		t.Fatalf("unexpected cache key %q", cfg.LocalCacheKey)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REMOTE_DRIVER", " Memory ")
	t.Setenv("LIVE_POLL_INTERVAL", "0s")
	t.Setenv("ORDERS_TABLE", "orders-dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.HTTPPort != 9090 || cfg.RemoteDriver != RemoteDriverMemory {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.LivePollInterval != 0 || cfg.OrdersTable != "orders-dev" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("REMOTE_DRIVER", "firestore")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
