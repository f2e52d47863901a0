package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	RemoteDriverDynamoDB = "dynamodb"
	RemoteDriverMemory   = "memory"
	RemoteDriverNone     = "none"
)

// Config is read from the environment (and an optional .env, autoloaded by
// the binary).
type Config struct {
	HTTPPort int

	RemoteDriver       string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	OrdersTable        string
	BatchesTable       string
	SuppliersTable     string

	LocalCacheDir string
	LocalCacheKey string

	LivePollInterval time.Duration
	ProbeInterval    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("REMOTE_DRIVER", RemoteDriverDynamoDB)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("ORDERS_TABLE", "orders")
	v.SetDefault("BATCHES_TABLE", "batches")
	v.SetDefault("SUPPLIERS_TABLE", "suppliers")
	v.SetDefault("LOCAL_CACHE_DIR", "./data/cache")
	v.SetDefault("LOCAL_CACHE_KEY", "consolidador:v1")
	v.SetDefault("LIVE_POLL_INTERVAL", "15s")
	v.SetDefault("PROBE_INTERVAL", "5m")
}

func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort:           v.GetInt("HTTP_PORT"),
		RemoteDriver:       strings.ToLower(strings.TrimSpace(v.GetString("REMOTE_DRIVER"))),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:   v.GetString("DYNAMODB_ENDPOINT"),
		OrdersTable:        v.GetString("ORDERS_TABLE"),
		BatchesTable:       v.GetString("BATCHES_TABLE"),
		SuppliersTable:     v.GetString("SUPPLIERS_TABLE"),
		LocalCacheDir:      v.GetString("LOCAL_CACHE_DIR"),
		LocalCacheKey:      v.GetString("LOCAL_CACHE_KEY"),
		LivePollInterval:   v.GetDuration("LIVE_POLL_INTERVAL"),
		ProbeInterval:      v.GetDuration("PROBE_INTERVAL"),
	}

	switch cfg.RemoteDriver {
	case RemoteDriverDynamoDB, RemoteDriverMemory, RemoteDriverNone:
	default:
		return Config{}, fmt.Errorf("invalid REMOTE_DRIVER %q (want dynamodb, memory or none)", cfg.RemoteDriver)
	}
	if cfg.HTTPPort <= 0 {
		return Config{}, fmt.Errorf("invalid HTTP_PORT %d", cfg.HTTPPort)
	}
	return cfg, nil
}
