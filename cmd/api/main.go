package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"consolidador/internal/adapter/http/routes"
	"consolidador/internal/adapter/persistence/cache"
	"consolidador/internal/adapter/persistence/repository"
	"consolidador/internal/infrastructure/config"
	"consolidador/internal/infrastructure/database"
	"consolidador/internal/usecase"
	"consolidador/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Consolidador API
// @version         1.0
// @description     Order consolidation service: orders, batches and suppliers kept in a local cache and synced to DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// run serves until ctx is done. Background work is stopped and joined before
// the local cache is closed.
func run(ctx context.Context, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	remote, err := newRemoteStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("configure remote store: %w", err)
	}

	local, err := cache.OpenBadgerLocalCache(cfg.LocalCacheDir, cfg.LocalCacheKey)
	if err != nil {
		return fmt.Errorf("open local cache: %w", err)
	}
	defer func() {
		if err := local.Close(); err != nil {
			log.Printf("[cache] close failed err=%v", err)
		}
	}()

	uc := usecase.NewConsolidationUseCase(remote, local, usecase.WithLiveInterval(cfg.LivePollInterval))
	if err := uc.Load(ctx); err != nil {
		return fmt.Errorf("load local state: %w", err)
	}
	if cfg.LivePollInterval > 0 {
		uc.StartOrdersRealtime(ctx)
		defer uc.StopOrdersRealtime()
	}

	recoveryDone := make(chan struct{})
	go func() {
		defer close(recoveryDone)
		uc.RunRecoveryLoop(ctx, cfg.ProbeInterval)
	}()
	defer func() {
		cancel()
		<-recoveryDone
	}()

	router := routes.NewRouter(uc, usecase.NewOrderImportUseCase(uc))
	return routes.Run(ctx, cfg.HTTPPort, router)
}

// newRemoteStore returns nil for the "none" driver, which keeps the service
// local-only.
func newRemoteStore(ctx context.Context, cfg config.Config) (interfaces.IRemoteStore, error) {
	switch cfg.RemoteDriver {
	case config.RemoteDriverMemory:
		log.Printf("[remote] using in-memory store")
		return repository.NewMemoryRemoteStore(), nil
	case config.RemoteDriverNone:
		log.Printf("[remote] disabled, running local-only")
		return nil, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[remote] using dynamodb region=%s orders_table=%s batches_table=%s suppliers_table=%s",
		cfg.AWSRegion, cfg.OrdersTable, cfg.BatchesTable, cfg.SuppliersTable)
	return repository.NewDynamoRemoteStore(ddb, repository.TableNames{
		Orders:    cfg.OrdersTable,
		Batches:   cfg.BatchesTable,
		Suppliers: cfg.SuppliersTable,
	}), nil
}
