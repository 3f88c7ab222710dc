package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lukasringel/economy-service/config"
	"github.com/lukasringel/economy-service/internal/api"
	"github.com/lukasringel/economy-service/internal/database"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/store"
	"github.com/lukasringel/economy-service/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Log.Fatal("failed to connect database", zap.Error(err))
	}

	st := store.NewGormStore(db)
	if err := st.Migrate(); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	clock := store.SystemClock{}
	registry := services.NewEconomyRegistry(st)
	transactions := services.NewTransactionLog(st, clock)
	ledger := services.NewAccountLedger(st, registry, transactions)
	users := services.NewUserCache(st, registry, clock, cfg.UserCacheTTL)

	// Bootstrap: populate the economy set and start from an empty user cache.
	if err := registry.Refresh(); err != nil {
		logger.Log.Fatal("initial economy refresh failed", zap.Error(err))
	}
	users.InvalidateAll()

	scheduler := services.NewRefreshScheduler(registry, cfg.RefreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := api.NewRouter(cfg, api.Services{
		Registry:     registry,
		Ledger:       ledger,
		Users:        users,
		Transactions: transactions,
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		logger.Log.Info("listening", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown failed", zap.Error(err))
	}
}
