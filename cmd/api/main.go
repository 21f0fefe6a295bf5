package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shopapi/internal/config"
	"shopapi/internal/infra/db"
	"shopapi/internal/infra/mongostore"
	infraRepo "shopapi/internal/infra/repository"
	"shopapi/internal/logging"
	"shopapi/internal/metrics"
	"shopapi/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := server.Deps{Log: log, Metrics: metrics.NewHTTPMetrics()}

	//ストア選択
	closeStore, err := openStore(ctx, cfg, log, &deps)
	if err != nil {
		log.WithError(err).Fatal("store init failed")
	}
	defer closeStore()

	e := server.New(cfg, deps)

	log.WithFields(logrus.Fields{
		"addr":  cfg.Addr(),
		"store": cfg.StoreDriver,
		"env":   cfg.GoEnv,
	}).Info("server starting")

	if err := server.Start(ctx, e, cfg.Addr(), cfg.ShutdownTimeout); err != nil {
		log.WithError(err).Error("server stopped with error")
		return
	}
	log.Info("server stopped")
}

// openStore はリポジトリとヘルスチェックを deps に詰めて、後始末用の関数を返す。
func openStore(ctx context.Context, cfg config.Config, log *logrus.Logger, deps *server.Deps) (func(), error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		gormDB, err := db.Connect(cfg.PostgresDSN(), !cfg.IsProd())
		if err != nil {
			return nil, err
		}
		if err := infraRepo.AutoMigrate(gormDB); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		deps.Products = infraRepo.NewProductGormRepository(gormDB)
		deps.Orders = infraRepo.NewOrderGormRepository(gormDB)
		deps.Health = db.NewGormHealth(gormDB)
		return func() {
			if err := db.CloseGorm(gormDB); err != nil {
				log.WithError(err).Warn("close postgres")
			}
		}, nil

	default:
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		mdb := client.Database(cfg.MongoDB)
		if err := mongostore.EnsureIndexes(ctx, mdb); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		deps.Products = mongostore.NewProductStore(mdb)
		deps.Orders = mongostore.NewOrderStore(mdb)
		deps.Health = db.NewMongoHealth(client)
		return func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("disconnect mongo")
			}
		}, nil
	}
}
