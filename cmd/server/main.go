package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/api"
	"github.com/staffdir/user-directory/internal/core/ports"
	"github.com/staffdir/user-directory/internal/core/service"
	"github.com/staffdir/user-directory/internal/infrastructure/audit"
	"github.com/staffdir/user-directory/internal/infrastructure/config"
	"github.com/staffdir/user-directory/internal/infrastructure/queue"
	filestore "github.com/staffdir/user-directory/internal/infrastructure/store/file"
	mongostore "github.com/staffdir/user-directory/internal/infrastructure/store/mongo"
	redisstore "github.com/staffdir/user-directory/internal/infrastructure/store/redis"
	"github.com/staffdir/user-directory/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	codec, err := service.NewTokenCodec(cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec setup failed")
	}

	store, auditSink, cleanup := buildStore(ctx, cfg, log)
	defer cleanup()

	var rdb *goredis.Client
	if cfg.Redis.Enabled {
		rdb, err = redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		store = redisstore.NewCachedStore(store, rdb, cfg.Redis.CacheTTL, log)
	}

	dispatcher := queue.NewDispatcher(0, auditSink, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(store, rdb, codec, dispatcher, prometheus.DefaultRegisterer, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// buildStore selects the credential store backend from configuration and
// pairs it with the matching audit sink: Mongo deployments keep the audit
// trail in a collection, file deployments write it to the log.
func buildStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.UserStore, ports.AuditSink, func()) {
	switch cfg.Store.Driver {
	case "mongo":
		db, closeDB, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		return mongostore.NewUserStore(db), audit.NewMongoSink(db), closeDB
	case "file":
		return filestore.NewStore(cfg.Store.DataFile), audit.NewLogSink(log), func() {}
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("unknown user store driver")
		return nil, nil, nil
	}
}
