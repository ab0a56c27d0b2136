package app

import (
	"context"
	"os"
	"strings"
	"time"

	"performx/internal/auth"
	"performx/internal/events"
	"performx/internal/messaging/kafka"
	"performx/internal/shared/connection"
	"performx/internal/store/local"
	"performx/internal/store/remote"
	"performx/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const probeInterval = 15 * time.Second

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects the infrastructure, hydrates the mirror, seeds on first
// run and mounts every route. The returned cleanup stops the sync loop and
// the event publisher; callers run it after the HTTP listener drains.
func BuildApp(router *gin.Engine) (func(), error) {
	logger := zap.L()

	pg, err := connection.ConnectPostgresWithRetry(
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "performx"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
		5,
	)
	primaryUp := err == nil
	if err != nil {
		if pg == nil {
			return nil, err
		}
		// Degraded start: the syncer serves mirror reads until the probe
		// brings the primary back.
		logger.Warn("primary store unreachable at startup", zap.Error(err))
	}

	sqliteDB, err := connection.OpenSQLiteMirror(envOr("MIRROR_PATH", "performx-mirror.db"))
	if err != nil {
		return nil, err
	}

	primary := remote.New(pg)
	if primaryUp {
		if err := primary.Migrate(); err != nil {
			return nil, err
		}
		if err := pg.AutoMigrate(&auth.Credential{}); err != nil {
			return nil, err
		}
	}

	mirror := local.New(sqliteDB)
	if err := mirror.Migrate(); err != nil {
		return nil, err
	}

	// Hydrate runs even after a failed connect: its ping flips the syncer
	// into degraded mode so the first request never races the probe.
	sync := syncer.New(primary, mirror, logger)
	if err := sync.Hydrate(context.Background()); err != nil {
		logger.Warn("mirror hydration failed", zap.Error(err))
	}
	sync.StartProbe(probeInterval)

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			logger.Warn("redis unreachable, analytics cache disabled", zap.Error(err))
			redisClient = nil
		}
	}

	var publisher events.Publisher
	var kafkaPub *kafka.Publisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kafkaPub = kafka.NewPublisher(strings.Split(brokers, ","), events.DirectoryTopic, logger)
		publisher = kafkaPub
	}

	deps, err := registerModules(router, registryDeps{
		sync:      sync,
		pg:        pg,
		redis:     redisClient,
		publisher: publisher,
		logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	if primaryUp {
		if err := seedIfEmpty(context.Background(), deps.employeeRepo, deps.configRepo, deps.authRepo, logger); err != nil {
			logger.Warn("seeding failed", zap.Error(err))
		}
	}

	cleanup := func() {
		sync.Close()
		if kafkaPub != nil {
			kafkaPub.Close()
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}
	return cleanup, nil
}
