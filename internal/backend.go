package internal

import (
	"context"
	"fmt"
	"net"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/storage"
)

// Backend holds the persistence adapter selected by config, together with the
// clients it was built on.
type Backend struct {
	Name    string
	Adapter storage.Adapter

	RedisClient *redis.Client
	DBPool      *pgxpool.Pool
	// collectors to register with the service prometheus registry
	Collectors []prometheus.Collector
}

type NewBackendParams struct {
	Config           *config.Config
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

func NewBackend(ctx context.Context, params NewBackendParams) (*Backend, error) {
	cfg := params.Config
	b := &Backend{Name: cfg.StorageBackend}

	// redis also serves the write rate limiter, so connect whenever configured
	if cfg.RedisEnabled() {
		b.RedisClient = newRedisClient(ctx, cfg, params.RedisPassword, params.TracingEnabled)
	}

	switch cfg.StorageBackend {
	case config.StorageMemory:
		b.Adapter = storage.NewMemoryStore(cfg.MemorySizeMB)
	case config.StorageDisk:
		diskStore, err := storage.NewDiskStore(cfg.DataDir)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("new disk store: %w", err)
		}
		b.Adapter = diskStore
	case config.StorageRedis:
		b.Adapter = storage.NewRedisStore(b.RedisClient, cfg.RedisKeyPrefix)
	case config.StoragePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		b.DBPool = dbPool

		psqlStore := storage.NewPsqlStore(dbPool)
		if err := psqlStore.EnsureSchema(ctx); err != nil {
			b.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		b.Adapter = psqlStore
		b.Collectors = append(b.Collectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	default:
		b.Close()
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}

	log.Infof("using [%s] storage backend", b.Name)
	return b, nil
}

func newRedisClient(ctx context.Context, cfg *config.Config, password string, tracingEnabled bool) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: password,
		DB:       cfg.RedisDB,
	})
	if tracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}
	return rdb
}

func (b *Backend) Close() error {
	var err error
	if b.RedisClient != nil {
		if cerr := b.RedisClient.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close redis client: %w", cerr))
		}
		b.RedisClient = nil
	}
	if b.DBPool != nil {
		log.Debugln("closing db pool ...")
		b.DBPool.Close() // blocking
		b.DBPool = nil
		log.Debugln("db pool closed")
	}
	return err
}
