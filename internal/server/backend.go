package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/suar-net/suar-dash/internal/config"
	"github.com/suar-net/suar-dash/internal/database"
	"github.com/suar-net/suar-dash/internal/handler"
	"github.com/suar-net/suar-dash/internal/repository"
	"github.com/suar-net/suar-dash/internal/service"
)

// Backend is the proxy request API: Postgres for records, Redis for blocked
// sites.
type Backend struct {
	db  *sql.DB
	rdb *redis.Client

	ProxyRequests *handler.ProxyRequestHandler
	BlockedSites  *handler.BlockedSiteHandler
	Health        *handler.HealthHandler
	Limiter       *handler.IPRateLimiter
}

func NewBackend(cfg *config.Config, logger *log.Logger) (*Backend, error) {
	if !cfg.DB.Enabled() {
		return nil, fmt.Errorf("DB_HOST is not set")
	}

	db, err := database.ConnectDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("Succesfully connected to database")

	rdb, err := database.ConnectRedis(cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("Succesfully connected to redis")

	repo := repository.NewRepository(db, rdb)
	blocklist := service.NewBlocklistService(repo.BlockedSite())
	if err := blocklist.Refresh(context.Background()); err != nil {
		db.Close()
		rdb.Close()
		return nil, err
	}

	return &Backend{
		db:            db,
		rdb:           rdb,
		ProxyRequests: handler.NewProxyRequestHandler(service.NewProxyRequestService(repo.ProxyRequest()), logger),
		BlockedSites:  handler.NewBlockedSiteHandler(blocklist, logger),
		Health:        handler.NewHealthHandler(db, logger),
		Limiter:       handler.NewIPRateLimiter(rate.Limit(cfg.Limit.RPS), cfg.Limit.Burst),
	}, nil
}

// Mount adds the backend routes to opts.
func (b *Backend) Mount(opts *handler.RouterOptions) {
	opts.ProxyRequests = b.ProxyRequests
	opts.BlockedSites = b.BlockedSites
	opts.Health = b.Health
	opts.Limiter = b.Limiter
}

func (b *Backend) Close() {
	b.rdb.Close()
	b.db.Close()
}
