package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/suar-net/suar-dash/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type IProxyRequestRepository interface {
	GetAll(ctx context.Context) ([]model.ProxyRequest, error)
	GetByID(ctx context.Context, id string) (*model.ProxyRequest, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type IBlockedSiteRepository interface {
	Add(ctx context.Context, pattern string) error
	Remove(ctx context.Context, pattern string) error
	List(ctx context.Context) ([]string, error)
}

type IRepository interface {
	ProxyRequest() IProxyRequestRepository
	BlockedSite() IBlockedSiteRepository
}

type Repository struct {
	proxyRequest IProxyRequestRepository
	blockedSite  IBlockedSiteRepository
}

func NewRepository(db *sql.DB, rdb *redis.Client) *Repository {
	return &Repository{
		proxyRequest: NewProxyRequestRepository(db),
		blockedSite:  NewBlockedSiteRepository(rdb),
	}
}

func (r *Repository) ProxyRequest() IProxyRequestRepository {
	return r.proxyRequest
}

func (r *Repository) BlockedSite() IBlockedSiteRepository {
	return r.blockedSite
}
