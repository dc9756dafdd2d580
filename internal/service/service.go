package service

import (
	"context"

	"github.com/suar-net/suar-dash/internal/model"
)

type IProxyRequestService interface {
	List(ctx context.Context) ([]model.ProxyRequest, error)
	Get(ctx context.Context, id string) (*model.ProxyRequest, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type IBlocklistService interface {
	Refresh(ctx context.Context) error
	Patterns() []string
	IsBlocked(site string) bool
	Block(ctx context.Context, pattern string) error
	Unblock(ctx context.Context, pattern string) error
}
