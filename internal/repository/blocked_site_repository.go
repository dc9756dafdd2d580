package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const blockedSitesKey = "proxyblockedsites"

// blockedSiteRepository keeps blocked-site patterns in a Redis set.
type blockedSiteRepository struct {
	rdb *redis.Client
}

func NewBlockedSiteRepository(rdb *redis.Client) IBlockedSiteRepository {
	return &blockedSiteRepository{rdb: rdb}
}

func (r *blockedSiteRepository) Add(ctx context.Context, pattern string) error {
	return r.rdb.SAdd(ctx, blockedSitesKey, pattern).Err()
}

func (r *blockedSiteRepository) Remove(ctx context.Context, pattern string) error {
	return r.rdb.SRem(ctx, blockedSitesKey, pattern).Err()
}

func (r *blockedSiteRepository) List(ctx context.Context) ([]string, error) {
	return r.rdb.SMembers(ctx, blockedSitesKey).Result()
}
