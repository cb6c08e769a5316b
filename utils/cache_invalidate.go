package utils

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator purges cached event responses after a write so
// reads never serve a stale participant count for longer than the
// in-flight request.
type CacheInvalidator struct{ rdb *redis.Client }

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator { return &CacheInvalidator{rdb} }

// PurgeEventsList drops every cached list response.
func (ci *CacheInvalidator) PurgeEventsList(ctx context.Context) {
	iter := ci.rdb.Scan(ctx, 0, "cache:events:list:*", 0).Iterator()
	for iter.Next(ctx) {
		_ = ci.rdb.Del(ctx, iter.Val()).Err()
	}
}

// PurgeEventItem drops the cached single-event response. Item keys
// embed the raw id, so this is an exact delete rather than a scan.
func (ci *CacheInvalidator) PurgeEventItem(ctx context.Context, id int64) {
	_ = ci.rdb.Del(ctx, "cache:events:item:"+strconv.FormatInt(id, 10)).Err()
}
