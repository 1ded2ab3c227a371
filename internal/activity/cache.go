package activity

import (
	"context"
	"encoding/json"
	"time"
)

const (
	feedCacheKey = "activities:feed"
	feedCacheTTL = 30 * time.Second
)

// The feed cache is best-effort: every miss or Redis failure falls through to
// the database, so a nil or unreachable client only costs the caching.

func (s *Service) cachedFeed(ctx context.Context) ([]Response, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, feedCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var feed []Response
	if err := json.Unmarshal(payload, &feed); err != nil {
		return nil, false
	}
	return feed, true
}

func (s *Service) storeFeed(ctx context.Context, feed []Response) {
	if s.cache == nil || feed == nil {
		return
	}
	payload, err := json.Marshal(feed)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, feedCacheKey, payload, feedCacheTTL).Err()
}

func (s *Service) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, feedCacheKey).Err()
}
