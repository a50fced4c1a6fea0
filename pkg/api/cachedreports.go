package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/api/routes"
	"github.com/traxovo/traxovo/pkg/fleet"
	"github.com/traxovo/traxovo/pkg/redis_client"
)

const reportCacheExpiration = 10 * time.Minute

type reportCache interface {
	Get(ctx context.Context, key any) (string, error)
	Set(ctx context.Context, key any, object string, options ...store.Option) error
}

// CachedReports serves archived reports through a redis cache keyed by date
type CachedReports struct {
	Reports routes.ReportReader
	Cache   reportCache
}

func NewCachedReports(reports routes.ReportReader) *CachedReports {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(reportCacheExpiration))

	return &CachedReports{
		Reports: reports,
		Cache:   cache.New[string](redisStore),
	}
}

func (c *CachedReports) Get(ctx context.Context, date string) (*fleet.Report, error) {
	key := "attendance-report/" + date

	if cached, err := c.Cache.Get(ctx, key); err == nil {
		var report fleet.Report
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
		log.Warn().Str("date", date).Msg("Discarding unreadable cached report")
	}

	report, err := c.Reports.Get(ctx, date)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}

	if err := c.Cache.Set(ctx, key, string(encoded)); err != nil {
		log.Error().Err(err).Str("date", date).Msg("Failed to cache report")
	}

	return report, nil
}
