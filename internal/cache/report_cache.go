package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kemasghani/beReactNative/internal/models"
	"github.com/kemasghani/beReactNative/internal/repository"
)

const reportsKey = "reports:all"

// CachedReportRepository caches the full report listing in Redis. Any cache
// failure falls back to the real repository so Redis stays optional.
type CachedReportRepository struct {
	realRepo repository.ReportRepository
	redis    *redis.Client
	log      *slog.Logger
	ttl      time.Duration
}

func NewCachedReportRepository(realRepo repository.ReportRepository, rdb *redis.Client, log *slog.Logger) *CachedReportRepository {
	return &CachedReportRepository{
		realRepo: realRepo,
		redis:    rdb,
		log:      log,
		ttl:      5 * time.Minute,
	}
}

func (c *CachedReportRepository) Create(ctx context.Context, report *models.Report) error {
	if err := c.redis.Del(ctx, reportsKey).Err(); err != nil {
		c.log.Warn("failed to invalidate reports cache", slog.Any("err", err))
	}

	return c.realRepo.Create(ctx, report)
}

func (c *CachedReportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	data, err := c.redis.Get(ctx, reportsKey).Bytes()

	switch {
	case err == nil:
		var reports []models.Report
		if err := json.Unmarshal(data, &reports); err != nil {
			c.log.Warn("failed to unmarshal cached reports, using DB", slog.Any("err", err))
			break
		}
		return reports, nil

	case errors.Is(err, redis.Nil):

	default:
		c.log.Warn("redis error, using DB", slog.Any("err", err))
	}

	reports, err := c.realRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(reports)
	if err != nil {
		c.log.Warn("failed to marshal reports", slog.Any("err", err))
		return reports, nil
	}

	if err := c.redis.Set(ctx, reportsKey, jsonData, c.ttl).Err(); err != nil {
		c.log.Warn("failed to cache reports", slog.Any("err", err))
	}

	return reports, nil
}
