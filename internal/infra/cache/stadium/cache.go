package stadium

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StadiumRental/internal/domain"
)

const keyPrefix = "stadium_rental:stadium"

// CachedRepository read-through кэш стадионов в Redis поверх репозитория
// Ошибки Redis не прерывают запрос: данные читаются из репозитория
type CachedRepository struct {
	next   Repository
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger Logger
}

// NewCachedRepository создает кэширующий репозиторий
func NewCachedRepository(next Repository, rdb redis.UniversalClient, ttl time.Duration, logger Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// GetByID получает стадион из кэша, при промахе - из репозитория с записью в кэш
// Отсутствующие стадионы не кэшируются
func (c *CachedRepository) GetByID(ctx context.Context, id int64) (*domain.Stadium, error) {
	key := cacheKey(id)

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var s domain.Stadium
		jsonErr := json.Unmarshal(data, &s)
		if jsonErr == nil {
			return &s, nil
		}
		c.logger.Warn("stadium cache: corrupted entry %s: %v", key, jsonErr)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("stadium cache: get %s: %v", key, err)
	}

	s, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(s); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("stadium cache: set %s: %v", key, err)
		}
	}

	return s, nil
}

// List не кэшируется: фильтры дают слишком много ключей
func (c *CachedRepository) List(ctx context.Context, filter domain.StadiumFilter) ([]*domain.Stadium, error) {
	return c.next.List(ctx, filter)
}

// Invalidate удаляет стадион из кэша
func (c *CachedRepository) Invalidate(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, cacheKey(id)).Err()
}

func cacheKey(id int64) string {
	return fmt.Sprintf("%s:%d", keyPrefix, id)
}
