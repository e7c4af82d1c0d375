package marketplace

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

const (
	keyPrefix     = "petcare:marketplace:"
	categoriesKey = keyPrefix + "categories"

	kindProvider   = "provider"
	kindCategories = "categories"

	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Cache read-through кэш карточек провайдеров и справочника категорий
// Ошибки redis не ломают запрос: данные берутся из маркетплейса напрямую
// Записи хранятся в gob: суммы не округляются, попадание и промах дают одинаковые данные
type Cache struct {
	source  Source
	redis   *redis.Client
	ttl     time.Duration
	metrics Metrics
	log     Logger
}

// NewCache создает кэш поверх клиента маркетплейса
func NewCache(source Source, client *redis.Client, ttl time.Duration, metrics Metrics, log Logger) *Cache {
	return &Cache{
		source:  source,
		redis:   client,
		ttl:     ttl,
		metrics: metrics,
		log:     log,
	}
}

// GetProvider карточка провайдера из кэша или маркетплейса
func (c *Cache) GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error) {
	key := providerKey(providerID)

	var provider domain.Provider
	if c.load(ctx, kindProvider, key, &provider) {
		return &provider, nil
	}

	fresh, err := c.source.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, fresh)
	return fresh, nil
}

// ListCategories справочник категорий из кэша или маркетплейса
func (c *Cache) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if c.load(ctx, kindCategories, categoriesKey, &categories) {
		return categories, nil
	}

	fresh, err := c.source.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, categoriesKey, fresh)
	return fresh, nil
}

func (c *Cache) load(ctx context.Context, kind, key string, out interface{}) bool {
	data, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.ObserveCacheLookup(kind, resultMiss)
		return false
	}
	if err != nil {
		c.metrics.ObserveCacheLookup(kind, resultError)
		c.log.Warn("Cache: failed to read %s: %v", key, err)
		return false
	}

	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(out); err != nil {
		c.metrics.ObserveCacheLookup(kind, resultError)
		c.log.Warn("Cache: corrupted entry %s, dropping: %v", key, err)
		_ = c.redis.Del(ctx, key).Err()
		return false
	}

	c.metrics.ObserveCacheLookup(kind, resultHit)
	return true
}

func (c *Cache) store(ctx context.Context, key string, value interface{}) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		c.log.Warn("Cache: failed to encode %s: %v", key, err)
		return
	}
	if err := c.redis.Set(ctx, key, buf.Bytes(), c.ttl).Err(); err != nil {
		c.log.Warn("Cache: failed to write %s: %v", key, err)
	}
}

func providerKey(providerID int64) string {
	return fmt.Sprintf("%sprovider:%d", keyPrefix, providerID)
}
