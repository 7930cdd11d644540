package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/pkg/config"
	"github.com/jhoicas/molino-api/pkg/logger"
)

var _ ports.Locker = (*RedisLocker)(nil)

const keyPrefix = "molino:lock:"

// RedisLocker bloqueo distribuido para varias réplicas de la API sobre la misma base de datos.
// Cada clave es un lock de redislock con TTL; se reintenta con backoff hasta que ctx venza.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	retry  time.Duration
	log    *logger.Logger
}

// NewRedisClient abre el cliente y verifica la conexión.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 50,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// NewRedisLocker construye el locker. ttl <= 0 usa 30s.
func NewRedisLocker(rdb redislock.RedisClient, ttl time.Duration, log *logger.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &RedisLocker{
		client: redislock.New(rdb),
		ttl:    ttl,
		retry:  25 * time.Millisecond,
		log:    log.Component("redis_lock"),
	}
}

// Lock obtiene cada clave en orden. Si alguna no se obtiene antes de que venza ctx (o el TTL,
// si ctx no tiene deadline) libera las anteriores y devuelve domain.ErrConflict.
func (l *RedisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = ports.NormalizeKeys(keys)
	obtainCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		obtainCtx, cancel = context.WithTimeout(ctx, l.ttl)
		defer cancel()
	}

	held := make([]*redislock.Lock, 0, len(keys))
	releaseAll := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				l.log.Warn().Err(err).Str("key", held[i].Key()).Msg("no se pudo liberar el lock")
			}
		}
	}

	for _, key := range keys {
		lk, err := l.client.Obtain(obtainCtx, keyPrefix+key, l.ttl, &redislock.Options{
			RetryStrategy: redislock.LinearBackoff(l.retry),
		})
		if err != nil {
			releaseAll()
			if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: recurso ocupado (%s)", domain.ErrConflict, key)
			}
			return nil, fmt.Errorf("obtain lock %s: %w", key, err)
		}
		held = append(held, lk)
	}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		releaseAll()
	}, nil
}
