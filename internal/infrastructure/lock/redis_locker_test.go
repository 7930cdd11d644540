package lock_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/infrastructure/lock"
	"github.com/jhoicas/molino-api/pkg/logger"
)

func newRedisLocker(t *testing.T) (*lock.RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return lock.NewRedisLocker(rdb, 5*time.Second, logger.Nop()), mr
}

func TestRedisLocker_ObtieneYLibera(t *testing.T) {
	l, mr := newRedisLocker(t)
	unlock, err := l.Lock(context.Background(), "stock:b", "stock:a")
	require.NoError(t, err)
	assert.True(t, mr.Exists("molino:lock:stock:a"))
	assert.True(t, mr.Exists("molino:lock:stock:b"))

	unlock()
	assert.False(t, mr.Exists("molino:lock:stock:a"))
	assert.False(t, mr.Exists("molino:lock:stock:b"))
}

func TestRedisLocker_ClaveOcupadaDevuelveConflicto(t *testing.T) {
	l, mr := newRedisLocker(t)
	unlock, err := l.Lock(context.Background(), "stock:a")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "stock:z", "stock:a")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.False(t, mr.Exists("molino:lock:stock:z"), "las claves tomadas se liberan si falla una")
}

func TestRedisLocker_EsperaLiberacion(t *testing.T) {
	l, _ := newRedisLocker(t)
	unlock, err := l.Lock(context.Background(), "order:1")
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	unlock2, err := l.Lock(ctx, "order:1")
	require.NoError(t, err)
	unlock2()
}
