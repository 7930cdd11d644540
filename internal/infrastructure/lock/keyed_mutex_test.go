package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/infrastructure/lock"
)

func TestKeyedMutex_SerializaMismaClave(t *testing.T) {
	km := lock.NewKeyedMutex()
	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := km.Lock(context.Background(), "stock:p1")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
}

func TestKeyedMutex_ClavesDistintasNoSeBloquean(t *testing.T) {
	km := lock.NewKeyedMutex()
	unlockA, err := km.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	unlockB, err := km.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestKeyedMutex_RespetaCancelacion(t *testing.T) {
	km := lock.NewKeyedMutex()
	unlock, err := km.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = km.Lock(ctx, "b", "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// "b" quedó libre tras el fallo
	unlockB, err := km.Lock(context.Background(), "b")
	require.NoError(t, err)
	unlockB()
	unlock()
}

func TestKeyedMutex_UnlockIdempotente(t *testing.T) {
	km := lock.NewKeyedMutex()
	unlock, err := km.Lock(context.Background(), "a", "a")
	require.NoError(t, err)
	unlock()
	unlock()

	again, err := km.Lock(context.Background(), "a")
	require.NoError(t, err)
	again()
}
