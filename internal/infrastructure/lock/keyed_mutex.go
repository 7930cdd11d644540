// Package lock implementa ports.Locker en proceso y sobre Redis.
package lock

import (
	"context"
	"sync"

	"github.com/jhoicas/molino-api/internal/application/ports"
)

var _ ports.Locker = (*KeyedMutex)(nil)

// KeyedMutex un mutex por clave, creado bajo demanda y liberado cuando nadie lo espera.
// Sirve para una sola réplica de la API.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// NewKeyedMutex construye el locker en proceso.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: map[string]*keyLock{}}
}

// Lock toma todas las claves en orden; si ctx se cancela libera las ya tomadas.
func (k *KeyedMutex) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = ports.NormalizeKeys(keys)
	held := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := k.acquire(ctx, key); err != nil {
			for i := len(held) - 1; i >= 0; i-- {
				k.release(held[i], true)
			}
			return nil, err
		}
		held = append(held, key)
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(held) - 1; i >= 0; i-- {
				k.release(held[i], true)
			}
		})
	}, nil
}

func (k *KeyedMutex) acquire(ctx context.Context, key string) error {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.release(key, false)
		return ctx.Err()
	}
}

func (k *KeyedMutex) release(key string, held bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	l := k.locks[key]
	if held {
		<-l.ch
	}
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
}
