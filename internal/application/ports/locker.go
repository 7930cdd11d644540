package ports

import (
	"context"
	"sort"
)

// Locker serializa operaciones que tocan las mismas claves (ids de producto, órdenes).
// Lock bloquea todas las claves o ninguna; unlock libera todas.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (unlock func(), err error)
}

// NormalizeKeys ordena y quita duplicados y vacíos. Adquirir siempre en este orden evita
// interbloqueos entre operaciones que comparten productos.
func NormalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ProductKey clave de bloqueo del libro de existencias de un producto.
func ProductKey(productID string) string { return "stock:" + productID }

// OrderKey clave de bloqueo para pagos sobre una orden.
func OrderKey(orderID string) string { return "order:" + orderID }
