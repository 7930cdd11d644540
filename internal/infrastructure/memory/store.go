// Package memory implementa los repositorios sobre mapas en memoria (APP_STORAGE=memory y tests).
package memory

import (
	"sync"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
// Las escrituras transaccionales se acumulan fuera del mutex y se aplican juntas en el commit
// (ver TxRunner); así fn nunca corre con el mutex tomado.
type Store struct {
	mu sync.RWMutex

	products   map[string]entity.Product
	parties    map[string]entity.Party
	machines   map[string]entity.Machine
	staff      map[string]entity.Staff
	users      map[string]entity.User
	stock      map[string]entity.StockLedgerEntry
	stockVer   map[string]int64
	orders     map[string]entity.Order
	production map[string]entity.ProductionRecord
	sequences  map[string]int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   map[string]entity.Product{},
		parties:    map[string]entity.Party{},
		machines:   map[string]entity.Machine{},
		staff:      map[string]entity.Staff{},
		users:      map[string]entity.User{},
		stock:      map[string]entity.StockLedgerEntry{},
		stockVer:   map[string]int64{},
		orders:     map[string]entity.Order{},
		production: map[string]entity.ProductionRecord{},
		sequences:  map[string]int64{},
	}
}

func copyOrder(o entity.Order) entity.Order {
	lines := make([]entity.OrderLine, len(o.Lines))
	copy(lines, o.Lines)
	o.Lines = lines
	return o
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
