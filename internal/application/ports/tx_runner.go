package ports

import (
	"context"

	"github.com/jhoicas/molino-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de almacenamiento.
type TxRepos struct {
	Stock      repository.StockRepository
	Orders     repository.OrderRepository
	Production repository.ProductionRepository
	Numbers    repository.NumberGenerator
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
// Ningún cambio hecho a través de repos sobrevive a un fn fallido.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
