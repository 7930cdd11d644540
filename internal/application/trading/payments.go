package trading

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// RecordPayment suma amount a lo pagado de la orden y recalcula su estado de pago.
// Los sobrepagos se aceptan; el estado queda en PAID.
func (o *Orchestrator) RecordPayment(ctx context.Context, orderID string, amount decimal.Decimal) (*entity.Order, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: el pago debe ser mayor que cero", domain.ErrInvalidInput)
	}
	unlock, err := o.locker.Lock(ctx, ports.OrderKey(orderID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var order *entity.Order
	err = o.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		current, err := repos.Orders.GetByID(ctx, o.flow.OrderKind, orderID)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
		}
		current.SetPaidAmount(current.PaidAmount.Add(amount))
		current.UpdatedAt = o.now()
		if err := repos.Orders.UpdatePayment(ctx, current); err != nil {
			return err
		}
		order = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.log.Info().
		Str("number", order.Number).
		Str("amount", amount.String()).
		Str("payment_status", string(order.PaymentStatus)).
		Msg("pago registrado")
	return order, nil
}
