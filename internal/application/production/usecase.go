// Package production registra corridas de molienda: consume materia prima y genera producto terminado.
package production

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/milling"
	"github.com/jhoicas/molino-api/internal/domain/repository"
	"github.com/jhoicas/molino-api/pkg/logger"
)

const numberPrefix = "PR"

// Input datos de una corrida.
type Input struct {
	Date              time.Time // cero = ahora
	RawProductID      string
	FinishedProductID string
	InputQuantity     decimal.Decimal
	OutputQuantity    decimal.Decimal
	WasteQuantity     decimal.Decimal
	MachineID         string
	OperatorID        string
	Notes             string
	CreatedBy         string
}

// Deps dependencias del caso de uso.
type Deps struct {
	Products            repository.ProductRepository
	Machines            repository.MachineRepository
	Staff               repository.StaffRepository
	Records             repository.ProductionRepository
	Stock               repository.StockRepository
	Locker              ports.Locker
	TxRunner            ports.TxRunner
	Log                 *logger.Logger
	EfficiencyThreshold decimal.Decimal // cero = milling.DefaultEfficiencyThreshold
}

// UseCase valida y confirma corridas de producción.
type UseCase struct {
	products  repository.ProductRepository
	machines  repository.MachineRepository
	staff     repository.StaffRepository
	records   repository.ProductionRepository
	stock     repository.StockRepository
	locker    ports.Locker
	txRunner  ports.TxRunner
	log       *logger.Logger
	threshold decimal.Decimal
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	threshold := d.EfficiencyThreshold
	if threshold.IsZero() {
		threshold = milling.DefaultEfficiencyThreshold
	}
	return &UseCase{
		products:  d.Products,
		machines:  d.Machines,
		staff:     d.Staff,
		records:   d.Records,
		stock:     d.Stock,
		locker:    d.Locker,
		txRunner:  d.TxRunner,
		log:       d.Log.Component("production"),
		threshold: threshold,
		now:       time.Now,
	}
}

// Threshold umbral de eficiencia configurado.
func (uc *UseCase) Threshold() decimal.Decimal { return uc.threshold }

// IsEfficient indica si la corrida alcanza el umbral configurado.
func (uc *UseCase) IsEfficient(r *entity.ProductionRecord) bool {
	return milling.IsEfficient(r.ConversionRate, uc.threshold)
}

// Validate revisa la corrida sin aplicar nada.
func (uc *UseCase) Validate(ctx context.Context, in Input) (*domain.ValidationResult, error) {
	return uc.validate(ctx, uc.stock, in)
}

func (uc *UseCase) validate(ctx context.Context, stock repository.StockRepository, in Input) (*domain.ValidationResult, error) {
	res := domain.NewValidationResult()

	raw, err := uc.activeProduct(ctx, in.RawProductID, "materia prima", res)
	if err != nil {
		return nil, err
	}
	finished, err := uc.activeProduct(ctx, in.FinishedProductID, "producto terminado", res)
	if err != nil {
		return nil, err
	}
	if in.RawProductID != "" && in.RawProductID == in.FinishedProductID {
		res.Addf("la materia prima y el producto terminado deben ser distintos")
	}
	if !in.InputQuantity.IsPositive() {
		res.Addf("la cantidad de entrada debe ser mayor que cero")
	}
	if in.OutputQuantity.IsNegative() {
		res.Addf("la cantidad de salida no puede ser negativa")
	}
	if in.WasteQuantity.IsNegative() {
		res.Addf("la merma no puede ser negativa")
	}
	if err := uc.validateAssets(ctx, in, res); err != nil {
		return nil, err
	}

	l := ledger.New(stock)
	if raw != nil {
		available, err := l.GetQuantity(ctx, raw.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			res.Addf("la materia prima %s no tiene existencias inicializadas", raw.Code)
		case err != nil:
			return nil, err
		case in.InputQuantity.IsPositive() && available.LessThan(in.InputQuantity):
			res.AddInsufficientf("materia prima %s insuficiente, requerido %s, disponible %s",
				raw.Code, in.InputQuantity.String(), available.String())
		}
	}
	if finished != nil {
		if _, err := l.GetQuantity(ctx, finished.ID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			res.Addf("el producto terminado %s no tiene existencias inicializadas", finished.Code)
		}
	}
	return res, nil
}

func (uc *UseCase) activeProduct(ctx context.Context, id, label string, res *domain.ValidationResult) (*entity.Product, error) {
	if id == "" {
		res.Addf("%s: obligatorio", label)
		return nil, nil
	}
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		res.Addf("%s: producto %s no encontrado", label, id)
		return nil, nil
	}
	if !p.Active {
		res.Addf("%s: el producto %s está inactivo", label, p.Code)
	}
	return p, nil
}

func (uc *UseCase) validateAssets(ctx context.Context, in Input, res *domain.ValidationResult) error {
	if in.MachineID != "" {
		m, err := uc.machines.GetByID(ctx, in.MachineID)
		if err != nil {
			return err
		}
		switch {
		case m == nil:
			res.Addf("máquina %s no encontrada", in.MachineID)
		case !m.Active:
			res.Addf("la máquina %s está inactiva", m.Code)
		}
	}
	if in.OperatorID != "" {
		s, err := uc.staff.GetByID(ctx, in.OperatorID)
		if err != nil {
			return err
		}
		switch {
		case s == nil:
			res.Addf("operario %s no encontrado", in.OperatorID)
		case !s.Active:
			res.Addf("el operario %s está inactivo", s.Name)
		}
	}
	return nil
}

// Commit confirma la corrida: debita la materia prima por la entrada y acredita el terminado
// por la salida en una sola transacción. La merma no mueve existencias.
func (uc *UseCase) Commit(ctx context.Context, in Input) (*entity.ProductionRecord, error) {
	unlock, err := uc.locker.Lock(ctx, ports.ProductKey(in.RawProductID), ports.ProductKey(in.FinishedProductID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	var rec *entity.ProductionRecord
	err = uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		res, err := uc.validate(ctx, repos.Stock, in)
		if err != nil {
			return err
		}
		if err := res.Err(); err != nil {
			return err
		}

		now := uc.now()
		date := in.Date
		if date.IsZero() {
			date = now
		}
		number, err := repos.Numbers.Next(ctx, numberPrefix, date)
		if err != nil {
			return fmt.Errorf("generar número: %w", err)
		}
		rec = &entity.ProductionRecord{
			ID:                uuid.New().String(),
			Number:            number,
			Date:              date,
			RawProductID:      in.RawProductID,
			FinishedProductID: in.FinishedProductID,
			MachineID:         in.MachineID,
			OperatorID:        in.OperatorID,
			Notes:             in.Notes,
			CreatedBy:         in.CreatedBy,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		rec.SetQuantities(in.InputQuantity, in.OutputQuantity, in.WasteQuantity)
		if err := repos.Production.Create(ctx, rec); err != nil {
			return err
		}

		l := ledger.New(repos.Stock)
		if _, err := l.Adjust(ctx, in.RawProductID, in.InputQuantity.Neg()); err != nil {
			return fmt.Errorf("materia prima: %w", err)
		}
		if _, err := l.Adjust(ctx, in.FinishedProductID, in.OutputQuantity); err != nil {
			return fmt.Errorf("producto terminado: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("raw_product_id", in.RawProductID).Msg("corrida rechazada")
		return nil, err
	}

	ev := uc.log.Info()
	if !uc.IsEfficient(rec) {
		ev = uc.log.Warn()
	}
	ev.Str("number", rec.Number).
		Str("input", rec.InputQuantity.String()).
		Str("output", rec.OutputQuantity.String()).
		Str("conversion_rate", rec.ConversionRate.StringFixed(2)).
		Bool("efficient", uc.IsEfficient(rec)).
		Msg("corrida registrada")
	return rec, nil
}

// Get devuelve una corrida. domain.ErrNotFound si no existe.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.ProductionRecord, error) {
	rec, err := uc.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: corrida %s", domain.ErrNotFound, id)
	}
	return rec, nil
}

// List corridas con from <= fecha < to.
func (uc *UseCase) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.ProductionRecord, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: rango de fechas vacío", domain.ErrInvalidInput)
	}
	return uc.records.ListByDateRange(ctx, from, to, limit, offset)
}
