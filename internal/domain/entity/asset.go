package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Machine equipo del molino (descascaradora, pulidora, clasificadora...).
type Machine struct {
	ID        string
	Code      string
	Name      string
	Capacity  decimal.Decimal // kg/h nominales
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Staff personal que opera las corridas de producción.
type Staff struct {
	ID        string
	Name      string
	Position  string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
