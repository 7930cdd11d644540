package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMachineRequest entrada para registrar una máquina.
type CreateMachineRequest struct {
	Code     string          `json:"code" validate:"required,min=1,max=50"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Capacity decimal.Decimal `json:"capacity"` // kg/h
}

// MachineResponse salida de una máquina.
type MachineResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Capacity  decimal.Decimal `json:"capacity"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateStaffRequest entrada para registrar personal.
type CreateStaffRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Position string `json:"position" validate:"omitempty,max=100"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

// StaffResponse salida de una persona del personal.
type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
