package dto

import "time"

// CreatePartyRequest entrada para crear un proveedor o cliente.
type CreatePartyRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=SUPPLIER CUSTOMER"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" validate:"omitempty,max=30"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"omitempty,max=300"`
}

// UpdatePartyRequest entrada para actualizar un tercero. El tipo no cambia.
type UpdatePartyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID   *string `json:"tax_id" validate:"omitempty,max=30"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// PartyResponse salida de un tercero.
type PartyResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListResponse lista paginada de terceros.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
