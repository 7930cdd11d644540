package entity

import "time"

// PartyKind tipo de tercero.
type PartyKind string

const (
	PartyKindSupplier PartyKind = "SUPPLIER" // agricultor / proveedor de paddy
	PartyKindCustomer PartyKind = "CUSTOMER"
)

// Valid indica si k es un tipo conocido.
func (k PartyKind) Valid() bool {
	return k == PartyKindSupplier || k == PartyKindCustomer
}

// Party representa un proveedor o un cliente.
type Party struct {
	ID        string
	Kind      PartyKind
	Name      string
	TaxID     string // NIT o cédula
	Phone     string
	Email     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
