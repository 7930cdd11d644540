package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType clasifica los productos del molino.
type ProductType string

const (
	ProductTypeRawMaterial  ProductType = "RAW_MATERIAL"  // paddy / arroz cáscara
	ProductTypeFinishedGood ProductType = "FINISHED_GOOD" // arroz blanco
	ProductTypeByProduct    ProductType = "BY_PRODUCT"    // cascarilla, salvado, granza
)

// Valid indica si t es un tipo conocido.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeRawMaterial, ProductTypeFinishedGood, ProductTypeByProduct:
		return true
	}
	return false
}

// Product representa un producto del catálogo.
// UnitPrice es un atributo plano; las líneas de órdenes guardan su propio precio al confirmar.
type Product struct {
	ID          string
	Code        string // código único
	Name        string
	Type        ProductType
	UnitPrice   decimal.Decimal
	UnitMeasure string // kg, saco, qq
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
