package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
)

// Product representa un producto del inventario. Quantity es el stock actual
// y solo se mueve vía transacciones de stock (o edición directa del producto);
// CategoryName es una caché desnormalizada que se refresca al renombrar la categoría.
type Product struct {
	ID           string
	CategoryID   string
	CategoryName string // caché; fuente de verdad: categories.name
	Name         string
	SKU          string // único
	Unit         string // pcs, box, bottle...
	UnitCost     decimal.Decimal
	SellingPrice decimal.Decimal
	Quantity     int64
	ReorderLevel int64
	ExpiryDate   *time.Time
	Location     string
	Supplier     string
	Status       string // Active, Inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo de su nivel de reorden.
func (p *Product) IsLowStock() bool {
	return p.Status == ProductStatusActive && p.Quantity <= p.ReorderLevel
}

// StockValue devuelve el valor del stock actual (quantity * unitCost).
func (p *Product) StockValue() decimal.Decimal {
	return decimal.NewFromInt(p.Quantity).Mul(p.UnitCost)
}
