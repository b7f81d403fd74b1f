package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID   string          `json:"category_id" validate:"required"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Unit         string          `json:"unit" validate:"required,max=20"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity" validate:"min=0"`
	ReorderLevel int64           `json:"reorder_level" validate:"min=0"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Location     string          `json:"location" validate:"max=100"`
	Supplier     string          `json:"supplier" validate:"max=200"`
	Status       string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// Quantity no se toca por aquí salvo edición directa explícita del stock.
type UpdateProductRequest struct {
	CategoryID   *string          `json:"category_id"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string          `json:"unit" validate:"omitempty,max=20"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Quantity     *int64           `json:"quantity" validate:"omitempty,min=0"`
	ReorderLevel *int64           `json:"reorder_level" validate:"omitempty,min=0"`
	ExpiryDate   *time.Time       `json:"expiry_date"`
	Location     *string          `json:"location" validate:"omitempty,max=100"`
	Supplier     *string          `json:"supplier" validate:"omitempty,max=200"`
	Status       *string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Quantity     int64           `json:"quantity"`
	ReorderLevel int64           `json:"reorder_level"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Location     string          `json:"location"`
	Supplier     string          `json:"supplier,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
