package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
)

// InventoryStats agregados del dashboard calculados por la DB.
type InventoryStats struct {
	ActiveProducts    int64
	LowStockItems     int64           // activos con quantity <= reorder_level
	TotalValue        decimal.Decimal // Σ quantity * unit_cost
	TransactionsCount int64
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	GetInventoryStats(ctx context.Context) (*InventoryStats, error)
	// ListLowStock devuelve los productos activos en o por debajo del nivel de reorden.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	// ListRecentTransactions devuelve las últimas transacciones (fecha descendente).
	ListRecentTransactions(ctx context.Context, limit int) ([]*entity.StockTransaction, error)
}
