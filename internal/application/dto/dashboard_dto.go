package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO tarjetas del dashboard más listas de apoyo.
type DashboardSummaryDTO struct {
	TotalProducts      int64                 `json:"total_products"` // solo activos
	LowStockItems      int64                 `json:"low_stock_items"`
	TotalValue         decimal.Decimal       `json:"total_value"` // Σ quantity * unit_cost
	RecentTransactions int64                 `json:"recent_transactions"`
	LowStockProducts   []ProductResponse     `json:"low_stock_products"`
	LatestTransactions []TransactionResponse `json:"latest_transactions"`
}
