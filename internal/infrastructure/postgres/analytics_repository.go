package postgres

import (
	"context"
	"fmt"

	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para el dashboard. Los agregados se
// calculan en la base de datos, no en memoria.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetInventoryStats calcula los agregados del dashboard en una sola consulta.
func (r *AnalyticsRepo) GetInventoryStats(ctx context.Context) (*repository.InventoryStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM products WHERE status = $1),
			(SELECT count(*) FROM products WHERE status = $1 AND quantity <= reorder_level),
			(SELECT COALESCE(SUM(quantity * unit_cost), 0) FROM products WHERE status = $1),
			(SELECT count(*) FROM stock_transactions)`
	var stats repository.InventoryStats
	err := r.q.QueryRow(ctx, query, entity.ProductStatusActive).Scan(
		&stats.ActiveProducts, &stats.LowStockItems, &stats.TotalValue, &stats.TransactionsCount,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	return &stats, nil
}

// ListLowStock devuelve los productos activos en o por debajo del nivel de reorden.
func (r *AnalyticsRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE status = $1 AND quantity <= reorder_level
		ORDER BY quantity ASC, name ASC`
	rows, err := r.q.Query(ctx, query, entity.ProductStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.CategoryID, &p.CategoryName, &p.Name, &p.SKU, &p.Unit,
			&p.UnitCost, &p.SellingPrice, &p.Quantity, &p.ReorderLevel,
			&p.ExpiryDate, &p.Location, &p.Supplier, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListRecentTransactions devuelve las últimas transacciones por fecha descendente.
func (r *AnalyticsRepo) ListRecentTransactions(ctx context.Context, limit int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM stock_transactions
		ORDER BY transaction_date DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	return collectTransactions(rows)
}
