// Package analytics contiene el caso de uso del dashboard: estadísticas
// derivadas del inventario (productos activos, alertas de stock bajo,
// valorización) y los listados de apoyo.
package analytics

import (
	"context"
	"fmt"

	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
)

const dashboardRecentTransactions = 10 // filas del widget de últimos movimientos

// DashboardUseCase arma el resumen del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetInventoryStats        → tarjetas (conteos + valor total)
//  2. ListLowStock             → productos en alerta
//  3. ListRecentTransactions   → últimos movimientos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type statsResult struct {
		stats *repository.InventoryStats
		err   error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}
	type recentResult struct {
		txs []*entity.StockTransaction
		err error
	}

	statsCh := make(chan statsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		stats, err := uc.analyticsRepo.GetInventoryStats(ctx)
		statsCh <- statsResult{stats, err}
	}()
	go func() {
		products, err := uc.analyticsRepo.ListLowStock(ctx)
		lowCh <- lowStockResult{products, err}
	}()
	go func() {
		txs, err := uc.analyticsRepo.ListRecentTransactions(ctx, dashboardRecentTransactions)
		recentCh <- recentResult{txs, err}
	}()

	stats := <-statsCh
	low := <-lowCh
	recent := <-recentCh

	if stats.err != nil {
		return nil, fmt.Errorf("stats de inventario: %w", stats.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("productos en stock bajo: %w", low.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("transacciones recientes: %w", recent.err)
	}

	lowStock := make([]dto.ProductResponse, 0, len(low.products))
	for _, p := range low.products {
		lowStock = append(lowStock, dto.ProductResponse{
			ID:           p.ID,
			CategoryID:   p.CategoryID,
			CategoryName: p.CategoryName,
			Name:         p.Name,
			SKU:          p.SKU,
			Unit:         p.Unit,
			UnitCost:     p.UnitCost,
			SellingPrice: p.SellingPrice,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
			Location:     p.Location,
			Supplier:     p.Supplier,
			Status:       p.Status,
			CreatedAt:    p.CreatedAt,
			UpdatedAt:    p.UpdatedAt,
		})
	}
	latest := make([]dto.TransactionResponse, 0, len(recent.txs))
	for _, tx := range recent.txs {
		latest = append(latest, toTransactionResponse(tx))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:      stats.stats.ActiveProducts,
		LowStockItems:      stats.stats.LowStockItems,
		TotalValue:         stats.stats.TotalValue,
		RecentTransactions: stats.stats.TransactionsCount,
		LowStockProducts:   lowStock,
		LatestTransactions: latest,
	}, nil
}

func toTransactionResponse(tx *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID,
		ProductID:       tx.ProductID,
		ProductName:     tx.ProductName,
		UserID:          tx.UserID,
		UserName:        tx.UserName,
		TransactionType: tx.TransactionType,
		Quantity:        tx.Quantity,
		Reason:          tx.Reason,
		TransactionDate: tx.TransactionDate,
		EditedBy:        tx.EditedBy,
		EditedAt:        tx.EditedAt,
		EditReason:      tx.EditReason,
	}
}
