// Package reports genera los reportes operativos (inventario, stock bajo,
// transacciones, valorización) sobre datos vivos, guarda cada generación en el
// historial y los renderiza a CSV o PDF.
package reports

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
)

const transactionReportLimit = 1000 // techo de filas del reporte de transacciones

// reportPayload es lo que se persiste en reports.data para poder re-exportar.
type reportPayload struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// UseCase genera reportes y administra su historial.
type UseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	reportRepo  repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	reportRepo repository.ReportRepository,
) *UseCase {
	return &UseCase{productRepo: productRepo, txRepo: txRepo, reportRepo: reportRepo}
}

// Generate construye el reporte del tipo pedido, lo guarda en el historial y
// devuelve las filas listas para exportar.
func (uc *UseCase) Generate(actor ledger.Actor, reportType string) (*dto.GeneratedReport, error) {
	var (
		title   string
		headers []string
		rows    [][]string
		err     error
	)
	switch reportType {
	case entity.ReportTypeInventory:
		title = "Reporte de Inventario"
		headers, rows, err = uc.inventoryRows()
	case entity.ReportTypeLowStock:
		title = "Reporte de Stock Bajo"
		headers, rows, err = uc.lowStockRows()
	case entity.ReportTypeTransactions:
		title = "Historial de Transacciones"
		headers, rows, err = uc.transactionRows()
	case entity.ReportTypeValuation:
		title = "Reporte de Valorización"
		headers, rows, err = uc.valuationRows()
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(reportPayload{Headers: headers, Rows: rows})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	report := &entity.Report{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		GeneratedBy: actor.FullName,
		ReportType:  reportType,
		Title:       title,
		RecordCount: len(rows),
		Status:      "Completed",
		Data:        data,
		GeneratedAt: now,
	}
	if err := uc.reportRepo.Create(report); err != nil {
		return nil, err
	}

	return &dto.GeneratedReport{
		ID:          report.ID,
		ReportType:  reportType,
		Title:       title,
		GeneratedBy: actor.FullName,
		GeneratedAt: now,
		Headers:     headers,
		Rows:        rows,
	}, nil
}

// History devuelve el historial de reportes generados.
func (uc *UseCase) History(limit, offset int) (*dto.ReportListResponse, error) {
	list, err := uc.reportRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ReportResponse{
			ID:          r.ID,
			ReportType:  r.ReportType,
			Title:       r.Title,
			GeneratedBy: r.GeneratedBy,
			RecordCount: r.RecordCount,
			Status:      r.Status,
			GeneratedAt: r.GeneratedAt,
		})
	}
	return &dto.ReportListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Reprint recupera un reporte del historial con sus filas originales.
func (uc *UseCase) Reprint(id string) (*dto.GeneratedReport, error) {
	report, err := uc.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	var payload reportPayload
	if err := json.Unmarshal(report.Data, &payload); err != nil {
		return nil, fmt.Errorf("reporte %s con data corrupta: %w", id, err)
	}
	return &dto.GeneratedReport{
		ID:          report.ID,
		ReportType:  report.ReportType,
		Title:       report.Title,
		GeneratedBy: report.GeneratedBy,
		GeneratedAt: report.GeneratedAt,
		Headers:     payload.Headers,
		Rows:        payload.Rows,
	}, nil
}

// RenderCSV serializa un reporte a CSV (con quoting RFC 4180).
func RenderCSV(report *dto.GeneratedReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(report.Headers); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename arma el nombre de descarga: <titulo>_<fecha>.<ext>.
func Filename(report *dto.GeneratedReport, ext string) string {
	return fmt.Sprintf("%s_%s.%s", report.Title, report.GeneratedAt.Format("2006-01-02"), ext)
}

func (uc *UseCase) inventoryRows() ([]string, [][]string, error) {
	products, err := uc.allProducts()
	if err != nil {
		return nil, nil, err
	}
	headers := []string{"SKU", "Nombre", "Categoría", "Cantidad", "Unidad", "Costo Unitario", "Precio Venta", "Valor Total", "Nivel Reorden", "Ubicación", "Estado"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.SKU,
			p.Name,
			p.CategoryName,
			strconv.FormatInt(p.Quantity, 10),
			p.Unit,
			p.UnitCost.StringFixed(2),
			p.SellingPrice.StringFixed(2),
			p.StockValue().StringFixed(2),
			strconv.FormatInt(p.ReorderLevel, 10),
			p.Location,
			p.Status,
		})
	}
	return headers, rows, nil
}

func (uc *UseCase) lowStockRows() ([]string, [][]string, error) {
	products, err := uc.allProducts()
	if err != nil {
		return nil, nil, err
	}
	headers := []string{"SKU", "Nombre", "Categoría", "Cantidad Actual", "Nivel Reorden", "Unidades Bajo Reorden", "Ubicación", "Proveedor"}
	var rows [][]string
	for _, p := range products {
		if !p.IsLowStock() {
			continue
		}
		supplier := p.Supplier
		if supplier == "" {
			supplier = "N/A"
		}
		rows = append(rows, []string{
			p.SKU,
			p.Name,
			p.CategoryName,
			strconv.FormatInt(p.Quantity, 10),
			strconv.FormatInt(p.ReorderLevel, 10),
			strconv.FormatInt(p.ReorderLevel-p.Quantity, 10),
			p.Location,
			supplier,
		})
	}
	return headers, rows, nil
}

func (uc *UseCase) transactionRows() ([]string, [][]string, error) {
	txs, err := uc.txRepo.List(transactionReportLimit, 0)
	if err != nil {
		return nil, nil, err
	}
	headers := []string{"Fecha", "Producto", "Tipo", "Cantidad", "Usuario", "Motivo"}
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		reason := tx.Reason
		if reason == "" {
			reason = "N/A"
		}
		rows = append(rows, []string{
			tx.TransactionDate.Format("2006-01-02 15:04:05"),
			tx.ProductName,
			tx.TransactionType,
			fmt.Sprintf("%+d", tx.Quantity),
			tx.UserName,
			reason,
		})
	}
	return headers, rows, nil
}

func (uc *UseCase) valuationRows() ([]string, [][]string, error) {
	products, err := uc.allProducts()
	if err != nil {
		return nil, nil, err
	}
	headers := []string{"SKU", "Nombre", "Categoría", "Cantidad", "Costo Unitario", "Valor Stock", "Ingreso Potencial", "Utilidad Potencial"}
	rows := make([][]string, 0, len(products)+1)
	totalValue := decimal.Zero
	totalRevenue := decimal.Zero
	for _, p := range products {
		qty := decimal.NewFromInt(p.Quantity)
		value := qty.Mul(p.UnitCost)
		revenue := qty.Mul(p.SellingPrice)
		totalValue = totalValue.Add(value)
		totalRevenue = totalRevenue.Add(revenue)
		rows = append(rows, []string{
			p.SKU,
			p.Name,
			p.CategoryName,
			strconv.FormatInt(p.Quantity, 10),
			p.UnitCost.StringFixed(2),
			value.StringFixed(2),
			revenue.StringFixed(2),
			revenue.Sub(value).StringFixed(2),
		})
	}
	rows = append(rows, []string{
		"TOTAL", "", "", "", "",
		totalValue.StringFixed(2),
		totalRevenue.StringFixed(2),
		totalRevenue.Sub(totalValue).StringFixed(2),
	})
	return headers, rows, nil
}

// allProducts pagina internamente hasta agotar el catálogo.
func (uc *UseCase) allProducts() ([]*entity.Product, error) {
	const pageSize = 500
	var all []*entity.Product
	for offset := 0; ; offset += pageSize {
		page, err := uc.productRepo.List(pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
