package reports_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/application/reports"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que el generador de reportes consulta)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (r *fakeProductRepo) GetByIDForUpdate(string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)        { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                    { return nil }
func (r *fakeProductRepo) UpdateQuantity(string, int64) error              { return nil }
func (r *fakeProductRepo) UpdateCategoryName(string, string) (int64, error) { return 0, nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	return r.products[offset:end], nil
}
func (r *fakeProductRepo) CountByCategory(string) (int64, error) { return 0, nil }
func (r *fakeProductRepo) Delete(string) error                   { return nil }

type fakeTransactionRepo struct {
	transactions []*entity.StockTransaction
}

func (r *fakeTransactionRepo) Create(*entity.StockTransaction) error { return nil }
func (r *fakeTransactionRepo) GetByID(string) (*entity.StockTransaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) Update(*entity.StockTransaction) error { return nil }
func (r *fakeTransactionRepo) Delete(string) error                   { return nil }
func (r *fakeTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return r.transactions, nil
}
func (r *fakeTransactionRepo) ListByProduct(string) ([]*entity.StockTransaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) CountByProduct(string) (int64, error) { return 0, nil }

type fakeReportRepo struct {
	saved []*entity.Report
}

func (r *fakeReportRepo) Create(report *entity.Report) error {
	r.saved = append(r.saved, report)
	return nil
}
func (r *fakeReportRepo) GetByID(id string) (*entity.Report, error) {
	for _, rep := range r.saved {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, nil
}
func (r *fakeReportRepo) List(limit, offset int) ([]*entity.Report, error) {
	return r.saved, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testActor = ledger.Actor{ID: "user-1", FullName: "Ana Torres"}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID: "p1", SKU: "RON-001", Name: "Ron Añejo", CategoryName: "Licores",
			Quantity: 10, ReorderLevel: 5, Unit: "botella",
			UnitCost: money("25.50"), SellingPrice: money("40.00"),
			Location: "A-1", Supplier: "Distribuidora Sur", Status: entity.ProductStatusActive,
		},
		{
			ID: "p2", SKU: "VIN-002", Name: "Vino Tinto", CategoryName: "Vinos",
			Quantity: 2, ReorderLevel: 6, Unit: "botella",
			UnitCost: money("10.00"), SellingPrice: money("18.00"),
			Location: "B-2", Status: entity.ProductStatusActive,
		},
	}
}

func newReportsUseCase(products []*entity.Product, txs []*entity.StockTransaction) (*reports.UseCase, *fakeReportRepo) {
	reportRepo := &fakeReportRepo{}
	uc := reports.NewUseCase(
		&fakeProductRepo{products: products},
		&fakeTransactionRepo{transactions: txs},
		reportRepo,
	)
	return uc, reportRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_Inventario(t *testing.T) {
	uc, reportRepo := newReportsUseCase(seedCatalog(), nil)

	out, err := uc.Generate(testActor, entity.ReportTypeInventory)
	require.NoError(t, err)

	assert.Equal(t, "Reporte de Inventario", out.Title)
	assert.Equal(t, "Ana Torres", out.GeneratedBy)
	require.Len(t, out.Rows, 2)
	// Valor total = cantidad * costo unitario.
	assert.Equal(t, "255.00", out.Rows[0][7])

	// La generación queda en el historial con las filas serializadas.
	require.Len(t, reportRepo.saved, 1)
	assert.Equal(t, 2, reportRepo.saved[0].RecordCount)
	assert.Equal(t, entity.ReportTypeInventory, reportRepo.saved[0].ReportType)
}

func TestGenerate_StockBajoFiltraPorNivelDeReorden(t *testing.T) {
	uc, _ := newReportsUseCase(seedCatalog(), nil)

	out, err := uc.Generate(testActor, entity.ReportTypeLowStock)
	require.NoError(t, err)

	require.Len(t, out.Rows, 1, "solo el vino está en o bajo el nivel de reorden")
	assert.Equal(t, "VIN-002", out.Rows[0][0])
	assert.Equal(t, "4", out.Rows[0][5], "unidades bajo reorden = nivel - cantidad")
	assert.Equal(t, "N/A", out.Rows[0][7], "proveedor vacío se reporta como N/A")
}

func TestGenerate_TransaccionesFormateaDeltaConSigno(t *testing.T) {
	when := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	txs := []*entity.StockTransaction{
		{ID: "t1", ProductName: "Ron Añejo", TransactionType: entity.TransactionTypeIN, Quantity: 10, UserName: "Ana Torres", TransactionDate: when},
		{ID: "t2", ProductName: "Ron Añejo", TransactionType: entity.TransactionTypeOUT, Quantity: -3, UserName: "Luis Prado", TransactionDate: when, Reason: "venta"},
	}
	uc, _ := newReportsUseCase(nil, txs)

	out, err := uc.Generate(testActor, entity.ReportTypeTransactions)
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "+10", out.Rows[0][3])
	assert.Equal(t, "-3", out.Rows[1][3])
	assert.Equal(t, "N/A", out.Rows[0][5], "motivo vacío se reporta como N/A")
	assert.Equal(t, "venta", out.Rows[1][5])
}

func TestGenerate_ValorizacionIncluyeFilaTotal(t *testing.T) {
	uc, _ := newReportsUseCase(seedCatalog(), nil)

	out, err := uc.Generate(testActor, entity.ReportTypeValuation)
	require.NoError(t, err)

	require.Len(t, out.Rows, 3, "2 productos + fila TOTAL")
	total := out.Rows[2]
	assert.Equal(t, "TOTAL", total[0])
	// 10*25.50 + 2*10.00 = 275.00 ; 10*40 + 2*18 = 436.00
	assert.Equal(t, "275.00", total[5])
	assert.Equal(t, "436.00", total[6])
	assert.Equal(t, "161.00", total[7])
}

func TestGenerate_TipoDesconocido(t *testing.T) {
	uc, reportRepo := newReportsUseCase(nil, nil)

	_, err := uc.Generate(testActor, "ventas")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, reportRepo.saved)
}

func TestReprint_RecuperaFilasOriginales(t *testing.T) {
	uc, _ := newReportsUseCase(seedCatalog(), nil)

	generated, err := uc.Generate(testActor, entity.ReportTypeInventory)
	require.NoError(t, err)

	reprinted, err := uc.Reprint(generated.ID)
	require.NoError(t, err)

	assert.Equal(t, generated.Headers, reprinted.Headers)
	assert.Equal(t, generated.Rows, reprinted.Rows)
	assert.Equal(t, generated.Title, reprinted.Title)
}

func TestReprint_NoExiste(t *testing.T) {
	uc, _ := newReportsUseCase(nil, nil)
	_, err := uc.Reprint("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderCSV_QuotingYOrden(t *testing.T) {
	report := &dto.GeneratedReport{
		Headers: []string{"SKU", "Nombre"},
		Rows: [][]string{
			{"RON-001", `Ron "Premium", añejo`},
		},
	}

	data, err := reports.RenderCSV(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "SKU,Nombre", lines[0])
	assert.Equal(t, `RON-001,"Ron ""Premium"", añejo"`, lines[1])
}

func TestFilename_IncluyeFecha(t *testing.T) {
	report := &dto.GeneratedReport{
		Title:       "Reporte de Inventario",
		GeneratedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Reporte de Inventario_2026-08-20.csv", reports.Filename(report, "csv"))
}
