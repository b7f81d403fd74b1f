package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
	"github.com/dtltrading/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base de datos; memTxRunner imita la atomicidad del
// TxRunner real tomando un snapshot antes del callback y restaurándolo si
// este falla. Así los tests verifican también que las operaciones fallidas
// son no-ops.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products     map[string]*entity.Product
	transactions map[string]*entity.StockTransaction
	auditLogs    []*entity.AuditLog
}

func newMemStore() *memStore {
	return &memStore{
		products:     make(map[string]*entity.Product),
		transactions: make(map[string]*entity.StockTransaction),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.products {
		clone := *p
		cp.products[id] = &clone
	}
	for id, tx := range s.transactions {
		clone := *tx
		cp.transactions[id] = &clone
	}
	cp.auditLogs = append(cp.auditLogs, s.auditLogs...)
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.products = from.products
	s.transactions = from.transactions
	s.auditLogs = from.auditLogs
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}
func (r *memProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error {
	clone := *p
	r.store.products[p.ID] = &clone
	return nil
}
func (r *memProductRepo) UpdateQuantity(productID string, quantity int64) error {
	if p, ok := r.store.products[productID]; ok {
		p.Quantity = quantity
	}
	return nil
}
func (r *memProductRepo) UpdateCategoryName(categoryID, categoryName string) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.CategoryID == categoryID {
			p.CategoryName = categoryName
			n++
		}
	}
	return n, nil
}
func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		clone := *p
		list = append(list, &clone)
	}
	return list, nil
}
func (r *memProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.store.products, id); return nil }

type memTransactionRepo struct{ store *memStore }

func (r *memTransactionRepo) Create(tx *entity.StockTransaction) error {
	clone := *tx
	r.store.transactions[tx.ID] = &clone
	return nil
}
func (r *memTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	tx, ok := r.store.transactions[id]
	if !ok {
		return nil, nil
	}
	clone := *tx
	return &clone, nil
}
func (r *memTransactionRepo) Update(tx *entity.StockTransaction) error {
	clone := *tx
	r.store.transactions[tx.ID] = &clone
	return nil
}
func (r *memTransactionRepo) Delete(id string) error { delete(r.store.transactions, id); return nil }
func (r *memTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for _, tx := range r.store.transactions {
		clone := *tx
		list = append(list, &clone)
	}
	return list, nil
}
func (r *memTransactionRepo) ListByProduct(productID string) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for _, tx := range r.store.transactions {
		if tx.ProductID == productID {
			clone := *tx
			list = append(list, &clone)
		}
	}
	return list, nil
}
func (r *memTransactionRepo) CountByProduct(productID string) (int64, error) {
	list, _ := r.ListByProduct(productID)
	return int64(len(list)), nil
}

type memAuditRepo struct{ store *memStore }

func (r *memAuditRepo) Create(l *entity.AuditLog) error {
	r.store.auditLogs = append(r.store.auditLogs, l)
	return nil
}
func (r *memAuditRepo) ListByEntity(entityType, entityID string) ([]*entity.AuditLog, error) {
	var list []*entity.AuditLog
	for _, l := range r.store.auditLogs {
		if l.Entity == entityType && l.EntityID == entityID {
			list = append(list, l)
		}
	}
	return list, nil
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(&memProductRepo{r.store}, &memTransactionRepo{r.store}, &memAuditRepo{r.store})
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testActor = ledger.Actor{ID: "user-1", FullName: "Ana Torres"}

func newTestUseCase(t *testing.T) (*ledger.UseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	uc := ledger.NewUseCase(&memTxRunner{store}, &memTransactionRepo{store}, &memAuditRepo{store}, logger.Nop())
	return uc, store
}

func seedProduct(store *memStore, id string, quantity int64) *entity.Product {
	p := &entity.Product{
		ID:       id,
		Name:     "Producto " + id,
		SKU:      "SKU-" + id,
		Quantity: quantity,
		Status:   entity.ProductStatusActive,
	}
	store.products[id] = p
	return p
}

// sumDeltas suma los deltas de todas las transacciones vivas de un producto.
func sumDeltas(store *memStore, productID string) int64 {
	var sum int64
	for _, tx := range store.transactions {
		if tx.ProductID == productID {
			sum += tx.Quantity
		}
	}
	return sum
}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_EntradaSumaStock(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	out, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 10, Reason: "compra inicial",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), out.ProductQuantity)
	assert.Equal(t, int64(10), out.Transaction.Quantity, "el delta de IN es +cantidad")
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
	assert.Equal(t, "Ana Torres", out.Transaction.UserName)
	assert.Equal(t, "compra inicial", out.Transaction.Reason)
}

func TestRecord_SalidaRestaStock(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 10)

	out, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ProductQuantity)
	assert.Equal(t, int64(-3), out.Transaction.Quantity, "el delta de OUT es -cantidad")
}

func TestRecord_SalidaInsuficienteEsNoOp(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 5)

	_, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: 10,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(5), store.products["p1"].Quantity, "el stock no cambia")
	assert.Empty(t, store.transactions, "no se persiste ninguna transacción")
}

func TestRecord_AjusteResuelveDeltaContraStockActual(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 20)

	out, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeADJUSTMENT, Quantity: 15, Reason: "conteo físico",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(-5), out.Transaction.Quantity, "ADJUSTMENT guarda el delta, no el objetivo")
	assert.Equal(t, int64(15), out.ProductQuantity)
	assert.Equal(t, int64(15), store.products["p1"].Quantity)
}

func TestRecord_AjusteACeroEsValido(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 8)

	out, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeADJUSTMENT, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.ProductQuantity)
	assert.Equal(t, int64(-8), out.Transaction.Quantity)
}

func TestRecord_ValidaTipoYCantidad(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 5)

	casos := []struct {
		nombre string
		input  ledger.RecordInput
	}{
		{"tipo desconocido", ledger.RecordInput{ProductID: "p1", TransactionType: "TRANSFER", Quantity: 1}},
		{"IN con cantidad cero", ledger.RecordInput{ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 0}},
		{"OUT con cantidad negativa", ledger.RecordInput{ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: -4}},
		{"ADJUSTMENT negativo", ledger.RecordInput{ProductID: "p1", TransactionType: entity.TransactionTypeADJUSTMENT, Quantity: -1}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Record(context.Background(), testActor, c.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecord_ProductoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "no-existe", TransactionType: entity.TransactionTypeIN, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_EscribeAuditoria(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	out, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 2,
	})
	require.NoError(t, err)

	require.Len(t, store.auditLogs, 1)
	assert.Equal(t, entity.AuditActionCreate, store.auditLogs[0].Action)
	assert.Equal(t, out.Transaction.ID, store.auditLogs[0].EntityID)
}

func TestAuditTrail_SobreviveAlBorrado(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 5,
	})
	require.NoError(t, err)
	txID := rec.Transaction.ID

	_, err = uc.Edit(context.Background(), testActor, txID, ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 3,
		EditReason: "conteo corregido",
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(context.Background(), testActor, txID))

	trail, err := uc.AuditTrail(txID)
	require.NoError(t, err)
	require.Len(t, trail, 3)
	assert.Equal(t, entity.AuditActionCreate, trail[0].Action)
	assert.Equal(t, entity.AuditActionUpdate, trail[1].Action)
	assert.Equal(t, entity.AuditActionDelete, trail[2].Action)
	for _, l := range trail {
		assert.Equal(t, txID, l.EntityID)
		assert.Equal(t, testActor.FullName, l.UserName)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Edit
// ──────────────────────────────────────────────────────────────────────────────

func TestEdit_MismoProductoRevierteYReaplica(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 10, Reason: "compra",
	})
	require.NoError(t, err)
	fechaOriginal := rec.Transaction.TransactionDate

	editor := ledger.Actor{ID: "user-2", FullName: "Luis Prado"}
	out, err := uc.Edit(context.Background(), editor, rec.Transaction.ID, ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 4, EditReason: "cantidad mal digitada",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.ProductQuantity, "base revertida 0 + nuevo delta 4")
	assert.Equal(t, int64(4), out.Transaction.Quantity)
	assert.Equal(t, int64(4), store.products["p1"].Quantity)

	// El reason y la fecha originales se conservan; la edición queda estampada.
	assert.Equal(t, "compra", out.Transaction.Reason)
	assert.True(t, out.Transaction.TransactionDate.Equal(fechaOriginal))
	assert.Equal(t, "Luis Prado", out.Transaction.EditedBy)
	assert.Equal(t, "cantidad mal digitada", out.Transaction.EditReason)
	require.NotNil(t, out.Transaction.EditedAt)
	assert.WithinDuration(t, time.Now(), *out.Transaction.EditedAt, 5*time.Second)
}

func TestEdit_IdempotenteConValoresIdenticos(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 3)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 7,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), store.products["p1"].Quantity)

	// Dos ediciones con los mismos valores dejan el mismo stock final.
	for i := 0; i < 2; i++ {
		out, err := uc.Edit(context.Background(), testActor, rec.Transaction.ID, ledger.EditInput{
			ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 7, EditReason: "sin cambios",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(10), out.ProductQuantity)
	}
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
}

func TestEdit_CambioDeProductoRevierteElOriginal(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "A", 0)
	seedProduct(store, "B", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "A", TransactionType: entity.TransactionTypeIN, Quantity: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), store.products["A"].Quantity)

	out, err := uc.Edit(context.Background(), testActor, rec.Transaction.ID, ledger.EditInput{
		ProductID: "B", TransactionType: entity.TransactionTypeIN, Quantity: 4, EditReason: "producto equivocado",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), store.products["A"].Quantity, "A queda como si la transacción nunca hubiera existido")
	assert.Equal(t, int64(4), store.products["B"].Quantity)
	assert.Equal(t, "B", out.Transaction.ProductID)
	assert.Equal(t, "Producto B", out.Transaction.ProductName)
}

func TestEdit_AjusteSobreBaseRevertida(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 20)

	// OUT 5 deja el stock en 15.
	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: 5,
	})
	require.NoError(t, err)

	// Editar a ADJUSTMENT 12: base revertida 20, delta 12-20 = -8, stock 12.
	out, err := uc.Edit(context.Background(), testActor, rec.Transaction.ID, ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeADJUSTMENT, Quantity: 12, EditReason: "era un conteo",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-8), out.Transaction.Quantity)
	assert.Equal(t, int64(12), store.products["p1"].Quantity)
}

func TestEdit_SinMotivoEsRechazada(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 5,
	})
	require.NoError(t, err)

	_, err = uc.Edit(context.Background(), testActor, rec.Transaction.ID, ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, int64(5), store.products["p1"].Quantity, "nada cambió")
}

func TestEdit_GuardaDeStockSobreBaseRevertida(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 10,
	})
	require.NoError(t, err)

	// Base revertida 0; OUT 20 la dejaría en -20.
	_, err = uc.Edit(context.Background(), testActor, rec.Transaction.ID, ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: 20, EditReason: "salida grande",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La edición fallida es un no-op: stock y transacción intactos.
	assert.Equal(t, int64(10), store.products["p1"].Quantity)
	tx := store.transactions[rec.Transaction.ID]
	assert.Equal(t, entity.TransactionTypeIN, tx.TransactionType)
	assert.Equal(t, int64(10), tx.Quantity)
}

func TestEdit_CambioDeProductoConGuardaEsNoOp(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "A", 0)
	seedProduct(store, "B", 2)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "A", TransactionType: entity.TransactionTypeIN, Quantity: 10,
	})
	require.NoError(t, err)

	// Reasignar a B como OUT 5 fallaría (2 - 5 < 0): A no debe quedar revertido.
	_, err = uc.Edit(context.Background(), testActor, rec.Transaction.ID, ledger.EditInput{
		ProductID: "B", TransactionType: entity.TransactionTypeOUT, Quantity: 5, EditReason: "reasignación",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), store.products["A"].Quantity)
	assert.Equal(t, int64(2), store.products["B"].Quantity)
}

func TestEdit_TransaccionInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Edit(context.Background(), testActor, "no-existe", ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 1, EditReason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RevierteExactamenteElDelta(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), store.products["p1"].Quantity)

	err = uc.Delete(context.Background(), testActor, rec.Transaction.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), store.products["p1"].Quantity, "registrar y borrar es un round-trip")
	assert.NotContains(t, store.transactions, rec.Transaction.ID)
}

func TestDelete_PermiteStockNegativo(t *testing.T) {
	uc, store := newTestUseCase(t)
	seedProduct(store, "p1", 0)

	rec, err := uc.Record(context.Background(), testActor, ledger.RecordInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 10,
	})
	require.NoError(t, err)

	// Inconsistencia previa simulada: el stock ya no refleja el ledger.
	store.products["p1"].Quantity = 3

	err = uc.Delete(context.Background(), testActor, rec.Transaction.ID)
	require.NoError(t, err, "el borrado no aplica guarda de stock negativo")
	assert.Equal(t, int64(-7), store.products["p1"].Quantity)
}

func TestDelete_TransaccionInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	err := uc.Delete(context.Background(), testActor, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante del ledger
//
// Para todo producto: stock == base + Σ(deltas de transacciones vivas).
// Se ejercita con una secuencia mixta de altas, ediciones y borrados.
// ──────────────────────────────────────────────────────────────────────────────

func TestInvariante_SecuenciaMixta(t *testing.T) {
	uc, store := newTestUseCase(t)
	const base = int64(50)
	seedProduct(store, "p1", base)
	seedProduct(store, "p2", 0)

	checkInvariant := func() {
		t.Helper()
		assert.Equal(t, base+sumDeltas(store, "p1"), store.products["p1"].Quantity, "invariante p1")
		assert.Equal(t, sumDeltas(store, "p2"), store.products["p2"].Quantity, "invariante p2")
	}

	ctx := context.Background()

	r1, err := uc.Record(ctx, testActor, ledger.RecordInput{ProductID: "p1", TransactionType: entity.TransactionTypeIN, Quantity: 20})
	require.NoError(t, err)
	checkInvariant()

	r2, err := uc.Record(ctx, testActor, ledger.RecordInput{ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: 15})
	require.NoError(t, err)
	checkInvariant()

	_, err = uc.Record(ctx, testActor, ledger.RecordInput{ProductID: "p1", TransactionType: entity.TransactionTypeADJUSTMENT, Quantity: 40})
	require.NoError(t, err)
	checkInvariant()

	// Edición dentro del mismo producto.
	_, err = uc.Edit(ctx, testActor, r2.Transaction.ID, ledger.EditInput{
		ProductID: "p1", TransactionType: entity.TransactionTypeOUT, Quantity: 5, EditReason: "salida menor",
	})
	require.NoError(t, err)
	checkInvariant()

	// Reasignación de la entrada original hacia p2.
	_, err = uc.Edit(ctx, testActor, r1.Transaction.ID, ledger.EditInput{
		ProductID: "p2", TransactionType: entity.TransactionTypeIN, Quantity: 8, EditReason: "producto equivocado",
	})
	require.NoError(t, err)
	checkInvariant()

	// Borrado de la transacción reasignada.
	require.NoError(t, uc.Delete(ctx, testActor, r1.Transaction.ID))
	checkInvariant()
}
