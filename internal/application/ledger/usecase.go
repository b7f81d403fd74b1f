// Package ledger implementa el reconciliador del ledger de stock: traduce la
// intención del usuario (tipo + cantidad ingresada) a un delta con signo, lo
// aplica al stock del producto y persiste la transacción, garantizando que
// ediciones y borrados deshagan exactamente el efecto anterior.
//
// Invariante: para todo producto P,
//
//	P.Quantity == base(P) + Σ(delta de cada transacción existente de P)
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
	"github.com/dtltrading/almacen-api/pkg/logger"
)

// auditEntityTransaction es el nombre de entidad bajo el que se agrupan los
// eventos de auditoría del ledger.
const auditEntityTransaction = "transaction"

// Actor identifica al usuario que ejecuta la operación (atribución explícita,
// no un singleton de sesión).
type Actor struct {
	ID       string
	FullName string
}

// UseCase reconcilia movimientos de stock de forma transaccional
// (SELECT FOR UPDATE sobre las filas de producto + Commit/Rollback).
type UseCase struct {
	txRunner  TxRunner
	txRepo    repository.TransactionRepository // lecturas fuera de transacción
	auditRepo repository.AuditLogRepository    // lecturas del historial de auditoría
	log       *logger.Logger
}

// NewUseCase construye el reconciliador.
func NewUseCase(txRunner TxRunner, txRepo repository.TransactionRepository, auditRepo repository.AuditLogRepository, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, txRepo: txRepo, auditRepo: auditRepo, log: log}
}

// RecordInput entrada para registrar una transacción de stock.
// Quantity es el valor ingresado por el usuario, siempre sin signo:
// para IN/OUT es la cantidad movida (mínimo 1); para ADJUSTMENT es el nivel
// absoluto de stock deseado (mínimo 0).
type RecordInput struct {
	ProductID       string
	TransactionType string
	Quantity        int64
	Reason          string
}

// EditInput entrada para editar una transacción existente. EditReason es
// obligatorio: la edición queda auditada, a diferencia de la creación.
type EditInput struct {
	ProductID       string
	TransactionType string
	Quantity        int64
	EditReason      string
}

// Result transacción resultante y stock final del producto afectado.
type Result struct {
	Transaction     *entity.StockTransaction
	ProductQuantity int64
}

// resolveDelta aplica las reglas por tipo:
//
//	IN         -> +entered
//	OUT        -> -entered
//	ADJUSTMENT -> entered - baseline (entered es el nivel absoluto deseado)
func resolveDelta(transactionType string, entered, baseline int64) int64 {
	switch transactionType {
	case entity.TransactionTypeIN:
		return entered
	case entity.TransactionTypeOUT:
		return -entered
	default: // ADJUSTMENT
		return entered - baseline
	}
}

// validateIntent valida tipo y cantidad ingresada antes de cualquier escritura.
func validateIntent(transactionType string, entered int64) error {
	if !entity.ValidTransactionType(transactionType) {
		return domain.ErrInvalidInput
	}
	switch transactionType {
	case entity.TransactionTypeADJUSTMENT:
		// El valor ingresado es el stock objetivo; no puede ser negativo.
		if entered < 0 {
			return domain.ErrInvalidInput
		}
	default:
		if entered < 1 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// Record registra una nueva transacción: resuelve el delta contra el stock
// actual, aplica la guarda de OUT y persiste producto + transacción + auditoría
// en una sola transacción SQL. No-op atómico si algo falla.
func (uc *UseCase) Record(ctx context.Context, actor Actor, in RecordInput) (*Result, error) {
	if err := validateIntent(in.TransactionType, in.Quantity); err != nil {
		return nil, err
	}

	var result Result
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		delta := resolveDelta(in.TransactionType, in.Quantity, product.Quantity)
		newQuantity := product.Quantity + delta
		if in.TransactionType == entity.TransactionTypeOUT && newQuantity < 0 {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.UpdateQuantity(product.ID, newQuantity); err != nil {
			return err
		}

		now := time.Now()
		tx := &entity.StockTransaction{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			ProductName:     product.Name,
			UserID:          actor.ID,
			UserName:        actor.FullName,
			TransactionType: in.TransactionType,
			Quantity:        delta,
			Reason:          in.Reason,
			TransactionDate: now,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		if err := auditRepo.Create(&entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    actor.ID,
			UserName:  actor.FullName,
			Action:    entity.AuditActionCreate,
			Entity:    auditEntityTransaction,
			EntityID:  tx.ID,
			Detail:    fmt.Sprintf("%s %+d sobre %s (stock %d -> %d)", in.TransactionType, delta, product.Name, product.Quantity, newQuantity),
			CreatedAt: now,
		}); err != nil {
			return err
		}

		result = Result{Transaction: tx, ProductQuantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Edit modifica una transacción existente preservando el invariante: primero
// revierte el delta anterior (base = stock como si la transacción nunca hubiera
// existido) y después resuelve y aplica el delta nuevo sobre esa base. Si la
// edición reasigna la transacción a otro producto, el producto original queda
// revertido y la base del nuevo es su stock actual. Todo en una transacción SQL.
//
// La fecha de la transacción y el reason original no cambian; se estampan
// EditedBy/EditedAt/EditReason.
func (uc *UseCase) Edit(ctx context.Context, actor Actor, transactionID string, in EditInput) (*Result, error) {
	if in.EditReason == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateIntent(in.TransactionType, in.Quantity); err != nil {
		return nil, err
	}

	var result Result
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		tx, err := txRepo.GetByID(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}

		oldProduct, err := productRepo.GetByIDForUpdate(tx.ProductID)
		if err != nil {
			return err
		}
		if oldProduct == nil {
			return domain.ErrNotFound
		}

		// Stock del producto original como si esta transacción nunca hubiera existido.
		reverted := oldProduct.Quantity - tx.Quantity

		target := oldProduct
		baseline := reverted
		if in.ProductID != oldProduct.ID {
			newProduct, err := productRepo.GetByIDForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if newProduct == nil {
				return domain.ErrNotFound
			}
			// El producto original queda reconciliado e independiente de esta transacción.
			if err := productRepo.UpdateQuantity(oldProduct.ID, reverted); err != nil {
				return err
			}
			target = newProduct
			baseline = newProduct.Quantity
		}

		delta := resolveDelta(in.TransactionType, in.Quantity, baseline)
		newQuantity := baseline + delta
		if in.TransactionType == entity.TransactionTypeOUT && newQuantity < 0 {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.UpdateQuantity(target.ID, newQuantity); err != nil {
			return err
		}

		now := time.Now()
		tx.ProductID = target.ID
		tx.ProductName = target.Name
		tx.TransactionType = in.TransactionType
		tx.Quantity = delta
		// Reason original intacto; la justificación de la edición va en EditReason.
		tx.EditedBy = actor.FullName
		tx.EditedAt = &now
		tx.EditReason = in.EditReason
		if err := txRepo.Update(tx); err != nil {
			return err
		}

		if err := auditRepo.Create(&entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    actor.ID,
			UserName:  actor.FullName,
			Action:    entity.AuditActionUpdate,
			Entity:    auditEntityTransaction,
			EntityID:  tx.ID,
			Detail:    fmt.Sprintf("edición: %s %+d sobre %s (stock -> %d); motivo: %s", in.TransactionType, delta, target.Name, newQuantity, in.EditReason),
			CreatedAt: now,
		}); err != nil {
			return err
		}

		result = Result{Transaction: tx, ProductQuantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete elimina una transacción deshaciendo exactamente su delta sobre el
// producto (revert relativo al delta, no al valor absoluto). No aplica guarda
// de stock negativo: un resultado negativo delata una inconsistencia previa y
// se reporta en el log en lugar de bloquear el borrado.
func (uc *UseCase) Delete(ctx context.Context, actor Actor, transactionID string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		tx, err := txRepo.GetByID(transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}

		product, err := productRepo.GetByIDForUpdate(tx.ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			reverted := product.Quantity - tx.Quantity
			if reverted < 0 {
				uc.log.Warn().
					Str("product_id", product.ID).
					Str("transaction_id", tx.ID).
					Int64("reverted_quantity", reverted).
					Msg("borrado de transacción deja stock negativo")
			}
			if err := productRepo.UpdateQuantity(product.ID, reverted); err != nil {
				return err
			}
		}

		if err := txRepo.Delete(tx.ID); err != nil {
			return err
		}

		return auditRepo.Create(&entity.AuditLog{
			ID:        uuid.New().String(),
			UserID:    actor.ID,
			UserName:  actor.FullName,
			Action:    entity.AuditActionDelete,
			Entity:    auditEntityTransaction,
			EntityID:  tx.ID,
			Detail:    fmt.Sprintf("borrado: %s %+d sobre %s revertido", tx.TransactionType, tx.Quantity, tx.ProductName),
			CreatedAt: time.Now(),
		})
	})
}

// List devuelve transacciones paginadas, más reciente primero.
func (uc *UseCase) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return uc.txRepo.List(limit, offset)
}

// GetByID devuelve una transacción o ErrNotFound.
func (uc *UseCase) GetByID(id string) (*entity.StockTransaction, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return tx, nil
}

// AuditTrail devuelve el historial de auditoría de una transacción, incluso si
// la transacción ya fue borrada (su rastro de auditoría sobrevive al borrado).
func (uc *UseCase) AuditTrail(transactionID string) ([]*entity.AuditLog, error) {
	return uc.auditRepo.ListByEntity(auditEntityTransaction, transactionID)
}
