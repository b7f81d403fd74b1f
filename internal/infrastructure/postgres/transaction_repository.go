package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, product_id, product_name, user_id, user_name, transaction_type, quantity, reason, transaction_date, edited_by, edited_at, edit_reason`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una nueva transacción del ledger (quantity es el delta resuelto).
func (r *TransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.ProductName, tx.UserID, tx.UserName,
		tx.TransactionType, tx.Quantity, tx.Reason, tx.TransactionDate,
		tx.EditedBy, tx.EditedAt, tx.EditReason,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID. Devuelve (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stock_transactions WHERE id = $1`
	var t entity.StockTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.ProductName, &t.UserID, &t.UserName,
		&t.TransactionType, &t.Quantity, &t.Reason, &t.TransactionDate,
		&t.EditedBy, &t.EditedAt, &t.EditReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// Update persiste los cambios de la ruta de edición (delta, producto, tipo y
// campos de auditoría de edición; transaction_date y reason no cambian aquí
// porque el use case los preserva en la entidad).
func (r *TransactionRepo) Update(tx *entity.StockTransaction) error {
	query := `
		UPDATE stock_transactions SET product_id = $2, product_name = $3, transaction_type = $4,
			quantity = $5, reason = $6, edited_by = $7, edited_at = $8, edit_reason = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.ProductName, tx.TransactionType,
		tx.Quantity, tx.Reason, tx.EditedBy, tx.EditedAt, tx.EditReason,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción por ID.
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List devuelve transacciones paginadas, fecha descendente.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stock_transactions ORDER BY transaction_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByProduct devuelve todas las transacciones de un producto, fecha descendente.
func (r *TransactionRepo) ListByProduct(productID string) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stock_transactions WHERE product_id = $1 ORDER BY transaction_date DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by product: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// CountByProduct cuenta las transacciones que referencian un producto.
func (r *TransactionRepo) CountByProduct(productID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM stock_transactions WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions by product: %w", err)
	}
	return count, nil
}

func collectTransactions(rows pgx.Rows) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(
			&t.ID, &t.ProductID, &t.ProductName, &t.UserID, &t.UserName,
			&t.TransactionType, &t.Quantity, &t.Reason, &t.TransactionDate,
			&t.EditedBy, &t.EditedAt, &t.EditReason,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
