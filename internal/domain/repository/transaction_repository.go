package repository

import "github.com/dtltrading/almacen-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para StockTransaction.
// GetByID devuelve (nil, nil) si no existe.
type TransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	Update(tx *entity.StockTransaction) error
	Delete(id string) error
	// List devuelve transacciones ordenadas por fecha descendente.
	List(limit, offset int) ([]*entity.StockTransaction, error)
	ListByProduct(productID string) ([]*entity.StockTransaction, error)
	CountByProduct(productID string) (int64, error)
}
