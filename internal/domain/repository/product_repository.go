package repository

import "github.com/dtltrading/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE). Solo tiene sentido
	// dentro de una transacción del TxRunner.
	GetByIDForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity actualiza solo el stock (usado por el reconciliador del ledger).
	UpdateQuantity(productID string, quantity int64) error
	// UpdateCategoryName refresca la caché CategoryName de todos los productos
	// de la categoría. Devuelve cuántas filas tocó.
	UpdateCategoryName(categoryID, categoryName string) (int64, error)
	List(limit, offset int) ([]*entity.Product, error)
	CountByCategory(categoryID string) (int64, error)
	Delete(id string) error
}
