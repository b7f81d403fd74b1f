package repository

import "github.com/dtltrading/almacen-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
// GetByID y GetByName devuelven (nil, nil) si no existe.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca sin distinguir mayúsculas (name es único case-insensitive).
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
