package repository

import "github.com/dtltrading/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// GetByID y FindByEmail devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePassword(userID, passwordHash string) error
	List() ([]*entity.User, error)
}
