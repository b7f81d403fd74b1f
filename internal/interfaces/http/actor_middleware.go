package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/domain"
)

// actorResolver es el contrato mínimo que necesita el middleware para resolver
// el nombre del actor. Lo implementa *usecase.UserUseCase; el uso de interfaz
// evita el import circular.
type actorResolver interface {
	GetByID(id string) (*dto.UserResponse, error)
}

// LoadActor devuelve un middleware que resuelve el nombre completo del usuario
// autenticado y lo deja en c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → el token referencia un usuario que ya no existe.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func LoadActor(resolver actorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}
		user, err := resolver.GetByID(userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "UNAUTHORIZED",
					Message: "el usuario del token ya no existe",
				})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACTOR_CHECK_FAILED",
				Message: "no se pudo verificar el usuario, intente más tarde",
			})
		}
		c.Locals(LocalUserName, user.FullName)
		return c.Next()
	}
}

// GetActor arma el actor de la petición a partir de los locals cargados por
// AuthMiddleware + LoadActor.
func GetActor(c *fiber.Ctx) ledger.Actor {
	var name string
	if v := c.Locals(LocalUserName); v != nil {
		name, _ = v.(string)
	}
	return ledger.Actor{ID: GetUserID(c), FullName: name}
}
