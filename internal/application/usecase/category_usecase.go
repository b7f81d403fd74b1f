package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
	"github.com/dtltrading/almacen-api/pkg/logger"
)

const maxCategoryDescription = 30 // regla heredada del formulario de categorías

// CategoryUseCase casos de uso para categorías, incluida la cascada de
// CategoryName a productos al renombrar.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	auditRepo   repository.AuditLogRepository
	log         *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	repo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo, auditRepo: auditRepo, log: log}
}

// Create crea una categoría. Name es único sin distinguir mayúsculas.
func (uc *CategoryUseCase) Create(actor ledger.Actor, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len(in.Description) > maxCategoryDescription {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	uc.audit(actor, entity.AuditActionCreate, category.ID, fmt.Sprintf("categoría %q creada", category.Name))
	return toCategoryResponse(category), nil
}

// Update edita una categoría. Si cambia el nombre, cascadea la caché
// CategoryName a todos los productos que la referencian. La cascada es
// best-effort: si falla, el rename ya quedó persistido y solo se registra en
// el log (comportamiento de referencia, no se revierte).
func (uc *CategoryUseCase) Update(actor ledger.Actor, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	renamed := false
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(name, category.Name) {
			dup, err := uc.repo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if dup != nil && dup.ID != category.ID {
				return nil, domain.ErrDuplicate
			}
		}
		renamed = name != category.Name
		category.Name = name
	}
	if in.Description != nil {
		if len(*in.Description) > maxCategoryDescription {
			return nil, domain.ErrInvalidInput
		}
		category.Description = strings.TrimSpace(*in.Description)
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}

	if renamed {
		updated, err := uc.productRepo.UpdateCategoryName(category.ID, category.Name)
		if err != nil {
			uc.log.Error().Err(err).
				Str("category_id", category.ID).
				Str("new_name", category.Name).
				Msg("cascada de category_name falló; productos con caché desactualizada")
		} else {
			uc.log.Info().
				Str("category_id", category.ID).
				Int64("products_updated", updated).
				Msg("cascada de category_name aplicada")
		}
	}

	uc.audit(actor, entity.AuditActionUpdate, category.ID, fmt.Sprintf("categoría %q actualizada", category.Name))
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría. Se rechaza con ErrConflict mientras existan
// productos que la referencien.
func (uc *CategoryUseCase) Delete(actor ledger.Actor, id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit(actor, entity.AuditActionDelete, id, fmt.Sprintf("categoría %q eliminada", category.Name))
	return nil
}

func (uc *CategoryUseCase) audit(actor ledger.Actor, action, entityID, detail string) {
	err := uc.auditRepo.Create(&entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		UserName:  actor.FullName,
		Action:    action,
		Entity:    "category",
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("entity_id", entityID).Msg("no se pudo escribir auditoría de categoría")
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
