package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/internal/domain/repository"
	"github.com/dtltrading/almacen-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo se mueve vía
// transacciones del ledger (o edición directa explícita del campo quantity).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRepo       repository.TransactionRepository
	auditRepo    repository.AuditLogRepository
	log          *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	txRepo repository.TransactionRepository,
	auditRepo repository.AuditLogRepository,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, txRepo: txRepo, auditRepo: auditRepo, log: log}
}

// Create crea un producto. CategoryName se cachea desde la categoría al momento
// de escribir; SKU debe ser único.
func (uc *ProductUseCase) Create(actor ledger.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.UnitCost.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProductStatusActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Name:         in.Name,
		SKU:          in.SKU,
		Unit:         in.Unit,
		UnitCost:     in.UnitCost,
		SellingPrice: in.SellingPrice,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		ExpiryDate:   in.ExpiryDate,
		Location:     in.Location,
		Supplier:     in.Supplier,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.audit(actor, entity.AuditActionCreate, product.ID, fmt.Sprintf("producto %q creado (stock inicial %d)", product.Name, product.Quantity))
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Si cambia la categoría, re-cachea CategoryName.
func (uc *ProductUseCase) Update(actor ledger.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitCost = *in.UnitCost
	}
	if in.SellingPrice != nil {
		if in.SellingPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SellingPrice = *in.SellingPrice
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.audit(actor, entity.AuditActionUpdate, product.ID, fmt.Sprintf("producto %q actualizado", product.Name))
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. Se rechaza con ErrConflict mientras existan
// transacciones que lo referencien: borrar dejaría deltas colgantes en el ledger.
func (uc *ProductUseCase) Delete(actor ledger.Actor, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.txRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit(actor, entity.AuditActionDelete, id, fmt.Sprintf("producto %q eliminado", product.Name))
	return nil
}

// audit escribe la entrada de auditoría fuera de transacción (best-effort).
func (uc *ProductUseCase) audit(actor ledger.Actor, action, entityID, detail string) {
	err := uc.auditRepo.Create(&entity.AuditLog{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		UserName:  actor.FullName,
		Action:    action,
		Entity:    "product",
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now(),
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("entity_id", entityID).Msg("no se pudo escribir auditoría de producto")
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Name:         p.Name,
		SKU:          p.SKU,
		Unit:         p.Unit,
		UnitCost:     p.UnitCost,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		ExpiryDate:   p.ExpiryDate,
		Location:     p.Location,
		Supplier:     p.Supplier,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
