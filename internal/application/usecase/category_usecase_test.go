package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/ledger"
	"github.com/dtltrading/almacen-api/internal/application/usecase"
	"github.com/dtltrading/almacen-api/internal/domain"
	"github.com/dtltrading/almacen-api/internal/domain/entity"
	"github.com/dtltrading/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo lo que CategoryUseCase necesita)
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}
func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}
func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for _, c := range r.categories {
		clone := *c
		list = append(list, &clone)
	}
	return list, nil
}
func (r *fakeCategoryRepo) Delete(id string) error { delete(r.categories, id); return nil }

// fakeCascadeProductRepo implementa lo mínimo de ProductRepository que el caso
// de uso toca: la cascada de nombres y el conteo por categoría. cascadeErr
// permite simular una cascada fallida.
type fakeCascadeProductRepo struct {
	products   map[string]*entity.Product
	cascadeErr error
}

func newFakeCascadeProductRepo() *fakeCascadeProductRepo {
	return &fakeCascadeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeCascadeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeCascadeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *fakeCascadeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeCascadeProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }
func (r *fakeCascadeProductRepo) Update(p *entity.Product) error           { r.products[p.ID] = p; return nil }
func (r *fakeCascadeProductRepo) UpdateQuantity(string, int64) error       { return nil }
func (r *fakeCascadeProductRepo) UpdateCategoryName(categoryID, categoryName string) (int64, error) {
	if r.cascadeErr != nil {
		return 0, r.cascadeErr
	}
	var n int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			p.CategoryName = categoryName
			n++
		}
	}
	return n, nil
}
func (r *fakeCascadeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeCascadeProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
func (r *fakeCascadeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeAuditRepo struct {
	logs []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(l *entity.AuditLog) error {
	r.logs = append(r.logs, l)
	return nil
}
func (r *fakeAuditRepo) ListByEntity(string, string) ([]*entity.AuditLog, error) {
	return r.logs, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testActor = ledger.Actor{ID: "user-1", FullName: "Ana Torres"}

func newCategoryTestUseCase() (*usecase.CategoryUseCase, *fakeCategoryRepo, *fakeCascadeProductRepo) {
	categoryRepo := newFakeCategoryRepo()
	productRepo := newFakeCascadeProductRepo()
	uc := usecase.NewCategoryUseCase(categoryRepo, productRepo, &fakeAuditRepo{}, logger.Nop())
	return uc, categoryRepo, productRepo
}

func seedCategory(repo *fakeCategoryRepo, id, name string) {
	repo.categories[id] = &entity.Category{ID: id, Name: name}
}

func seedCategorizedProduct(repo *fakeCascadeProductRepo, id, categoryID, categoryName string) {
	repo.products[id] = &entity.Product{ID: id, Name: "Producto " + id, CategoryID: categoryID, CategoryName: categoryName}
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, repo, _ := newCategoryTestUseCase()
	seedCategory(repo, "c1", "Licores")

	_, err := uc.Create(testActor, dto.CreateCategoryRequest{Name: "LICORES"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryCreate_DescripcionLarga(t *testing.T) {
	uc, _, _ := newCategoryTestUseCase()

	_, err := uc.Create(testActor, dto.CreateCategoryRequest{
		Name:        "Licores",
		Description: strings.Repeat("x", 31),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdate_RenombreCascadeaSoloSusProductos(t *testing.T) {
	uc, categoryRepo, productRepo := newCategoryTestUseCase()
	seedCategory(categoryRepo, "c1", "Rum")
	seedCategory(categoryRepo, "c2", "Vinos")
	seedCategorizedProduct(productRepo, "p1", "c1", "Rum")
	seedCategorizedProduct(productRepo, "p2", "c1", "Rum")
	seedCategorizedProduct(productRepo, "p3", "c2", "Vinos")

	out, err := uc.Update(testActor, "c1", dto.UpdateCategoryRequest{Name: strPtr("Spirits")})
	require.NoError(t, err)
	assert.Equal(t, "Spirits", out.Name)

	assert.Equal(t, "Spirits", productRepo.products["p1"].CategoryName)
	assert.Equal(t, "Spirits", productRepo.products["p2"].CategoryName)
	assert.Equal(t, "Vinos", productRepo.products["p3"].CategoryName, "productos de otra categoría no se tocan")
}

func TestCategoryUpdate_SoloDescripcionNoCascadea(t *testing.T) {
	uc, categoryRepo, productRepo := newCategoryTestUseCase()
	seedCategory(categoryRepo, "c1", "Rum")
	seedCategorizedProduct(productRepo, "p1", "c1", "Rum")
	productRepo.cascadeErr = errors.New("no debería llamarse")

	_, err := uc.Update(testActor, "c1", dto.UpdateCategoryRequest{Description: strPtr("añejos")})
	require.NoError(t, err)
	assert.Equal(t, "Rum", productRepo.products["p1"].CategoryName)
}

func TestCategoryUpdate_CascadaFallidaNoRevierteElRenombre(t *testing.T) {
	uc, categoryRepo, productRepo := newCategoryTestUseCase()
	seedCategory(categoryRepo, "c1", "Rum")
	seedCategorizedProduct(productRepo, "p1", "c1", "Rum")
	productRepo.cascadeErr = errors.New("conexión perdida")

	out, err := uc.Update(testActor, "c1", dto.UpdateCategoryRequest{Name: strPtr("Spirits")})
	require.NoError(t, err, "la cascada es best-effort, el renombre queda")
	assert.Equal(t, "Spirits", out.Name)

	persisted, _ := categoryRepo.GetByID("c1")
	assert.Equal(t, "Spirits", persisted.Name)
	assert.Equal(t, "Rum", productRepo.products["p1"].CategoryName, "la caché queda desactualizada, se reporta en el log")
}

func TestCategoryUpdate_RenombreADuplicado(t *testing.T) {
	uc, categoryRepo, _ := newCategoryTestUseCase()
	seedCategory(categoryRepo, "c1", "Rum")
	seedCategory(categoryRepo, "c2", "Vinos")

	_, err := uc.Update(testActor, "c1", dto.UpdateCategoryRequest{Name: strPtr("vinos")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_ConProductosAsociados(t *testing.T) {
	uc, categoryRepo, productRepo := newCategoryTestUseCase()
	seedCategory(categoryRepo, "c1", "Rum")
	seedCategorizedProduct(productRepo, "p1", "c1", "Rum")

	err := uc.Delete(testActor, "c1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, categoryRepo.categories, "c1")
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	uc, categoryRepo, _ := newCategoryTestUseCase()
	seedCategory(categoryRepo, "c1", "Rum")

	require.NoError(t, uc.Delete(testActor, "c1"))
	assert.NotContains(t, categoryRepo.categories, "c1")
}
