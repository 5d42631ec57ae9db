package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/cache"
)

func newCategoryUC(repo *fakeCategoryRepo) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(repo, cache.NewMemoryCache(true))
}

func TestCategoryCreate(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := newCategoryUC(repo)

	out, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Electronics", out.Name)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCategoryCreate_NombreEnBlanco(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo())

	for _, name := range []string{"", "   "} {
		_, err := uc.Create(context.Background(), dto.CategoryRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre %q debe rechazarse", name)
	}
}

// El nombre de categoría es único global.
func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Electronics"}))

	_, err := uc.Create(context.Background(), dto.CategoryRequest{Name: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryGetByID_NoExiste(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo())

	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "categoría inexistente devuelve nil sin error")
}

// Actualizar al mismo nombre es válido: el chequeo de unicidad excluye
// al propio registro.
func TestCategoryUpdate_MismoNombreEsValido(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Electronics", CreatedAt: time.Now()})
	uc := newCategoryUC(repo)

	out, err := uc.Update(context.Background(), "cat-1", dto.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", out.Name)
}

func TestCategoryUpdate_NombreDeOtraCategoria(t *testing.T) {
	repo := newFakeCategoryRepo(
		&entity.Category{ID: "cat-1", Name: "Electronics"},
		&entity.Category{ID: "cat-2", Name: "Furniture"},
	)
	uc := newCategoryUC(repo)

	_, err := uc.Update(context.Background(), "cat-2", dto.CategoryRequest{Name: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_NoExiste(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo())

	_, err := uc.Update(context.Background(), "no-existe", dto.CategoryRequest{Name: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Electronics"})
	uc := newCategoryUC(repo)

	require.NoError(t, uc.Delete(context.Background(), "cat-1"))
	_, ok := repo.categories["cat-1"]
	assert.False(t, ok)
}

// Una categoría con productos no puede borrarse.
func TestCategoryDelete_ConProductos(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Electronics"})
	repo.productsIn["cat-1"] = true
	uc := newCategoryUC(repo)

	err := uc.Delete(context.Background(), "cat-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, ok := repo.categories["cat-1"]
	assert.True(t, ok, "la categoría debe seguir existiendo")
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	uc := newCategoryUC(newFakeCategoryRepo())
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNotFound)
}
