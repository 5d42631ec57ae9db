package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/cache"
)

const catID = "cat-1"

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo, *fakeMovementRepo) {
	categoryRepo := newFakeCategoryRepo(&entity.Category{ID: catID, Name: "Electronics"})
	productRepo := newFakeProductRepo()
	movRepo := &fakeMovementRepo{}
	uc := usecase.NewProductUseCase(productRepo, categoryRepo, movRepo, cache.NewMemoryCache(true))
	return uc, productRepo, movRepo
}

func TestProductCreate(t *testing.T) {
	uc, _, _ := newProductFixture()

	out, err := uc.Create(context.Background(), dto.ProductRequest{
		Code: "PRD-001", Name: "Teclado mecánico", CategoryID: catID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "PRD-001", out.Code)
	assert.Equal(t, int64(0), out.CurrentStock, "todo producto nace con stock 0")
}

func TestProductCreate_Invalido(t *testing.T) {
	uc, _, _ := newProductFixture()
	ctx := context.Background()

	cases := []dto.ProductRequest{
		{Code: "", Name: "Teclado", CategoryID: catID},
		{Code: "PRD-001", Name: "  ", CategoryID: catID},
		{Code: "PRD-001", Name: "Teclado", CategoryID: "no-existe"},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "request %+v debe rechazarse", in)
	}
}

// El código de producto es único global.
func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ProductRequest{Code: "PRD-001", Name: "Teclado", CategoryID: catID})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.ProductRequest{Code: "PRD-001", Name: "Otro teclado", CategoryID: catID})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Actualizar un producto conservando su propio código es válido; tomar el
// código de otro producto no.
func TestProductUpdate_UnicidadDeCodigo(t *testing.T) {
	uc, _, _ := newProductFixture()
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.ProductRequest{Code: "PRD-001", Name: "Teclado", CategoryID: catID})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ProductRequest{Code: "PRD-002", Name: "Mouse", CategoryID: catID})
	require.NoError(t, err)

	// Mismo código propio: ok.
	out, err := uc.Update(ctx, a.ID, dto.ProductRequest{Code: "PRD-001", Name: "Teclado v2", CategoryID: catID})
	require.NoError(t, err)
	assert.Equal(t, "Teclado v2", out.Name)

	// Código de otro producto: duplicado.
	_, err = uc.Update(ctx, a.ID, dto.ProductRequest{Code: "PRD-002", Name: "Teclado", CategoryID: catID})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Update nunca toca CurrentStock.
func TestProductUpdate_NoTocaStock(t *testing.T) {
	uc, productRepo, _ := newProductFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductRequest{Code: "PRD-001", Name: "Teclado", CategoryID: catID})
	require.NoError(t, err)
	productRepo.products[created.ID].CurrentStock = 7

	out, err := uc.Update(ctx, created.ID, dto.ProductRequest{Code: "PRD-001", Name: "Teclado v2", CategoryID: catID})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.CurrentStock)
}

func TestProductDelete_SinHistorial(t *testing.T) {
	uc, productRepo, _ := newProductFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductRequest{Code: "PRD-001", Name: "Teclado", CategoryID: catID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, ok := productRepo.products[created.ID]
	assert.False(t, ok)
}

// Un producto con movimientos no puede borrarse: el libro mayor es inmutable.
func TestProductDelete_ConHistorial(t *testing.T) {
	uc, productRepo, movRepo := newProductFixture()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.ProductRequest{Code: "PRD-001", Name: "Teclado", CategoryID: catID})
	require.NoError(t, err)
	movRepo.movements = append(movRepo.movements, &entity.StockMovement{
		ID: "mov-1", ProductID: created.ID, IsIn: true, Quantity: 1,
	})

	err = uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, ok := productRepo.products[created.ID]
	assert.True(t, ok, "el producto debe seguir existiendo")
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc, _, _ := newProductFixture()

	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
