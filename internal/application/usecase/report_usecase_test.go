package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/cache"
)

type fakePDFGenerator struct {
	calls int
	rows  []dto.StockSummaryRow
}

func (g *fakePDFGenerator) GenerateStockSummaryPDF(_ context.Context, rows []dto.StockSummaryRow, _ time.Time) ([]byte, error) {
	g.calls++
	g.rows = rows
	return []byte("%PDF-1.4 fake"), nil
}

func newReportFixture() (*usecase.ReportUseCase, *fakeProductRepo, ports.CacheService, *fakePDFGenerator) {
	electronics := &entity.Category{ID: "cat-1", Name: "Electronics"}
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p-1", Code: "PRD-001", Name: "Teclado", CategoryID: electronics.ID,
		CurrentStock: 6, Category: electronics,
	})
	memCache := cache.NewMemoryCache(true)
	pdfGen := &fakePDFGenerator{}
	uc := usecase.NewReportUseCase(productRepo, memCache, pdfGen, 2*time.Minute)
	return uc, productRepo, memCache, pdfGen
}

// Primera lectura: miss, se calcula desde la BD y se puebla la cache.
// Segunda lectura: hit.
func TestStockSummary_ReadThrough(t *testing.T) {
	uc, _, _, _ := newReportFixture()
	ctx := context.Background()

	first, err := uc.GetStockSummary(ctx)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "PRD-001", first.Items[0].Code)
	assert.Equal(t, "Electronics", first.Items[0].Category)
	assert.Equal(t, int64(6), first.Items[0].CurrentStock)

	second, err := uc.GetStockSummary(ctx)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Items, second.Items)
}

// Tras invalidar la clave (lo que hace toda escritura), la siguiente lectura
// recalcula y ve el stock fresco.
func TestStockSummary_RecalculaTrasInvalidacion(t *testing.T) {
	uc, productRepo, memCache, _ := newReportFixture()
	ctx := context.Background()

	_, err := uc.GetStockSummary(ctx)
	require.NoError(t, err)

	productRepo.products["p-1"].CurrentStock = 9
	require.NoError(t, memCache.Remove(ctx, ports.CacheKeyStockSummary))

	out, err := uc.GetStockSummary(ctx)
	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, int64(9), out.Items[0].CurrentStock)
}

// Con la cache apagada toda lectura recalcula; el resultado es el mismo.
func TestStockSummary_CacheApagada(t *testing.T) {
	electronics := &entity.Category{ID: "cat-1", Name: "Electronics"}
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p-1", Code: "PRD-001", Name: "Teclado", CategoryID: electronics.ID,
		CurrentStock: 6, Category: electronics,
	})
	uc := usecase.NewReportUseCase(productRepo, cache.NewMemoryCache(false), &fakePDFGenerator{}, 2*time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := uc.GetStockSummary(ctx)
		require.NoError(t, err)
		assert.False(t, out.FromCache, "con el flag apagado nunca hay hit")
		assert.Equal(t, int64(6), out.Items[0].CurrentStock)
	}
}

// El PDF se genera con las mismas filas que el JSON.
func TestStockSummaryPDF(t *testing.T) {
	uc, _, _, pdfGen := newReportFixture()

	out, err := uc.GetStockSummaryPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, 1, pdfGen.calls)
	require.Len(t, pdfGen.rows, 1)
	assert.Equal(t, "PRD-001", pdfGen.rows[0].Code)
}
