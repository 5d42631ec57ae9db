package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// defaultSummaryTTL expiración del resumen cacheado. Es un respaldo: la
// invalidación principal es explícita en cada escritura (movimientos y CRUD de
// productos).
const defaultSummaryTTL = 2 * time.Minute

// StockReportPDFGenerator renderiza el resumen de stock como PDF.
type StockReportPDFGenerator interface {
	GenerateStockSummaryPDF(ctx context.Context, rows []dto.StockSummaryRow, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase agrega el resumen de stock de todos los productos con cache
// read-through: primero la cache; en miss calcula desde la BD y puebla la
// cache. La cache nunca es fuente de verdad para calcular stock.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	cache       ports.CacheService
	pdf         StockReportPDFGenerator
	ttl         time.Duration
}

// NewReportUseCase construye el caso de uso. ttl <= 0 usa el valor por defecto.
func NewReportUseCase(productRepo repository.ProductRepository, cache ports.CacheService, pdf StockReportPDFGenerator, ttl time.Duration) *ReportUseCase {
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &ReportUseCase{productRepo: productRepo, cache: cache, pdf: pdf, ttl: ttl}
}

// GetStockSummary devuelve el resumen de stock, ordenado por código.
func (uc *ReportUseCase) GetStockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	var cached []dto.StockSummaryRow
	hit, err := uc.cache.Get(ctx, ports.CacheKeyStockSummary, &cached)
	if err == nil && hit {
		return &dto.StockSummaryResponse{Items: cached, FromCache: true}, nil
	}
	// Un error de cache degrada al camino sin cache, nunca falla la lectura.

	rows, err := uc.computeSummary()
	if err != nil {
		return nil, err
	}
	_ = uc.cache.Set(ctx, ports.CacheKeyStockSummary, rows, uc.ttl)
	return &dto.StockSummaryResponse{Items: rows, FromCache: false}, nil
}

// GetStockSummaryPDF genera el resumen como PDF (mismas filas que el JSON).
func (uc *ReportUseCase) GetStockSummaryPDF(ctx context.Context) ([]byte, error) {
	summary, err := uc.GetStockSummary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockSummaryPDF(ctx, summary.Items, time.Now())
}

func (uc *ReportUseCase) computeSummary() ([]dto.StockSummaryRow, error) {
	products, err := uc.productRepo.ListWithCategory()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockSummaryRow, 0, len(products))
	for _, p := range products {
		row := dto.StockSummaryRow{
			ProductID:    p.ID,
			Code:         p.Code,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
		}
		if p.Category != nil {
			row.Category = p.Category.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}
