package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock nunca se toca
// aquí: inicia en 0 al crear y solo cambia vía el motor de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	movRepo      repository.StockMovementRepository
	cache        ports.CacheService
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movRepo repository.StockMovementRepository,
	cache ports.CacheService,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, movRepo: movRepo, cache: cache}
}

// Create crea un producto con stock 0. Code/Name en blanco o categoría
// inexistente -> ErrInvalidInput; código duplicado -> ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	categoryExists, err := uc.categoryRepo.ExistsByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !categoryExists {
		return nil, domain.ErrInvalidInput
	}
	codeExists, err := uc.repo.CodeExists(code, "")
	if err != nil {
		return nil, err
	}
	if codeExists {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         name,
		CategoryID:   in.CategoryID,
		CurrentStock: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	_ = uc.cache.Remove(ctx, ports.CacheKeyStockSummary)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con su categoría resuelta; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDWithCategory(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos con su categoría, ordenados por código.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListWithCategory()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Update actualiza código, nombre y categoría. El chequeo de unicidad del
// código excluye al propio registro. CurrentStock no se modifica.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	categoryExists, err := uc.categoryRepo.ExistsByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !categoryExists {
		return nil, domain.ErrInvalidInput
	}
	codeExists, err := uc.repo.CodeExists(code, id)
	if err != nil {
		return nil, err
	}
	if codeExists {
		return nil, domain.ErrDuplicate
	}
	product.Code = code
	product.Name = name
	product.CategoryID = in.CategoryID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	_ = uc.cache.Remove(ctx, ports.CacheKeyStockSummary)
	return toProductResponse(product), nil
}

// Delete elimina un producto sin historial. Con movimientos -> ErrConflict:
// el libro mayor es inmutable y borrar el producto lo dejaría huérfano.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	hasMovements, err := uc.movRepo.HasMovementsForProduct(id)
	if err != nil {
		return err
	}
	if hasMovements {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	_ = uc.cache.Remove(ctx, ports.CacheKeyStockSummary)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		CurrentStock: p.CurrentStock,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}
