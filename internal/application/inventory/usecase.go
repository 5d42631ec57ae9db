package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase es el único camino autorizado para cambiar
// CurrentStock: inserta el movimiento inmutable y ajusta el stock
// desnormalizado dentro de una misma transacción.
//
// La verificación de no-negatividad vive en el UPDATE condicional de
// AdjustStock, no en una lectura previa: dos movimientos concurrentes sobre el
// mismo producto serializan en la BD y ninguno puede pasar el chequeo con un
// valor obsoleto.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	cache       ports.CacheService
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	cache ports.CacheService,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
		cache:       cache,
	}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	IsIn      bool
	Quantity  int64
	UserID    string // actor autenticado; obligatorio
}

// RecordMovement registra una entrada o salida de stock.
//
// Valida quantity > 0 y actor presente; dentro de una transacción aplica el
// delta con AdjustStock (rechaza ErrInsufficientStock si una salida dejaría el
// stock negativo, ErrNotFound si el producto no existe) y agrega el movimiento
// al libro mayor. Nunca es observable un estado parcial.
//
// Tras el commit invalida el resumen de stock cacheado (best-effort).
func (uc *RegisterMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (*dto.MovementResult, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	delta := input.Quantity
	if !input.IsIn {
		delta = -input.Quantity
	}

	var result *dto.MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		newStock, err := productRepo.AdjustStock(input.ProductID, delta)
		if err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:                uuid.New().String(),
			ProductID:         input.ProductID,
			IsIn:              input.IsIn,
			Quantity:          input.Quantity,
			Timestamp:         time.Now().UTC(),
			PerformedByUserID: input.UserID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		result = &dto.MovementResult{
			MovementID: mov.ID,
			ProductID:  input.ProductID,
			IsIn:       input.IsIn,
			Quantity:   input.Quantity,
			NewStock:   newStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// La cache es best-effort: un fallo al invalidar no revierte el movimiento.
	_ = uc.cache.Remove(ctx, ports.CacheKeyStockSummary)

	return result, nil
}

// GetLedger devuelve el historial completo de movimientos de un producto,
// más reciente primero, junto con el producto y su categoría. Es un snapshot
// finito al momento de la llamada.
func (uc *RegisterMovementUseCase) GetLedger(ctx context.Context, productID string) (*dto.LedgerResponse, error) {
	product, err := uc.productRepo.GetByIDWithCategory(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	resp := &dto.LedgerResponse{
		ProductID:    product.ID,
		ProductCode:  product.Code,
		ProductName:  product.Name,
		CurrentStock: product.CurrentStock,
		Movements:    make([]dto.MovementResponse, 0, len(movements)),
	}
	if product.Category != nil {
		resp.Category = product.Category.Name
	}
	for _, m := range movements {
		resp.Movements = append(resp.Movements, dto.MovementResponse{
			ID:                m.ID,
			IsIn:              m.IsIn,
			Quantity:          m.Quantity,
			Timestamp:         m.Timestamp,
			PerformedByUserID: m.PerformedByUserID,
		})
	}
	return resp, nil
}
