package inventory

import (
	"context"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

const defaultMovementPageSize = 50

// QueryUseCase lecturas del ledger y del stock (sin efectos secundarios).
type QueryUseCase struct {
	movRepo repository.MovementRepository
	calc    *StockCalculator
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(movRepo repository.MovementRepository, calc *StockCalculator) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, calc: calc}
}

// GetEffectiveStock stock efectivo actual de un producto.
func (uc *QueryUseCase) GetEffectiveStock(ctx context.Context, productID string) (int64, error) {
	return uc.calc.ComputeStock(ctx, productID)
}

// ListMovements movimientos que cumplen el filtro, el más reciente primero.
func (uc *QueryUseCase) ListMovements(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultMovementPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.movRepo.List(ctx, filter)
}

// RecentMovements últimos movimientos del ledger (widget del dashboard).
func (uc *QueryUseCase) RecentMovements(ctx context.Context, limit int) ([]*entity.Movement, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.movRepo.List(ctx, repository.MovementFilter{Limit: limit})
}
