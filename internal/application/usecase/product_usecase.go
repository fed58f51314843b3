package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmasys/farmastock-api/internal/application/dto"
	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para el catálogo de productos.
//
// El stock actual de un producto no vive aquí: se deriva del ledger vía el
// StockCalculator. Este caso de uso solo administra los datos maestros.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.MovementRepository
	calc    *inventory.StockCalculator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.MovementRepository, calc *inventory.StockCalculator) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo, calc: calc}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	fabricacion, err := dto.ParseDate(in.FechaFabricacion)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	vencimiento, err := dto.ParseDate(in.FechaVencimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:                    uuid.New().String(),
		Nombre:                in.Nombre,
		Laboratorio:           in.Laboratorio,
		Proveedor:             in.Proveedor,
		Lote:                  in.Lote,
		Presentacion:          in.Presentacion,
		Ubicacion:             in.Ubicacion,
		NecesitaRefrigeracion: in.NecesitaRefrigeracion,
		FechaFabricacion:      fabricacion,
		FechaVencimiento:      vencimiento,
		StockMinimo:           in.StockMinimo,
		CantidadInicial:       in.CantidadInicial,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID obtiene un producto con su stock efectivo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductWithStockResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	stock, err := uc.calc.ComputeStock(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductWithStockResponse{
		ProductResponse: *dto.ToProductResponse(product),
		StockActual:     stock,
	}, nil
}

// Update modifica campos descriptivos y stock mínimo. La cantidad inicial
// nunca se toca por esta vía: una vez hay movimientos, cambiarla rompería la
// derivación del stock desde el ledger.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}

	product.Nombre = in.Nombre
	product.Laboratorio = in.Laboratorio
	product.Proveedor = in.Proveedor
	product.Lote = in.Lote
	product.Presentacion = in.Presentacion
	product.Ubicacion = in.Ubicacion
	product.NecesitaRefrigeracion = in.NecesitaRefrigeracion
	product.StockMinimo = in.StockMinimo
	product.UpdatedAt = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto solo si ningún movimiento lo referencia; el
// ledger nunca pierde historia por borrar catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	count, err := uc.movRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrProductHasMovements
	}
	return uc.repo.Delete(ctx, id)
}

// List lista productos con filtros y el stock efectivo de cada uno
// (calculado con la consulta agrupada, no una consulta por producto).
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]*dto.ProductWithStockResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	products, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.calc.ComputeAll(ctx, products)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductWithStockResponse, 0, len(products))
	for _, p := range products {
		out = append(out, &dto.ProductWithStockResponse{
			ProductResponse: *dto.ToProductResponse(p),
			StockActual:     stocks[p.ID],
		})
	}
	return out, nil
}
