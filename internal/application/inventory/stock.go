// Package inventory implementa el motor de inventario por ledger: el stock
// efectivo de un producto SIEMPRE se deriva de la cantidad inicial más el
// historial de movimientos, nunca de un contador mutable que pueda
// desincronizarse del ledger.
package inventory

import (
	"context"

	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
	"github.com/farmasys/farmastock-api/pkg/logger"
)

// StockCalculator calcula el stock efectivo de un producto:
//
//	stock = cantidad_inicial + Σentradas − Σsalidas
//
// Aritmética int64 en todo el recorrido. Sin caché: el ledger de una
// farmacia es pequeño (miles de movimientos por producto, no millones) y la
// corrección va primero.
type StockCalculator struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	log         *logger.Logger

	// OnConsistencyWarning se invoca cuando el stock calculado sería
	// negativo antes del clamp. Un negativo indica corrupción previa o un
	// validador saltado, no un error de la petición actual: se reporta al
	// colaborador operacional y el valor devuelto se fija en 0.
	OnConsistencyWarning func(productID string, computed int64)
}

// NewStockCalculator construye el calculador.
func NewStockCalculator(productRepo repository.ProductRepository, movRepo repository.MovementRepository, log *logger.Logger) *StockCalculator {
	return &StockCalculator{productRepo: productRepo, movRepo: movRepo, log: log}
}

// ComputeStock devuelve el stock efectivo actual del producto (>= 0).
func (c *StockCalculator) ComputeStock(ctx context.Context, productID string) (int64, error) {
	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrProductNotFound
	}
	delta, err := c.movRepo.SumByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return c.FromDelta(product, delta), nil
}

// FromDelta pliega la cantidad inicial con las sumas del ledger y aplica el
// clamp en 0. Se usa tanto fuera como dentro de transacciones
// (con los repos atados a la tx el caller obtiene delta y producto él mismo).
func (c *StockCalculator) FromDelta(product *entity.Product, delta repository.StockDelta) int64 {
	stock := product.CantidadInicial + delta.Entradas - delta.Salidas
	if stock < 0 {
		c.log.Warn().
			Str("product_id", product.ID).
			Int64("computed_stock", stock).
			Int64("cantidad_inicial", product.CantidadInicial).
			Int64("entradas", delta.Entradas).
			Int64("salidas", delta.Salidas).
			Msg("stock calculado negativo: inconsistencia en el ledger")
		if c.OnConsistencyWarning != nil {
			c.OnConsistencyWarning(product.ID, stock)
		}
		return 0
	}
	return stock
}

// ComputeAll devuelve el stock efectivo de todos los productos con una sola
// consulta de sumas agrupadas sobre el ledger.
func (c *StockCalculator) ComputeAll(ctx context.Context, products []*entity.Product) (map[string]int64, error) {
	deltas, err := c.movRepo.SumAll(ctx)
	if err != nil {
		return nil, err
	}
	stocks := make(map[string]int64, len(products))
	for _, p := range products {
		stocks[p.ID] = c.FromDelta(p, deltas[p.ID])
	}
	return stocks, nil
}
