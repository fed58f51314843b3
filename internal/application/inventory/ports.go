package inventory

import (
	"context"

	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o el movimiento queda persistido completo, o no queda nada
// (incluso si el ctx se cancela a mitad del submit).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
