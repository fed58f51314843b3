package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// SubmitMovementUseCase es la única vía de admisión de movimientos al
// ledger. Encapsula la verificación de stock suficiente para salidas.
//
// El chequeo stock-actual vs cantidad-solicitada y el append corren dentro
// de una transacción con la fila del producto bloqueada (SELECT FOR UPDATE),
// de modo que dos submits concurrentes sobre el mismo producto se serializan
// y el stock nunca queda negativo ni se descuenta dos veces. Submits sobre
// productos distintos no se bloquean entre sí.
type SubmitMovementUseCase struct {
	txRunner TxRunner
	calc     *StockCalculator
}

// NewSubmitMovementUseCase construye el caso de uso.
func NewSubmitMovementUseCase(txRunner TxRunner, calc *StockCalculator) *SubmitMovementUseCase {
	return &SubmitMovementUseCase{txRunner: txRunner, calc: calc}
}

// SubmitMovementInput entrada para registrar un movimiento.
type SubmitMovementInput struct {
	ProductID string
	Tipo      string // entrada | salida
	Cantidad  int64
	UserID    string
	Motivo    string // opcional
}

// Submit valida y registra un movimiento. Devuelve el ID asignado.
//
// Errores de validación: ErrInvalidQuantity, ErrInvalidMovementType,
// ErrProductNotFound, *InsufficientStockError. Ante cualquier rechazo no se
// escribe nada. Fecha e ID los asigna el servidor al aceptar.
func (uc *SubmitMovementUseCase) Submit(ctx context.Context, input SubmitMovementInput) (string, error) {
	if input.Cantidad <= 0 {
		return "", domain.ErrInvalidQuantity
	}
	if !entity.ValidMovementType(input.Tipo) {
		return "", domain.ErrInvalidMovementType
	}
	if input.ProductID == "" || input.UserID == "" {
		return "", domain.ErrInvalidInput
	}

	var movementID string
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Punto de serialización por producto: bloquea la fila hasta el commit.
		product, err := productRepo.GetByIDForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		if input.Tipo == entity.MovementTypeSalida {
			delta, err := movRepo.SumByProduct(ctx, input.ProductID)
			if err != nil {
				return err
			}
			stock := uc.calc.FromDelta(product, delta)
			if input.Cantidad > stock {
				return &domain.InsufficientStockError{
					ProductID: input.ProductID,
					Available: stock,
					Requested: input.Cantidad,
				}
			}
		}

		now := time.Now()
		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Tipo:      input.Tipo,
			Cantidad:  input.Cantidad,
			Fecha:     now,
			Motivo:    input.Motivo,
			CreatedBy: input.UserID,
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		movementID = mov.ID
		return nil
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}
