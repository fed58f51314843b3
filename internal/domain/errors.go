package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
//
// Los errores de validación (cantidad inválida, producto inexistente, stock
// insuficiente) son corregibles por el usuario: se devuelven al caller tal
// cual y nunca se reintentan ni se registran como fallas del sistema. Los
// errores de infraestructura se envuelven con %w en los adaptadores.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("la cantidad debe ser mayor a cero")
	ErrInvalidMovementType = errors.New("tipo de movimiento inválido")
	ErrInvalidDates        = errors.New("la fecha de vencimiento debe ser posterior a la de fabricación")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrProductHasMovements = errors.New("el producto tiene movimientos asociados")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)

// InsufficientStockError rechazo de una salida por stock insuficiente.
// Incluye el stock disponible al momento de la validación para que el
// cliente pueda mostrarlo sin otra consulta.
type InsufficientStockError struct {
	ProductID string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
