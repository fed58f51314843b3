package repository

import (
	"context"
	"time"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
)

// MovementFilter filtro explícito para listar movimientos. Todos los campos
// son opcionales y se combinan con AND.
type MovementFilter struct {
	ProductID  string
	Tipo       string // entrada | salida
	FechaDesde *time.Time
	FechaHasta *time.Time
	Limit      int
	Offset     int
}

// StockDelta suma de entradas y salidas de un producto en el ledger.
type StockDelta struct {
	Entradas int64
	Salidas  int64
}

// MovementRepository puerto de persistencia del ledger de movimientos.
//
// El ledger es append-only: la interfaz no expone Update ni Delete. Create
// es la única escritura y persiste siempre un registro completo; nunca se
// observa una escritura parcial.
type MovementRepository interface {
	// Create agrega un movimiento al ledger.
	Create(ctx context.Context, movement *entity.Movement) error

	// List devuelve movimientos que cumplen el filtro, el más reciente primero.
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)

	// SumByProduct suma entradas y salidas de un producto sobre todo su historial.
	SumByProduct(ctx context.Context, productID string) (StockDelta, error)

	// SumAll suma entradas y salidas agrupadas por producto en una sola
	// consulta (evita una consulta por producto al evaluar alertas).
	SumAll(ctx context.Context) (map[string]StockDelta, error)

	// CountByProduct número de movimientos que referencian al producto.
	CountByProduct(ctx context.Context, productID string) (int64, error)
}
