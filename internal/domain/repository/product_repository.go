package repository

import (
	"context"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
)

// ProductFilter filtro para listados de catálogo. Search compara contra
// nombre, laboratorio y lote.
type ProductFilter struct {
	Search        string
	Refrigeracion *bool
	Limit         int
	Offset        int
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Es el punto de serialización por producto del motor de movimientos:
	// dos submits concurrentes sobre el mismo producto se ordenan aquí.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)

	// Update actualiza campos descriptivos y stock mínimo. La cantidad
	// inicial no se toca una vez existen movimientos (el stock vive en el
	// ledger, no en la fila del producto).
	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListAll devuelve el catálogo completo (evaluación de alertas, reportes).
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
