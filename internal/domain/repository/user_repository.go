package repository

import (
	"context"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// GetByID devuelve nil, nil si el usuario no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail devuelve nil, nil si no hay usuario con ese email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
