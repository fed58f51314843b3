package usecase

import (
	"context"

	"github.com/farmasys/farmastock-api/internal/application/dto"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// UserUseCase lecturas de usuarios para la pantalla de administración.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID (nil si no existe).
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return dto.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, limit, offset int) ([]*dto.UserResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	users, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}
