package repository

import (
	"context"

	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Get* devuelve (nil, nil) si el usuario no existe.
type UserRepository interface {
	// Create devuelve domain.ErrAlreadyExists si el principal ya tiene registro.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetForUpdate bloquea el registro hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
