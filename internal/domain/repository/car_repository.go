package repository

import (
	"context"

	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
)

// CarFilter criterios de listado del catálogo. Status vacío = todos.
type CarFilter struct {
	Status entity.CarStatus
	Limit  int
	Offset int
}

// CarRepository define el puerto de persistencia para Car.
type CarRepository interface {
	// Create asigna el siguiente ID secuencial en car.ID.
	Create(ctx context.Context, car *entity.Car) error
	GetByID(ctx context.Context, id int64) (*entity.Car, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Car, error)
	Update(ctx context.Context, car *entity.Car) error
	List(ctx context.Context, filter CarFilter) ([]*entity.Car, error)
	// Count cuenta los autos con el estado indicado; vacío = todos.
	Count(ctx context.Context, status entity.CarStatus) (int64, error)
}
