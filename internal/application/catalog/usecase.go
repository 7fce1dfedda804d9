// Package catalog implementa el catálogo de autos (AssetCatalog): alta, edición y listado.
// Toda mutación es exclusiva del operador configurado.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/application/ports"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// CatalogUseCase casos de uso del catálogo de autos.
type CatalogUseCase struct {
	txRunner   ports.TxRunner
	carRepo    repository.CarRepository
	operatorID string
	now        ports.Clock
	log        *logger.Logger
}

// NewCatalogUseCase construye el caso de uso. operatorID es el único principal con permisos de escritura.
func NewCatalogUseCase(
	txRunner ports.TxRunner,
	carRepo repository.CarRepository,
	operatorID string,
	clock ports.Clock,
	log *logger.Logger,
) *CatalogUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &CatalogUseCase{
		txRunner:   txRunner,
		carRepo:    carRepo,
		operatorID: operatorID,
		now:        clock,
		log:        log.Component("catalog"),
	}
}

// AddCar da de alta un auto disponible y devuelve el registro con su ID secuencial.
func (uc *CatalogUseCase) AddCar(ctx context.Context, callerID string, in dto.CarInput) (*dto.CarResponse, error) {
	if !uc.isOperator(callerID) {
		return nil, domain.ErrUnauthorized
	}
	if err := validateCarInput(in); err != nil {
		return nil, err
	}
	now := uc.now()
	car := &entity.Car{
		Name:      strings.TrimSpace(in.Name),
		ImageURL:  in.ImageURL,
		RentFee:   in.RentFee,
		SaleFee:   in.SaleFee,
		Status:    entity.CarStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		return repos.Cars.Create(ctx, car)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("car_id", car.ID).Str("name", car.Name).Int64("rent_fee", car.RentFee).Msg("auto agregado")
	return toCarResponse(car), nil
}

// GetCar obtiene un auto por ID.
func (uc *CatalogUseCase) GetCar(ctx context.Context, id int64) (*dto.CarResponse, error) {
	car, err := uc.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrCarNotFound
	}
	return toCarResponse(car), nil
}

// EditCarMetadata sobrescribe nombre, imagen, tarifa de renta y precio de venta.
// No altera Status ni RentedBy; la nueva tarifa aplica a las devoluciones posteriores.
func (uc *CatalogUseCase) EditCarMetadata(ctx context.Context, callerID string, id int64, in dto.CarInput) (*dto.CarResponse, error) {
	if !uc.isOperator(callerID) {
		return nil, domain.ErrUnauthorized
	}
	if err := validateCarInput(in); err != nil {
		return nil, err
	}
	var out *entity.Car
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		car, err := repos.Cars.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if car == nil {
			return domain.ErrCarNotFound
		}
		car.Name = strings.TrimSpace(in.Name)
		car.ImageURL = in.ImageURL
		car.RentFee = in.RentFee
		car.SaleFee = in.SaleFee
		car.UpdatedAt = uc.now()
		out = car
		return repos.Cars.Update(ctx, car)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("car_id", id).Msg("metadatos de auto editados")
	return toCarResponse(out), nil
}

// EditCarStatus cambia el estado entre AVAILABLE y UNAVAILABLE.
// RENTED solo lo asigna el flujo de renta; intentarlo (o mover un auto rentado) es ErrInvalidTransition.
func (uc *CatalogUseCase) EditCarStatus(ctx context.Context, callerID string, id int64, status string) (*dto.CarResponse, error) {
	if !uc.isOperator(callerID) {
		return nil, domain.ErrUnauthorized
	}
	next := entity.CarStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !next.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if next == entity.CarStatusRented {
		return nil, domain.ErrInvalidTransition
	}
	var out *entity.Car
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		car, err := repos.Cars.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if car == nil {
			return domain.ErrCarNotFound
		}
		if car.Status == entity.CarStatusRented {
			return domain.ErrInvalidTransition
		}
		out = car
		if car.Status == next {
			return nil
		}
		car.Status = next
		car.UpdatedAt = uc.now()
		return repos.Cars.Update(ctx, car)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("car_id", id).Str("status", string(next)).Msg("estado de auto editado")
	return toCarResponse(out), nil
}

// ListCars lista el catálogo con filtro opcional de estado, ordenado por ID.
func (uc *CatalogUseCase) ListCars(ctx context.Context, status string, page dto.PageRequest) (*dto.CarListResponse, error) {
	page.DefaultPage()
	filter := repository.CarFilter{Limit: page.Limit, Offset: page.Offset}
	if status != "" {
		filter.Status = entity.CarStatus(strings.ToUpper(status))
		if !filter.Status.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.carRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.carRepo.Count(ctx, filter.Status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCarResponse(c))
	}
	return &dto.CarListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// CountCars total de autos registrados (el último ID asignado).
func (uc *CatalogUseCase) CountCars(ctx context.Context) (int64, error) {
	return uc.carRepo.Count(ctx, "")
}

func (uc *CatalogUseCase) isOperator(callerID string) bool {
	return callerID != "" && callerID == uc.operatorID
}

func validateCarInput(in dto.CarInput) error {
	if strings.TrimSpace(in.Name) == "" || in.RentFee <= 0 || in.SaleFee < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	if c == nil {
		return nil
	}
	return &dto.CarResponse{
		ID:        c.ID,
		Name:      c.Name,
		ImageURL:  c.ImageURL,
		RentFee:   c.RentFee,
		SaleFee:   c.SaleFee,
		Status:    string(c.Status),
		RentedBy:  c.RentedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
