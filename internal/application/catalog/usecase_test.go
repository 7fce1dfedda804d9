package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentacar-api/internal/application/catalog"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
	"github.com/jhoicas/Rentacar-api/internal/infrastructure/memory"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

const operator = "0xowner"

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newCatalog() (*catalog.CatalogUseCase, *memory.Store) {
	store := memory.NewStore()
	clock := func() time.Time { return fixedNow }
	return catalog.NewCatalogUseCase(store, store.Repos().Cars, operator, clock, logger.Nop()), store
}

var skyline = dto.CarInput{Name: "Nissan Skyline", ImageURL: "example url", RentFee: 10, SaleFee: 50000}

func TestAddCar(t *testing.T) {
	uc, _ := newCatalog()
	ctx := context.Background()

	car, err := uc.AddCar(ctx, operator, skyline)
	require.NoError(t, err)
	assert.Equal(t, int64(1), car.ID)

	got, err := uc.GetCar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nissan Skyline", got.Name)
	assert.Equal(t, "example url", got.ImageURL)
	assert.Equal(t, int64(10), got.RentFee)
	assert.Equal(t, int64(50000), got.SaleFee)
	assert.Equal(t, "AVAILABLE", got.Status)
	assert.Empty(t, got.RentedBy)
	assert.Equal(t, fixedNow, got.CreatedAt)

	second, err := uc.AddCar(ctx, operator, skyline)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID, "los IDs son secuenciales")
}

func TestAddCar_Rechazos(t *testing.T) {
	uc, _ := newCatalog()
	ctx := context.Background()

	_, err := uc.AddCar(ctx, "0xalice", skyline)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.AddCar(ctx, "", skyline)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	for _, in := range []dto.CarInput{
		{Name: "x", RentFee: 0, SaleFee: 1},
		{Name: "x", RentFee: -5, SaleFee: 1},
		{Name: "x", RentFee: 5, SaleFee: -1},
		{Name: "  ", RentFee: 5, SaleFee: 1},
	} {
		_, err = uc.AddCar(ctx, operator, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}

	n, err := uc.CountCars(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "ningún alta fallida debe consumir un ID")
}

func TestGetCar_NoExiste(t *testing.T) {
	uc, _ := newCatalog()
	_, err := uc.GetCar(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestEditCarMetadata(t *testing.T) {
	uc, _ := newCatalog()
	ctx := context.Background()
	_, err := uc.AddCar(ctx, operator, skyline)
	require.NoError(t, err)

	in := dto.CarInput{Name: "Toyota Supra", ImageURL: "new img url", RentFee: 20, SaleFee: 100000}
	_, err = uc.EditCarMetadata(ctx, operator, 1, in)
	require.NoError(t, err)

	car, err := uc.GetCar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota Supra", car.Name)
	assert.Equal(t, "new img url", car.ImageURL)
	assert.Equal(t, int64(20), car.RentFee)
	assert.Equal(t, int64(100000), car.SaleFee)
	assert.Equal(t, "AVAILABLE", car.Status)

	_, err = uc.EditCarMetadata(ctx, "0xalice", 1, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.EditCarMetadata(ctx, operator, 9, in)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	_, err = uc.EditCarMetadata(ctx, operator, 1, dto.CarInput{Name: "x", RentFee: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditCarStatus(t *testing.T) {
	uc, _ := newCatalog()
	ctx := context.Background()
	_, err := uc.AddCar(ctx, operator, skyline)
	require.NoError(t, err)

	car, err := uc.EditCarStatus(ctx, operator, 1, "UNAVAILABLE")
	require.NoError(t, err)
	assert.Equal(t, "UNAVAILABLE", car.Status)

	car, err = uc.EditCarStatus(ctx, operator, 1, "available")
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", car.Status)

	_, err = uc.EditCarStatus(ctx, operator, 1, "AVAILABLE")
	assert.NoError(t, err, "mismo estado es un no-op")

	_, err = uc.EditCarStatus(ctx, operator, 1, "RENTED")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.EditCarStatus(ctx, operator, 1, "SOLD")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.EditCarStatus(ctx, "0xalice", 1, "UNAVAILABLE")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.EditCarStatus(ctx, operator, 7, "UNAVAILABLE")
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestEditCarStatus_AutoRentadoNoSeMueve(t *testing.T) {
	uc, store := newCatalog()
	ctx := context.Background()
	_, err := uc.AddCar(ctx, operator, skyline)
	require.NoError(t, err)

	// simula la transición del ledger sobre el store compartido
	require.NoError(t, store.Run(ctx, func(repos repository.Repos) error {
		car, err := repos.Cars.GetForUpdate(ctx, 1)
		if err != nil {
			return err
		}
		if err := car.MarkRented("0xalice", fixedNow); err != nil {
			return err
		}
		return repos.Cars.Update(ctx, car)
	}))

	_, err = uc.EditCarStatus(ctx, operator, 1, "UNAVAILABLE")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	car, err := uc.GetCar(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, string(entity.CarStatusRented), car.Status)
	assert.Equal(t, "0xalice", car.RentedBy)
}

func TestListCars(t *testing.T) {
	uc, _ := newCatalog()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.AddCar(ctx, operator, skyline)
		require.NoError(t, err)
	}
	_, err := uc.EditCarStatus(ctx, operator, 2, "UNAVAILABLE")
	require.NoError(t, err)

	all, err := uc.ListCars(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
	assert.Equal(t, 20, all.Page.Limit)
	assert.Equal(t, int64(3), all.Page.Total)

	available, err := uc.ListCars(ctx, "available", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, available.Items, 2)
	assert.Equal(t, int64(1), available.Items[0].ID)
	assert.Equal(t, int64(3), available.Items[1].ID)
	assert.Equal(t, int64(2), available.Page.Total)

	_, err = uc.ListCars(ctx, "broken", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
