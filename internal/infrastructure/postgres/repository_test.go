package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
	"github.com/jhoicas/Rentacar-api/internal/infrastructure/postgres"
)

// newTestPool conecta a TEST_DATABASE_URL, aplica la migración y limpia las tablas.
// Sin la variable los tests se omiten.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../migrations/0001_rental_ledger.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `TRUNCATE ledger_entries, cars, users`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `UPDATE ledger_state SET next_car_id = 1, total_owner_balance = 0 WHERE id = 1`)
	require.NoError(t, err)
	return pool
}

func TestTxRunner_CommitYRollback(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	err := runner.Run(ctx, func(repos repository.Repos) error {
		return repos.Users.Create(ctx, &entity.User{ID: "0xalice", Name: "Alice", Lastname: "Doe", CreatedAt: now, UpdatedAt: now})
	})
	require.NoError(t, err)

	err = runner.Run(ctx, func(repos repository.Repos) error {
		car := &entity.Car{Name: "Skyline", RentFee: 2, Status: entity.CarStatusAvailable, CreatedAt: now, UpdatedAt: now}
		if err := repos.Cars.Create(ctx, car); err != nil {
			return err
		}
		return domain.ErrInvalidState
	})
	require.ErrorIs(t, err, domain.ErrInvalidState)

	repos := postgres.NewRepos(pool)
	n, err := repos.Cars.Count(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n, "el rollback no debe dejar autos")

	// El contador tampoco avanzó: el siguiente auto es el #1.
	car := &entity.Car{Name: "Skyline", RentFee: 2, Status: entity.CarStatusAvailable, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, runner.Run(ctx, func(repos repository.Repos) error { return repos.Cars.Create(ctx, car) }))
	assert.Equal(t, int64(1), car.ID)
}

func TestUserRepo_DuplicadoYNulos(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repos := postgres.NewRepos(pool)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	u := &entity.User{ID: "0xalice", Name: "Alice", Lastname: "Doe", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Users.Create(ctx, u))
	assert.ErrorIs(t, repos.Users.Create(ctx, u), domain.ErrAlreadyExists)

	got, err := repos.Users.GetByID(ctx, "0xalice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsRenting())

	missing, err := repos.Users.GetByID(ctx, "0xnadie")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRentaPersistida(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	repos := postgres.NewRepos(pool)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	car := &entity.Car{Name: "Skyline", RentFee: 2, Status: entity.CarStatusAvailable, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, runner.Run(ctx, func(r repository.Repos) error {
		if err := r.Users.Create(ctx, &entity.User{ID: "0xalice", Name: "Alice", Lastname: "Doe", CreatedAt: now, UpdatedAt: now}); err != nil {
			return err
		}
		return r.Cars.Create(ctx, car)
	}))

	require.NoError(t, runner.Run(ctx, func(r repository.Repos) error {
		u, err := r.Users.GetForUpdate(ctx, "0xalice")
		if err != nil {
			return err
		}
		c, err := r.Cars.GetForUpdate(ctx, car.ID)
		if err != nil {
			return err
		}
		if err := c.MarkRented(u.ID, now); err != nil {
			return err
		}
		u.RentedCarID, u.CheckedOutAt = c.ID, now
		if err := r.Cars.Update(ctx, c); err != nil {
			return err
		}
		return r.Users.Update(ctx, u)
	}))

	u, err := repos.Users.GetByID(ctx, "0xalice")
	require.NoError(t, err)
	assert.Equal(t, car.ID, u.RentedCarID)
	assert.True(t, now.Equal(u.CheckedOutAt))

	c, err := repos.Cars.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CarStatusRented, c.Status)
	assert.Equal(t, "0xalice", c.RentedBy)

	list, err := repos.Cars.List(ctx, repository.CarFilter{Status: entity.CarStatusRented, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTreasuryYDiario(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repos := postgres.NewRepos(pool)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Treasury.Set(ctx, 6))
	got, err := repos.Treasury.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)

	for i, typ := range []string{entity.EntryTypeDeposit, entity.EntryTypePayment} {
		require.NoError(t, repos.Entries.Create(ctx, &entity.LedgerEntry{
			ID:            "00000000-0000-0000-0000-00000000000" + string(rune('1'+i)),
			TransactionID: "00000000-0000-0000-0000-0000000000a" + string(rune('1'+i)),
			PrincipalID:   "0xalice",
			Type:          typ,
			Amount:        6,
			OccurredAt:    now,
		}))
	}
	entries, err := repos.Entries.ListByPrincipal(ctx, "0xalice", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.EntryTypePayment, entries[0].Type, "más recientes primero")
}
