package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, lastname, balance, debt, rented_car_id, checked_out_at, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Lastname, u.Balance, u.Debt,
		nullableInt64(u.RentedCarID), nullableTime(u.CheckedOutAt), u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por principal.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetForUpdate obtiene y bloquea el usuario hasta el fin de la transacción.
func (r *UserRepo) GetForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (r *UserRepo) get(ctx context.Context, query, id string) (*entity.User, error) {
	var (
		u            entity.User
		rentedCarID  *int64
		checkedOutAt *time.Time
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Lastname, &u.Balance, &u.Debt,
		&rentedCarID, &checkedOutAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if rentedCarID != nil {
		u.RentedCarID = *rentedCarID
	}
	if checkedOutAt != nil {
		u.CheckedOutAt = checkedOutAt.UTC()
	}
	return &u, nil
}

// Update persiste saldo, deuda y el estado de renta del usuario.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, lastname = $3, balance = $4, debt = $5, rented_car_id = $6, checked_out_at = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Lastname, u.Balance, u.Debt,
		nullableInt64(u.RentedCarID), nullableTime(u.CheckedOutAt), u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
