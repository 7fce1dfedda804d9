package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

var _ repository.CarRepository = (*CarRepo)(nil)

const carColumns = `id, name, image_url, rent_fee, sale_fee, status, rented_by, created_at, updated_at`

// CarRepo implementación del puerto CarRepository sobre PostgreSQL (pool o tx).
type CarRepo struct {
	q Querier
}

// NewCarRepository construye el adaptador de persistencia para autos.
func NewCarRepository(q Querier) *CarRepo {
	return &CarRepo{q: q}
}

// Create toma el siguiente ID de ledger_state (bloquea la fila) y persiste el auto.
// Si el INSERT falla la transacción revierte y el contador no avanza.
func (r *CarRepo) Create(ctx context.Context, car *entity.Car) error {
	var id int64
	err := r.q.QueryRow(ctx,
		`UPDATE ledger_state SET next_car_id = next_car_id + 1 WHERE id = 1 RETURNING next_car_id - 1`,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("next car id: %w", err)
	}
	query := `
		INSERT INTO cars (` + carColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(ctx, query,
		id, car.Name, car.ImageURL, car.RentFee, car.SaleFee, string(car.Status),
		nullableString(car.RentedBy), car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert car: %w", err)
	}
	car.ID = id
	return nil
}

// GetByID obtiene un auto por ID.
func (r *CarRepo) GetByID(ctx context.Context, id int64) (*entity.Car, error) {
	return r.get(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
}

// GetForUpdate obtiene y bloquea el auto hasta el fin de la transacción.
func (r *CarRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Car, error) {
	return r.get(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1 FOR UPDATE`, id)
}

func (r *CarRepo) get(ctx context.Context, query string, id int64) (*entity.Car, error) {
	c, err := scanCar(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car: %w", err)
	}
	return c, nil
}

// Update persiste metadatos y estado del auto.
func (r *CarRepo) Update(ctx context.Context, car *entity.Car) error {
	query := `
		UPDATE cars
		SET name = $2, image_url = $3, rent_fee = $4, sale_fee = $5, status = $6, rented_by = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		car.ID, car.Name, car.ImageURL, car.RentFee, car.SaleFee, string(car.Status),
		nullableString(car.RentedBy), car.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

// List devuelve los autos ordenados por ID, con filtro opcional de estado.
func (r *CarRepo) List(ctx context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		WHERE ($1::text = '' OR status = $1::text)
		ORDER BY id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, string(filter.Status), filter.Limit, max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var list []*entity.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count cuenta los autos con el estado indicado; vacío = todos.
func (r *CarRepo) Count(ctx context.Context, status entity.CarStatus) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cars WHERE ($1::text = '' OR status = $1::text)`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return n, nil
}

func scanCar(row pgx.Row) (*entity.Car, error) {
	var (
		c        entity.Car
		status   string
		rentedBy *string
	)
	if err := row.Scan(
		&c.ID, &c.Name, &c.ImageURL, &c.RentFee, &c.SaleFee, &status,
		&rentedBy, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Status = entity.CarStatus(status)
	if rentedBy != nil {
		c.RentedBy = *rentedBy
	}
	return &c, nil
}
