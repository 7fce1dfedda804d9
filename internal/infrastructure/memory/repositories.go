package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

var (
	_ repository.UserRepository        = (*UserRepo)(nil)
	_ repository.CarRepository         = (*CarRepo)(nil)
	_ repository.TreasuryRepository    = (*TreasuryRepo)(nil)
	_ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)
)

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ v view }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.users[user.ID]; ok {
			return domain.ErrAlreadyExists
		}
		st.users[user.ID] = *user
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.v.read(func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

// GetForUpdate equivale a GetByID: la transacción ya tiene acceso exclusivo.
func (r *UserRepo) GetForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return r.GetByID(ctx, id)
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.users[user.ID]; !ok {
			return fmt.Errorf("update user %s: %w", user.ID, domain.ErrUserNotFound)
		}
		st.users[user.ID] = *user
		return nil
	})
}

// CarRepo implementación en memoria de CarRepository.
type CarRepo struct{ v view }

func (r *CarRepo) Create(_ context.Context, car *entity.Car) error {
	return r.v.write(func(st *state) error {
		st.nextCarID++
		car.ID = st.nextCarID
		st.cars[car.ID] = *car
		return nil
	})
}

func (r *CarRepo) GetByID(_ context.Context, id int64) (*entity.Car, error) {
	var out *entity.Car
	err := r.v.read(func(st *state) error {
		if c, ok := st.cars[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CarRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Car, error) {
	return r.GetByID(ctx, id)
}

func (r *CarRepo) Update(_ context.Context, car *entity.Car) error {
	return r.v.write(func(st *state) error {
		if _, ok := st.cars[car.ID]; !ok {
			return fmt.Errorf("update car %d: %w", car.ID, domain.ErrCarNotFound)
		}
		st.cars[car.ID] = *car
		return nil
	})
}

func (r *CarRepo) List(_ context.Context, filter repository.CarFilter) ([]*entity.Car, error) {
	var list []*entity.Car
	err := r.v.read(func(st *state) error {
		for _, c := range st.cars {
			if filter.Status != "" && c.Status != filter.Status {
				continue
			}
			list = append(list, &c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return paginate(list, filter.Limit, filter.Offset), nil
}

func (r *CarRepo) Count(_ context.Context, status entity.CarStatus) (int64, error) {
	var n int64
	err := r.v.read(func(st *state) error {
		for _, c := range st.cars {
			if status == "" || c.Status == status {
				n++
			}
		}
		return nil
	})
	return n, err
}

// TreasuryRepo implementación en memoria de TreasuryRepository.
type TreasuryRepo struct{ v view }

func (r *TreasuryRepo) Get(_ context.Context) (int64, error) {
	var out int64
	err := r.v.read(func(st *state) error {
		out = st.treasury
		return nil
	})
	return out, err
}

func (r *TreasuryRepo) GetForUpdate(ctx context.Context) (int64, error) {
	return r.Get(ctx)
}

func (r *TreasuryRepo) Set(_ context.Context, balance int64) error {
	if balance < 0 {
		return fmt.Errorf("set treasury %d: %w", balance, domain.ErrInvalidInput)
	}
	return r.v.write(func(st *state) error {
		st.treasury = balance
		return nil
	})
}

// LedgerEntryRepo implementación en memoria de LedgerEntryRepository.
type LedgerEntryRepo struct{ v view }

func (r *LedgerEntryRepo) Create(_ context.Context, entry *entity.LedgerEntry) error {
	return r.v.write(func(st *state) error {
		st.entries = append(st.entries, *entry)
		return nil
	})
}

func (r *LedgerEntryRepo) ListByPrincipal(_ context.Context, principalID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	err := r.v.read(func(st *state) error {
		for i := len(st.entries) - 1; i >= 0; i-- {
			if st.entries[i].PrincipalID == principalID {
				e := st.entries[i]
				list = append(list, &e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paginate(list, limit, offset), nil
}

func paginate[T any](list []T, limit, offset int) []T {
	offset = max(offset, 0)
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
