package rental

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
	domrental "github.com/jhoicas/Rentacar-api/internal/domain/rental"
	"github.com/jhoicas/Rentacar-api/internal/domain/repository"
)

// CheckOut inicia la renta del auto carID por el principal (Idle → Active).
// La deuda pendiente no impide una nueva renta.
func (uc *LedgerUseCase) CheckOut(ctx context.Context, callerID string, carID int64) (*dto.UserResponse, error) {
	var out *entity.User
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		user, err := lockUser(ctx, repos, callerID)
		if err != nil {
			return err
		}
		if user.IsRenting() {
			return domain.ErrAlreadyRenting
		}
		car, err := repos.Cars.GetForUpdate(ctx, carID)
		if err != nil {
			return err
		}
		if car == nil {
			return domain.ErrCarNotFound
		}
		now := uc.now()
		if err := domrental.CheckOut(user, car, now); err != nil {
			return err
		}
		if err := repos.Cars.Update(ctx, car); err != nil {
			return err
		}
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		out = user
		return repos.Entries.Create(ctx, newEntry(uuid.NewString(), entity.EntryTypeCheckOut, user, car.ID, 0, now))
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", callerID).Int64("car_id", carID).Msg("auto rentado")
	return toUserResponse(out), nil
}

// CheckIn devuelve el auto rentado (Active → Idle) y suma la tarifa devengada a la deuda.
// No cobra: el pago es una operación aparte (MakePayment).
func (uc *LedgerUseCase) CheckIn(ctx context.Context, callerID string) (*dto.CheckInResponse, error) {
	var out dto.CheckInResponse
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		user, err := lockUser(ctx, repos, callerID)
		if err != nil {
			return err
		}
		if !user.IsRenting() {
			return domain.ErrNotRenting
		}
		car, err := repos.Cars.GetForUpdate(ctx, user.RentedCarID)
		if err != nil {
			return err
		}
		if car == nil {
			return domain.ErrInvalidState
		}
		now := uc.now()
		checkedOutAt := user.CheckedOutAt
		fee, err := domrental.CheckIn(user, car, now, uc.cfg.AccrualPeriod)
		if err != nil {
			return err
		}
		if err := repos.Cars.Update(ctx, car); err != nil {
			return err
		}
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		out = dto.CheckInResponse{
			CarID:       car.ID,
			Fee:         fee,
			Debt:        user.Debt,
			ElapsedSecs: int64(max(now.Sub(checkedOutAt), 0).Seconds()),
		}
		return repos.Entries.Create(ctx, newEntry(uuid.NewString(), entity.EntryTypeCheckIn, user, car.ID, fee, now))
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", callerID).Int64("car_id", out.CarID).Int64("fee", out.Fee).Msg("auto devuelto")
	return &out, nil
}

// QuoteCheckIn calcula la tarifa que devengaría CheckIn en este instante, sin mutar nada.
func (uc *LedgerUseCase) QuoteCheckIn(ctx context.Context, callerID string) (*dto.QuoteResponse, error) {
	user, err := uc.repos.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsRenting() {
		return nil, domain.ErrNotRenting
	}
	car, err := uc.repos.Cars.GetByID(ctx, user.RentedCarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrInvalidState
	}
	elapsed := max(uc.now().Sub(user.CheckedOutAt), 0)
	return &dto.QuoteResponse{
		CarID:       car.ID,
		CheckedOut:  user.CheckedOutAt,
		ElapsedSecs: int64(elapsed.Seconds()),
		Fee:         domrental.Fee(elapsed, uc.cfg.AccrualPeriod, car.RentFee),
	}, nil
}
