// Package rental concentra las transiciones que modifican a la vez al usuario y al auto.
// Es el único lugar que escribe User.RentedCarID/CheckedOutAt y Car.Status/RentedBy juntos,
// de modo que la referencia bidireccional se mantiene consistente.
package rental

import (
	"time"

	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/internal/domain/entity"
)

// CheckOut aplica Idle → Active sobre el par usuario/auto.
func CheckOut(user *entity.User, car *entity.Car, now time.Time) error {
	if user.IsRenting() {
		return domain.ErrAlreadyRenting
	}
	if car.Status != entity.CarStatusAvailable {
		return domain.ErrCarUnavailable
	}
	if err := car.MarkRented(user.ID, now); err != nil {
		return err
	}
	user.RentedCarID = car.ID
	user.CheckedOutAt = now
	user.UpdatedAt = now
	return nil
}

// CheckIn aplica Active → Idle, suma la tarifa a la deuda y devuelve el monto sumado.
// La deuda se satura en math.MaxInt64; el monto devuelto es el que realmente se sumó.
func CheckIn(user *entity.User, car *entity.Car, now time.Time, period time.Duration) (int64, error) {
	if !user.IsRenting() {
		return 0, domain.ErrNotRenting
	}
	if car.ID != user.RentedCarID || car.RentedBy != user.ID {
		return 0, domain.ErrInvalidState
	}
	fee := min(Fee(now.Sub(user.CheckedOutAt), period, car.RentFee), headroom(user.Debt))
	if err := car.MarkAvailable(now); err != nil {
		return 0, err
	}
	user.Debt += fee
	user.RentedCarID = 0
	user.CheckedOutAt = time.Time{}
	user.UpdatedAt = now
	return fee, nil
}

// Settle aplica el pago de mejor esfuerzo: min(balance, deuda) pasa del usuario a la tesorería,
// limitado a lo que la tesorería puede recibir sin desbordar. Devuelve el monto pagado; 0 no es error.
func Settle(user *entity.User, treasury int64, now time.Time) int64 {
	payment := min(user.Debt, user.Balance, headroom(treasury))
	if payment <= 0 {
		return 0
	}
	user.Balance -= payment
	user.Debt -= payment
	user.UpdatedAt = now
	return payment
}
