package entity

import "time"

// User representa a un cliente del ledger, identificado por su principal autenticado.
// RentedCarID = 0 significa que no tiene renta activa; CheckedOutAt es cero en ese caso.
type User struct {
	ID           string
	Name         string
	Lastname     string
	Balance      int64 // créditos en custodia
	Debt         int64 // tarifa devengada sin pagar
	RentedCarID  int64
	CheckedOutAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsRenting informa si el usuario tiene una renta activa.
func (u *User) IsRenting() bool {
	return u.RentedCarID != 0
}
