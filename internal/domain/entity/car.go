package entity

import (
	"time"

	"github.com/jhoicas/Rentacar-api/internal/domain"
)

// CarStatus estado del ciclo de vida de un auto.
type CarStatus string

// Estados válidos para Car.
const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusUnavailable CarStatus = "UNAVAILABLE"
)

// Valid informa si el estado pertenece al catálogo.
func (s CarStatus) Valid() bool {
	switch s {
	case CarStatusAvailable, CarStatusRented, CarStatusUnavailable:
		return true
	}
	return false
}

// Car representa un auto del catálogo. ID es secuencial desde 1 y nunca se reutiliza.
// RentedBy no está vacío si y solo si Status = RENTED.
type Car struct {
	ID        int64
	Name      string
	ImageURL  string
	RentFee   int64 // créditos por periodo de devengo
	SaleFee   int64 // informativo
	Status    CarStatus
	RentedBy  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MarkRented asigna el auto a un usuario. Solo lo invoca la transición de renta.
func (c *Car) MarkRented(userID string, now time.Time) error {
	if c.Status != CarStatusAvailable {
		return domain.ErrInvalidState
	}
	c.Status = CarStatusRented
	c.RentedBy = userID
	c.UpdatedAt = now
	return nil
}

// MarkAvailable libera un auto rentado. Solo lo invoca la transición de renta.
func (c *Car) MarkAvailable(now time.Time) error {
	if c.Status != CarStatusRented {
		return domain.ErrInvalidState
	}
	c.Status = CarStatusAvailable
	c.RentedBy = ""
	c.UpdatedAt = now
	return nil
}
