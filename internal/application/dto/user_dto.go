package dto

import "time"

// RegisterUserRequest body para POST /api/users.
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Lastname string `json:"lastname" validate:"required,max=120"`
}

// AmountRequest body para depósitos y retiros.
type AmountRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Balance      int64      `json:"balance"`
	Debt         int64      `json:"debt"`
	RentedCarID  int64      `json:"rented_car_id"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
