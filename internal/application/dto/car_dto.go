package dto

import "time"

// CarInput datos editables de un auto (alta y edición de metadatos).
type CarInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	ImageURL string `json:"image_url" validate:"max=2048"`
	RentFee  int64  `json:"rent_fee" validate:"gt=0"`
	SaleFee  int64  `json:"sale_fee" validate:"gte=0"`
}

// EditCarStatusRequest body para PATCH /api/cars/:id/status.
type EditCarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE UNAVAILABLE RENTED"`
}

// CarResponse salida de un auto.
type CarResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	RentFee   int64     `json:"rent_fee"`
	SaleFee   int64     `json:"sale_fee"`
	Status    string    `json:"status"`
	RentedBy  string    `json:"rented_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarCountResponse total de autos registrados.
type CarCountResponse struct {
	Count int64 `json:"count"`
}

// CarListResponse lista paginada del catálogo.
type CarListResponse struct {
	Items []CarResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
