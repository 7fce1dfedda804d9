package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// RentalHandler maneja checkout, check-in y cotización de la renta en curso.
type RentalHandler struct {
	uc  *rental.LedgerUseCase
	log *logger.Logger
}

// NewRentalHandler construye el handler.
func NewRentalHandler(uc *rental.LedgerUseCase, log *logger.Logger) *RentalHandler {
	return &RentalHandler{uc: uc, log: log}
}

// CheckOut godoc
// @Summary      Rentar un auto disponible
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Param        carId  path  int  true  "ID del auto"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/rentals/checkout/{carId} [post]
func (h *RentalHandler) CheckOut(c *fiber.Ctx) error {
	carID, ok, err := carIDParam(c, "carId")
	if !ok {
		return err
	}
	out, err := h.uc.CheckOut(c.UserContext(), GetPrincipalID(c), carID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CheckIn godoc
// @Summary      Devolver el auto rentado; la tarifa devengada se suma a la deuda
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckInResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rentals/checkin [post]
func (h *RentalHandler) CheckIn(c *fiber.Ctx) error {
	out, err := h.uc.CheckIn(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Cotizar la tarifa si se devolviera el auto ahora
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rentals/quote [get]
func (h *RentalHandler) Quote(c *fiber.Ctx) error {
	out, err := h.uc.QuoteCheckIn(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
