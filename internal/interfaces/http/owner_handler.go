package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// OwnerHandler tesorería del operador.
type OwnerHandler struct {
	uc  *rental.LedgerUseCase
	v   *Validator
	log *logger.Logger
}

// NewOwnerHandler construye el handler.
func NewOwnerHandler(uc *rental.LedgerUseCase, v *Validator, log *logger.Logger) *OwnerHandler {
	return &OwnerHandler{uc: uc, v: v, log: log}
}

// Balance godoc
// @Summary      Saldo acumulado del operador
// @Tags         owner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OwnerBalanceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/owner/balance [get]
func (h *OwnerHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.GetTotalPayment(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Withdraw godoc
// @Summary      Retiro del operador
// @Tags         owner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AmountRequest  true  "Monto"
// @Success      200   {object}  dto.OwnerBalanceResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/owner/withdrawals [post]
func (h *OwnerHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.AmountRequest
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.WithdrawOwnerBalance(c.UserContext(), GetPrincipalID(c), in.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
