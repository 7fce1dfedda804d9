package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/application/rental"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// UserHandler maneja registro, custodia de saldo y pagos del principal autenticado.
type UserHandler struct {
	uc        *rental.LedgerUseCase
	statement *rental.StatementUseCase
	v         *Validator
	log       *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *rental.LedgerUseCase, statement *rental.StatementUseCase, v *Validator, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, statement: statement, v: v, log: log}
}

// Register godoc
// @Summary      Registrar al principal como usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "Nombre y apellido"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddUser(c.UserContext(), GetPrincipalID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Obtener el registro del principal
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetUser(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Deposit godoc
// @Summary      Depositar créditos en custodia
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AmountRequest  true  "Monto"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/me/deposits [post]
func (h *UserHandler) Deposit(c *fiber.Ctx) error {
	var in dto.AmountRequest
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Deposit(c.UserContext(), GetPrincipalID(c), in.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Withdraw godoc
// @Summary      Retirar créditos de la custodia
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AmountRequest  true  "Monto"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/users/me/withdrawals [post]
func (h *UserHandler) Withdraw(c *fiber.Ctx) error {
	var in dto.AmountRequest
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.WithdrawBalance(c.UserContext(), GetPrincipalID(c), in.Amount)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Pagar deuda con el saldo en custodia (pago parcial si no alcanza)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me/payments [post]
func (h *UserHandler) Pay(c *fiber.Ctx) error {
	out, err := h.uc.MakePayment(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Entries godoc
// @Summary      Diario de asientos del principal
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.LedgerEntryListResponse
// @Router       /api/users/me/entries [get]
func (h *UserHandler) Entries(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	if ok, err := h.v.check(c, page); !ok {
		return err
	}
	out, err := h.uc.ListEntries(c.UserContext(), GetPrincipalID(c), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta en PDF
// @Tags         users
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me/statement [get]
func (h *UserHandler) Statement(c *fiber.Ctx) error {
	pdf, filename, err := h.statement.Statement(c.UserContext(), GetPrincipalID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
