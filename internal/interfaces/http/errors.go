package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/internal/domain"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// errorMapping traduce un error de dominio a status HTTP y código estable.
type errorMapping struct {
	target error
	status int
	code   string
}

// El orden importa: ErrUserNotFound y ErrCarNotFound envuelven ErrNotFound.
var errorMappings = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "INVALID_INPUT"},
	{domain.ErrUnauthorized, fiber.StatusForbidden, "UNAUTHORIZED"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{domain.ErrCarNotFound, fiber.StatusNotFound, "CAR_NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrAlreadyExists, fiber.StatusConflict, "ALREADY_EXISTS"},
	{domain.ErrAlreadyRenting, fiber.StatusConflict, "ALREADY_RENTING"},
	{domain.ErrNotRenting, fiber.StatusConflict, "NOT_RENTING"},
	{domain.ErrCarUnavailable, fiber.StatusConflict, "CAR_UNAVAILABLE"},
	{domain.ErrInvalidState, fiber.StatusConflict, "INVALID_STATE"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrInsufficientFunds, fiber.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS"},
}

// writeError responde con el status que corresponde al error; lo no tipificado es 500 y se registra.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.target.Error()})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
