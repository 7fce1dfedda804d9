package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
)

// RequireOperator corta con 403 si el principal no es el operador configurado.
// Debe usarse DESPUÉS de AuthMiddleware. Los casos de uso repiten la verificación.
func RequireOperator(operatorID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipalID(c)
		if principal == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "principal no encontrado en el token"})
		}
		if operatorID == "" || principal != operatorID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación exclusiva del operador"})
		}
		return c.Next()
	}
}
