package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
)

// Validator valida DTOs de entrada según sus tags `validate`.
type Validator struct {
	v *validator.Validate
}

// NewValidator construye el validador compartido por los handlers.
func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

// Validate devuelve nil o un error con los campos que fallaron.
func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}

// bindAndValidate parsea el body y lo valida; si falla ya escribió la respuesta 400 y ok es false.
func (v *Validator) bindAndValidate(c *fiber.Ctx, out any) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, badBody(c)
	}
	return v.check(c, out)
}

// check valida un DTO ya poblado (query o body).
func (v *Validator) check(c *fiber.Ctx, in any) (ok bool, err error) {
	if err := v.Validate(in); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: describe(err)})
	}
	return true, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "campos inválidos: " + strings.Join(fields, ", ")
}
