package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Rentacar-api/internal/application/catalog"
	"github.com/jhoicas/Rentacar-api/internal/application/dto"
	"github.com/jhoicas/Rentacar-api/pkg/logger"
)

// CarHandler maneja el catálogo de autos. Lecturas para cualquier principal; escrituras solo el operador.
type CarHandler struct {
	uc  *catalog.CatalogUseCase
	v   *Validator
	log *logger.Logger
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *catalog.CatalogUseCase, v *Validator, log *logger.Logger) *CarHandler {
	return &CarHandler{uc: uc, v: v, log: log}
}

// List godoc
// @Summary      Listar autos
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "AVAILABLE | RENTED | UNAVAILABLE"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CarListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	if ok, err := h.v.check(c, page); !ok {
		return err
	}
	out, err := h.uc.ListCars(c.UserContext(), c.Query("status"), page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Count godoc
// @Summary      Total de autos registrados
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CarCountResponse
// @Router       /api/cars/count [get]
func (h *CarHandler) Count(c *fiber.Ctx) error {
	n, err := h.uc.CountCars(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.CarCountResponse{Count: n})
}

// GetByID godoc
// @Summary      Obtener auto por ID
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del auto"
// @Success      200  {object}  dto.CarResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [get]
func (h *CarHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := carIDParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.GetCar(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar auto al catálogo (operador)
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CarInput  true  "Datos del auto"
// @Success      201   {object}  dto.CarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CarInput
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddCar(c.UserContext(), GetPrincipalID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar metadatos de un auto (operador)
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int           true  "ID del auto"
// @Param        body  body  dto.CarInput  true  "Datos del auto"
// @Success      200   {object}  dto.CarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cars/{id} [put]
func (h *CarHandler) Update(c *fiber.Ctx) error {
	id, ok, err := carIDParam(c, "id")
	if !ok {
		return err
	}
	var in dto.CarInput
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.EditCarMetadata(c.UserContext(), GetPrincipalID(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// EditStatus godoc
// @Summary      Cambiar estado de un auto (operador)
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del auto"
// @Param        body  body  dto.EditCarStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.CarResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cars/{id}/status [patch]
func (h *CarHandler) EditStatus(c *fiber.Ctx) error {
	id, ok, err := carIDParam(c, "id")
	if !ok {
		return err
	}
	var in dto.EditCarStatusRequest
	if ok, err := h.v.bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.EditCarStatus(c.UserContext(), GetPrincipalID(c), id, in.Status)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// carIDParam lee un ID de auto del path; si no es entero ya respondió 400 y ok es false.
func carIDParam(c *fiber.Ctx, key string) (id int64, ok bool, err error) {
	n, perr := c.ParamsInt(key)
	if perr != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: key + " debe ser entero"})
	}
	return int64(n), true, nil
}
