package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/application/inventario"
	"github.com/jvargas/Finanzas-api/internal/domain"
)

// LotHandler maneja las peticiones HTTP para lotes (protegido).
type LotHandler struct {
	uc *inventario.LotsUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *inventario.LotsUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// parseRefDate lee el query param reference_date (2006-01-02); nil = ahora.
func parseRefDate(c *fiber.Ctx) (*time.Time, error) {
	raw := c.Query("reference_date")
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parsePage lee limit/offset con defaults y tope.
func parsePage(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}
	page.DefaultPage()
	return page
}

// Register godoc
// @Summary      Registrar lote
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterLotRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *LotHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterLot(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, warehouse_id y purchase_line_id son requeridos"})
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de lote ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote con su estado de vencimiento
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id              path   string  true   "ID del lote"
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	out, err := h.uc.GetLot(id, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar lotes clasificados por vencimiento
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {object}  dto.LotListResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	out, err := h.uc.ListLots(parsePage(c), ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
