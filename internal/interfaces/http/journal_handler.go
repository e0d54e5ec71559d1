package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jvargas/Finanzas-api/internal/application/contabilidad"
	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/ledger"
)

// JournalHandler maneja el libro diario (protegido).
type JournalHandler struct {
	uc *contabilidad.JournalUseCase
}

// NewJournalHandler construye el handler.
func NewJournalHandler(uc *contabilidad.JournalUseCase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear asiento contable
// @Tags         journal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJournalEntryRequest  true  "Asiento candidato"
// @Success      201   {object}  dto.JournalEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/journal/entries [post]
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJournalEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateEntry(c.UserContext(), GetUserID(c), in)
	if err != nil {
		var ubErr *ledger.UnbalancedEntryError
		var lineErr *ledger.InvalidLineError
		switch {
		case errors.As(err, &ubErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "UNBALANCED_ENTRY",
				Message: "el asiento no cumple la partida doble",
				Detail: dto.UnbalancedDetail{
					TotalDebe:  ubErr.TotalDebe.StringFixed(2),
					TotalHaber: ubErr.TotalHaber.StringFixed(2),
					Difference: ubErr.Difference.StringFixed(2),
				},
			})
		case errors.As(err, &lineErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "INVALID_LINE",
				Message: "línea de asiento inválida",
				Detail:  dto.InvalidLineDetail{Line: lineErr.Line, Reason: lineErr.Reason},
			})
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidAmount):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate godoc
// @Summary      Validar asiento sin persistirlo
// @Tags         journal
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJournalEntryRequest  true  "Asiento candidato"
// @Success      200   {object}  dto.ValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/journal/entries/validate [post]
func (h *JournalHandler) Validate(c *fiber.Ctx) error {
	var in dto.CreateJournalEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.ValidateEntry(in))
}

// GetByID godoc
// @Summary      Obtener asiento con sus líneas
// @Tags         journal
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del asiento"
// @Success      200  {object}  dto.JournalEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/journal/entries/{id} [get]
func (h *JournalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetEntry(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asientos de un rango de fechas
// @Tags         journal
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  true   "Desde (2006-01-02)"
// @Param        to      query  string  true   "Hasta (2006-01-02)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.JournalListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/journal/entries [get]
func (h *JournalHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ListEntries(from, to, parsePage(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseDateRange lee from/to (2006-01-02) obligatorios y valida from <= to.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse(dto.DateLayout, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("from inválido, formato 2006-01-02")
	}
	to, err := time.Parse(dto.DateLayout, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("to inválido, formato 2006-01-02")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("to debe ser mayor o igual que from")
	}
	return from, to, nil
}
