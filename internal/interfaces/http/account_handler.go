package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/application/finanzas"
	"github.com/jvargas/Finanzas-api/internal/domain"
	"github.com/jvargas/Finanzas-api/internal/domain/finance"
)

// AccountHandler maneja cuentas por pagar/cobrar y sus pagos (protegido).
type AccountHandler struct {
	accounts *finanzas.AccountsUseCase
	payments *finanzas.RegisterPaymentUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(accounts *finanzas.AccountsUseCase, payments *finanzas.RegisterPaymentUseCase) *AccountHandler {
	return &AccountHandler{accounts: accounts, payments: payments}
}

// Create godoc
// @Summary      Crear cuenta por pagar o cobrar
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.accounts.CreateAccount(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind (PAYABLE|RECEIVABLE), document_ref y third_party_id son requeridos"})
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cuenta con balance derivado e historial de pagos
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        id              path   string  true   "ID de la cuenta"
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {object}  dto.AccountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	out, err := h.accounts.GetAccount(c.Params("id"), ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cuentas con balance derivado
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        kind            query  string  false  "PAYABLE | RECEIVABLE"
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {object}  dto.AccountListResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	out, err := h.accounts.ListAccounts(c.Query("kind"), parsePage(c), ref)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser PAYABLE o RECEIVABLE"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RegisterPayment godoc
// @Summary      Registrar pago contra una cuenta
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la cuenta"
// @Param        body  body  dto.RegisterPaymentRequest  true  "Monto, fecha y tipo de pago"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/payments [post]
func (h *AccountHandler) RegisterPayment(c *fiber.Ctx) error {
	var in dto.RegisterPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.payments.RegisterPayment(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		var ovErr *finance.OverpaymentError
		switch {
		case errors.As(err, &ovErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Code:    "OVERPAYMENT",
				Message: "el pago excede el saldo pendiente",
				Detail: fiber.Map{
					"saldo_pendiente": ovErr.Saldo.StringFixed(2),
					"monto":           ovErr.Monto.StringFixed(2),
				},
			})
		case errors.Is(err, domain.ErrAccountClosed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACCOUNT_CLOSED", Message: "la cuenta ya está pagada"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cuenta no encontrada"})
		case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
