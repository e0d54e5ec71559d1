package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jvargas/Finanzas-api/internal/application/dto"
	"github.com/jvargas/Finanzas-api/internal/application/reportes"
	"github.com/jvargas/Finanzas-api/internal/domain/entity"
)

// ReportHandler maneja los reportes gerenciales y exportables (protegido).
type ReportHandler struct {
	uc *reportes.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reportes.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LotSummary godoc
// @Summary      Resumen de lotes por estado de vencimiento
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {object}  dto.LotSummaryResponse
// @Router       /api/reports/lots/summary [get]
func (h *ReportHandler) LotSummary(c *fiber.Ctx) error {
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	out, err := h.uc.LotSummary(ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AccountSummary godoc
// @Summary      Resumen de cuentas por estado derivado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kind            query  string  false  "PAYABLE | RECEIVABLE"
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {object}  dto.AccountSummaryResponse
// @Router       /api/reports/accounts/summary [get]
func (h *ReportHandler) AccountSummary(c *fiber.Ctx) error {
	kind := c.Query("kind")
	if kind != "" && kind != entity.AccountKindPayable && kind != entity.AccountKindReceivable {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser PAYABLE o RECEIVABLE"})
	}
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	out, err := h.uc.AccountSummary(kind, ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExpiryPDF godoc
// @Summary      Reporte de vencimiento de lotes en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reports/lots/expiry.pdf [get]
func (h *ReportHandler) ExpiryPDF(c *fiber.Ctx) error {
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	pdf, err := h.uc.ExpiryReportPDF(c.UserContext(), ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="vencimiento_lotes.pdf"`)
	return c.Send(pdf)
}

// AgingPDF godoc
// @Summary      Reporte de antigüedad de saldos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind            query  string  false  "PAYABLE | RECEIVABLE"
// @Param        reference_date  query  string  false  "Fecha de referencia (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reports/accounts/aging.pdf [get]
func (h *ReportHandler) AgingPDF(c *fiber.Ctx) error {
	kind := c.Query("kind")
	if kind != "" && kind != entity.AccountKindPayable && kind != entity.AccountKindReceivable {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind debe ser PAYABLE o RECEIVABLE"})
	}
	ref, err := parseRefDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference_date inválida, formato 2006-01-02"})
	}
	pdf, err := h.uc.AgingReportPDF(c.UserContext(), kind, ref)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="antiguedad_saldos.pdf"`)
	return c.Send(pdf)
}

// JournalBookXML godoc
// @Summary      Libro diario del período en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        from  query  string  true  "Desde (2006-01-02)"
// @Param        to    query  string  true  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/journal/libro-diario.xml [get]
func (h *ReportHandler) JournalBookXML(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.JournalBookXML(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="libro_diario.xml"`)
	return c.Send(out)
}
