package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/infrastructure/pdf"
)

// ReportHandler genera el reporte imprimible de ganancias.
type ReportHandler struct {
	uc  *analytics.ProfitUseCase
	gen *pdf.MarotoReportGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ProfitUseCase, gen *pdf.MarotoReportGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, gen: gen}
}

// ProfitReport godoc
// @Summary      Reporte de ganancias en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/profit [get]
func (h *ReportHandler) ProfitReport(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	trend, err := h.uc.Trend()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	doc, err := h.gen.GenerateProfitReport(summary, trend, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte-ganancias.pdf"`)
	return c.Send(doc)
}
