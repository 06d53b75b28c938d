package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/analytics"
	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ProfitHandler expone el panel de ganancias y la serie del gráfico.
type ProfitHandler struct {
	uc *analytics.ProfitUseCase
}

// NewProfitHandler construye el handler.
func NewProfitHandler(uc *analytics.ProfitUseCase) *ProfitHandler {
	return &ProfitHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de ganancias (día, semana, mes, total)
// @Tags         profit
// @Produce      json
// @Success      200  {object}  dto.ProfitSummaryResponse
// @Router       /api/profit/summary [get]
func (h *ProfitHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Trend godoc
// @Summary      Ganancia diaria de los últimos 7 días
// @Tags         profit
// @Produce      json
// @Success      200  {object}  dto.ProfitTrendResponse
// @Router       /api/profit/trend [get]
func (h *ProfitHandler) Trend(c *fiber.Ctx) error {
	out, err := h.uc.Trend()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
