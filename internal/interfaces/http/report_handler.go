package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ReportHandler expone el resumen de stock en JSON y PDF.
type ReportHandler struct {
	uc      *usecase.ReportUseCase
	enabled bool // feature flag: apagado responde 404
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, enabled bool) *ReportHandler {
	return &ReportHandler{uc: uc, enabled: enabled}
}

// GetStockSummary godoc
// @Summary      Resumen de stock por producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-summary [get]
func (h *ReportHandler) GetStockSummary(c *fiber.Ctx) error {
	if !h.enabled {
		return c.SendStatus(fiber.StatusNotFound)
	}
	summary, err := h.uc.GetStockSummary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(summary)
}

// GetStockSummaryPDF godoc
// @Summary      Resumen de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-summary/pdf [get]
func (h *ReportHandler) GetStockSummaryPDF(c *fiber.Ctx) error {
	if !h.enabled {
		return c.SendStatus(fiber.StatusNotFound)
	}
	pdf, err := h.uc.GetStockSummaryPDF(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	filename := fmt.Sprintf("stock-summary-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
