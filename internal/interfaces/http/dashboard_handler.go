package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/dtltrading/almacen-api/internal/application/analytics"
	"github.com/dtltrading/almacen-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las tarjetas del dashboard más las listas de apoyo.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (total_products, low_stock_items, total_value,
// recent_transactions, low_stock_products, latest_transactions).
// No requiere parámetros; los agregados se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
