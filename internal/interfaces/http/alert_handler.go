package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmasys/farmastock-api/internal/application/dto"
	"github.com/farmasys/farmastock-api/internal/application/inventory"
)

// AlertHandler maneja alertas de vencimiento/stock y estadísticas del dashboard.
type AlertHandler struct {
	uc          *inventory.AlertUseCase
	horizonDays int
}

// NewAlertHandler construye el handler. horizonDays es el horizonte por
// defecto para "próximo a vencer" cuando la petición no lo especifica.
func NewAlertHandler(uc *inventory.AlertUseCase, horizonDays int) *AlertHandler {
	return &AlertHandler{uc: uc, horizonDays: horizonDays}
}

// GetAlerts godoc
// @Summary      Alertas de productos por vencer, vencidos y bajo stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        horizon_days  query  int  false  "Horizonte de vencimiento en días"  default(30)
// @Success      200  {object}  dto.AlertReportDTO
// @Router       /api/alerts [get]
func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	horizon := c.QueryInt("horizon_days", h.horizonDays)
	if horizon <= 0 {
		horizon = h.horizonDays
	}
	report, err := h.uc.GetAlerts(c.UserContext(), horizon)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToAlertReportDTO(report))
}

// GetDashboardStats godoc
// @Summary      Contadores del dashboard
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *AlertHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetDashboardStats(c.UserContext(), h.horizonDays)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DashboardStatsDTO{
		TotalProducts: stats.TotalProducts,
		LowStock:      stats.LowStock,
		NearExpiry:    stats.NearExpiry,
		Expired:       stats.Expired,
		Refrigeration: stats.Refrigeration,
	})
}
