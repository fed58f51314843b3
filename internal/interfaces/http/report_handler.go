package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/farmasys/farmastock-api/internal/application/dto"
	"github.com/farmasys/farmastock-api/internal/application/reports"
	"github.com/farmasys/farmastock-api/internal/domain"
)

// ReportHandler maneja la exportación de reportes (csv, pdf, xlsx).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func sendReport(c *fiber.Ctx, file *reports.ReportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Data)
}

// Inventory godoc
// @Summary      Exportar el inventario completo
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | pdf | xlsx"  default(csv)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	format := c.Query("format", reports.FormatCSV)
	file, err := h.uc.InventoryReport(c.UserContext(), format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser csv, pdf o xlsx"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendReport(c, file)
}

// Alerts godoc
// @Summary      Exportar las alertas de inventario (vencidos, próximos a vencer, bajo stock)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format  query  string  false  "csv | pdf | xlsx"  default(csv)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/alerts [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	format := c.Query("format", reports.FormatCSV)
	file, err := h.uc.AlertsReport(c.UserContext(), format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser csv, pdf o xlsx"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendReport(c, file)
}

// Movements godoc
// @Summary      Exportar los movimientos de un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        format       query  string  false  "csv | pdf | xlsx"  default(csv)
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	format := c.Query("format", reports.FormatCSV)

	var desde, hasta *time.Time
	if raw := c.Query("fecha_desde"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha_desde debe ser YYYY-MM-DD"})
		}
		desde = &t
	}
	if raw := c.Query("fecha_hasta"); raw != "" {
		t, err := dto.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha_hasta debe ser YYYY-MM-DD"})
		}
		hasta = &t
	}
	if desde != nil && hasta != nil && hasta.Before(*desde) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha_hasta no puede ser anterior a fecha_desde"})
	}

	file, err := h.uc.MovementsReport(c.UserContext(), desde, hasta, format)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser csv, pdf o xlsx"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendReport(c, file)
}
