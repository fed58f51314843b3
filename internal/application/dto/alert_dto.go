package dto

import "github.com/farmasys/farmastock-api/internal/domain/entity"

// ProductAlertDTO un producto clasificado en una categoría de alerta.
type ProductAlertDTO struct {
	ProductID      string `json:"product_id"`
	Nombre         string `json:"nombre"`
	Laboratorio    string `json:"laboratorio"`
	Lote           string `json:"lote"`
	StockActual    int64  `json:"stock_actual"`
	StockMinimo    int64  `json:"stock_minimo"`
	Vencimiento    string `json:"fecha_vencimiento"`
	DiasParaVencer int    `json:"dias_para_vencer"`
}

// AlertReportDTO respuesta de GET /api/alerts.
type AlertReportDTO struct {
	NearExpiry []ProductAlertDTO `json:"near_expiry"`
	LowStock   []ProductAlertDTO `json:"low_stock"`
	Expired    []ProductAlertDTO `json:"expired"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalProducts int `json:"total_products"`
	LowStock      int `json:"low_stock"`
	NearExpiry    int `json:"near_expiry"`
	Expired       int `json:"expired"`
	Refrigeration int `json:"refrigeration"`
}

// ToAlertReportDTO convierte el reporte de alertas a DTO.
func ToAlertReportDTO(report entity.AlertReport) AlertReportDTO {
	return AlertReportDTO{
		NearExpiry: toAlertDTOs(report.NearExpiry),
		LowStock:   toAlertDTOs(report.LowStock),
		Expired:    toAlertDTOs(report.Expired),
	}
}

func toAlertDTOs(alerts []entity.ProductAlert) []ProductAlertDTO {
	out := make([]ProductAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, ProductAlertDTO{
			ProductID:      a.Product.ID,
			Nombre:         a.Product.Nombre,
			Laboratorio:    a.Product.Laboratorio,
			Lote:           a.Product.Lote,
			StockActual:    a.EffectiveStock,
			StockMinimo:    a.Product.StockMinimo,
			Vencimiento:    a.Product.FechaVencimiento.Format(dateLayout),
			DiasParaVencer: a.DaysToExpiry,
		})
	}
	return out
}
