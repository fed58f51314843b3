package dto

import (
	"time"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
)

// SubmitMovementRequest body para POST /api/movements.
type SubmitMovementRequest struct {
	ProductID string `json:"product_id"`
	Tipo      string `json:"tipo"` // entrada | salida
	Cantidad  int64  `json:"cantidad"`
	Motivo    string `json:"motivo,omitempty"`
}

// MovementResponse representación de un movimiento del ledger.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Tipo      string    `json:"tipo"`
	Cantidad  int64     `json:"cantidad"`
	Fecha     time.Time `json:"fecha"`
	Motivo    string    `json:"motivo,omitempty"`
	CreatedBy string    `json:"created_by"`
}

// MovementListQuery filtros de GET /api/movements.
type MovementListQuery struct {
	ProductID  string `query:"product_id"`
	Tipo       string `query:"tipo"`
	FechaDesde string `query:"fecha_desde"` // YYYY-MM-DD
	FechaHasta string `query:"fecha_hasta"` // YYYY-MM-DD
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

// StockResponse respuesta de GET /api/products/:id/stock.
type StockResponse struct {
	ProductID   string `json:"product_id"`
	StockActual int64  `json:"stock_actual"`
}

// ToMovementResponse convierte la entidad a DTO.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Tipo:      m.Tipo,
		Cantidad:  m.Cantidad,
		Fecha:     m.Fecha,
		Motivo:    m.Motivo,
		CreatedBy: m.CreatedBy,
	}
}

// ToMovementResponses convierte una lista de movimientos.
func ToMovementResponses(movs []*entity.Movement) []*MovementResponse {
	out := make([]*MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, ToMovementResponse(m))
	}
	return out
}
