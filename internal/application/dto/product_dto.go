package dto

import (
	"time"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Nombre                string `json:"nombre"`
	Laboratorio           string `json:"laboratorio"`
	Proveedor             string `json:"proveedor"`
	Lote                  string `json:"lote"`
	Presentacion          string `json:"presentacion"`
	Ubicacion             string `json:"ubicacion"`
	NecesitaRefrigeracion bool   `json:"necesita_refrigeracion"`
	FechaFabricacion      string `json:"fecha_fabricacion"` // YYYY-MM-DD
	FechaVencimiento      string `json:"fecha_vencimiento"` // YYYY-MM-DD
	StockMinimo           int64  `json:"stock_minimo"`
	CantidadInicial       int64  `json:"cantidad_inicial"`
}

// UpdateProductRequest body para PUT /api/products/:id. Solo campos
// descriptivos y stock mínimo; la cantidad inicial no se modifica por esta vía.
type UpdateProductRequest struct {
	Nombre                string `json:"nombre"`
	Laboratorio           string `json:"laboratorio"`
	Proveedor             string `json:"proveedor"`
	Lote                  string `json:"lote"`
	Presentacion          string `json:"presentacion"`
	Ubicacion             string `json:"ubicacion"`
	NecesitaRefrigeracion bool   `json:"necesita_refrigeracion"`
	StockMinimo           int64  `json:"stock_minimo"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID                    string    `json:"id"`
	Nombre                string    `json:"nombre"`
	Laboratorio           string    `json:"laboratorio"`
	Proveedor             string    `json:"proveedor"`
	Lote                  string    `json:"lote"`
	Presentacion          string    `json:"presentacion"`
	Ubicacion             string    `json:"ubicacion"`
	NecesitaRefrigeracion bool      `json:"necesita_refrigeracion"`
	FechaFabricacion      string    `json:"fecha_fabricacion"`
	FechaVencimiento      string    `json:"fecha_vencimiento"`
	StockMinimo           int64     `json:"stock_minimo"`
	CantidadInicial       int64     `json:"cantidad_inicial"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ProductWithStockResponse producto más su stock efectivo derivado del ledger.
type ProductWithStockResponse struct {
	ProductResponse
	StockActual int64 `json:"stock_actual"`
}

const dateLayout = "2006-01-02"

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:                    p.ID,
		Nombre:                p.Nombre,
		Laboratorio:           p.Laboratorio,
		Proveedor:             p.Proveedor,
		Lote:                  p.Lote,
		Presentacion:          p.Presentacion,
		Ubicacion:             p.Ubicacion,
		NecesitaRefrigeracion: p.NecesitaRefrigeracion,
		FechaFabricacion:      p.FechaFabricacion.Format(dateLayout),
		FechaVencimiento:      p.FechaVencimiento.Format(dateLayout),
		StockMinimo:           p.StockMinimo,
		CantidadInicial:       p.CantidadInicial,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
