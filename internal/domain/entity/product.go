package entity

import (
	"time"

	"github.com/farmasys/farmastock-api/internal/domain"
)

// Ubicaciones sugeridas para productos (catálogo de la farmacia).
var ProductLocations = []string{
	"Estante A1",
	"Estante A2",
	"Estante B1",
	"Estante B2",
	"Refrigerador 1",
	"Refrigerador 2",
	"Bodega Principal",
	"Área de Cuarentena",
}

// Product representa un producto farmacéutico del inventario.
//
// CantidadInicial es la cantidad base registrada al crear el producto; el
// stock actual NUNCA se almacena: se deriva del ledger de movimientos
// (CantidadInicial + Σentradas − Σsalidas). StockMinimo es el umbral de
// alerta de bajo stock.
type Product struct {
	ID                    string
	Nombre                string
	Laboratorio           string
	Proveedor             string
	Lote                  string
	Presentacion          string // tabletas, jarabe, ampolla, etc.
	Ubicacion             string
	NecesitaRefrigeracion bool
	FechaFabricacion      time.Time
	FechaVencimiento      time.Time
	StockMinimo           int64
	CantidadInicial       int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Validate verifica los invariantes de creación del producto.
func (p *Product) Validate() error {
	if p.Nombre == "" || p.Laboratorio == "" || p.Lote == "" {
		return domain.ErrInvalidInput
	}
	if p.StockMinimo < 0 || p.CantidadInicial < 0 {
		return domain.ErrInvalidInput
	}
	if !p.FechaVencimiento.After(p.FechaFabricacion) {
		return domain.ErrInvalidDates
	}
	return nil
}

// DiasParaVencer días calendario hasta el vencimiento, negativo si ya venció.
func (p *Product) DiasParaVencer(now time.Time) int {
	return int(p.FechaVencimiento.Sub(now).Hours() / 24)
}

// Vencido indica si la fecha de vencimiento ya pasó.
func (p *Product) Vencido(now time.Time) bool {
	return !p.FechaVencimiento.After(now)
}
