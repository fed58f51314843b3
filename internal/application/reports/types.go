// Package reports genera los reportes de inventario y de movimientos en
// csv, pdf y xlsx. El caso de uso arma una tabla genérica (encabezados +
// filas ya formateadas) y delega el render a los generadores de
// infraestructura.
package reports

import (
	"context"
	"time"
)

// Formatos de exportación soportados.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ReportTable tabla lista para renderizar en cualquier formato.
//
// Summary son pares etiqueta/valor que se renderizan como bloque de resumen
// después del detalle (totales del reporte de movimientos, conteos por
// categoría en el de alertas). Vacío si el reporte no lleva resumen.
type ReportTable struct {
	Title       string
	Headers     []string
	Rows        [][]string
	Summary     [][]string
	GeneratedAt time.Time
}

// Generator renderiza una tabla en un formato concreto (pdf, xlsx).
type Generator interface {
	Generate(ctx context.Context, table ReportTable) ([]byte, error)
}

// ReportFile resultado de una exportación, listo para servir por HTTP.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
