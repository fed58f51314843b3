// Package excel implementa la generación de reportes XLSX usando Excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/farmasys/farmastock-api/internal/application/reports"
)

var _ reports.Generator = (*ExcelizeGenerator)(nil)

// ExcelizeGenerator implementa reports.Generator produciendo archivos XLSX.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// Generate renderiza la tabla del reporte como hoja de cálculo.
func (g *ExcelizeGenerator) Generate(_ context.Context, table reports.ReportTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reporte"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	// Título y fecha de generación en las dos primeras filas.
	if err := f.SetCellValue(sheet, "A1", table.Title); err != nil {
		return nil, fmt.Errorf("excel: escribir título: %w", err)
	}
	fecha := "Generado: " + table.GeneratedAt.Format("02/01/2006 15:04")
	if err := f.SetCellValue(sheet, "A2", fecha); err != nil {
		return nil, fmt.Errorf("excel: escribir fecha: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "0D6E50"},
	})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	}

	// Cabecera de la tabla en la fila 4.
	const headerRow = 4
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0D6E50"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo de cabecera: %w", err)
	}
	for i, h := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
		}
	}

	// Filas de datos.
	for r, cells := range table.Rows {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err != nil {
				return nil, fmt.Errorf("excel: celda de datos: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escribir celda: %w", err)
			}
		}
	}

	// Bloque de resumen dos filas por debajo del detalle.
	if len(table.Summary) > 0 {
		summaryRow := headerRow + len(table.Rows) + 2
		cell, err := excelize.CoordinatesToCellName(1, summaryRow)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de resumen: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, "RESUMEN"); err != nil {
			return nil, fmt.Errorf("excel: título de resumen: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("excel: estilo de resumen: %w", err)
		}
		for i, s := range table.Summary {
			for c, v := range s {
				cell, err := excelize.CoordinatesToCellName(c+1, summaryRow+1+i)
				if err != nil {
					return nil, fmt.Errorf("excel: celda de resumen: %w", err)
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, fmt.Errorf("excel: escribir resumen: %w", err)
				}
			}
		}
	}

	// Anchos de columna razonables para lectura.
	for i := range table.Headers {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		width := 14.0
		if i == 0 {
			width = 28.0
		}
		_ = f.SetColWidth(sheet, name, name, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar archivo: %w", err)
	}
	return buf.Bytes(), nil
}
