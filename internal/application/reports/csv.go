package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// renderCSV serializa la tabla como CSV. Con win1252 el archivo se
// re-codifica a Windows-1252: Excel en instalaciones es-CO abre los CSV
// asumiendo esa codificación y sin ella los acentos salen corruptos.
func renderCSV(table ReportTable, win1252 bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Headers); err != nil {
		return nil, fmt.Errorf("csv: encabezados: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("csv: filas: %w", err)
	}
	if len(table.Summary) > 0 {
		if err := w.Write([]string{""}); err != nil {
			return nil, fmt.Errorf("csv: separador de resumen: %w", err)
		}
		if err := w.Write([]string{"RESUMEN"}); err != nil {
			return nil, fmt.Errorf("csv: título de resumen: %w", err)
		}
		if err := w.WriteAll(table.Summary); err != nil {
			return nil, fmt.Errorf("csv: resumen: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	if !win1252 {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	enc := transform.NewWriter(&out, charmap.Windows1252.NewEncoder())
	if _, err := enc.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("csv: codificar windows-1252: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("csv: cerrar encoder: %w", err)
	}
	return out.Bytes(), nil
}
