package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportUseCase arma los reportes de inventario y movimientos a partir del
// catálogo y del ledger. Lecturas puras; el stock se deriva siempre del
// ledger con la consulta agrupada.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	calc        *inventory.StockCalculator
	pdf         Generator
	excel       Generator
	horizonDays int
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso. nowFn permite inyectar el reloj
// en tests; nil usa time.Now.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	calc *inventory.StockCalculator,
	pdf Generator,
	excel Generator,
	horizonDays int,
	nowFn func() time.Time,
) *ReportUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	if horizonDays <= 0 {
		horizonDays = inventory.DefaultAlertHorizonDays
	}
	return &ReportUseCase{
		productRepo: productRepo,
		movRepo:     movRepo,
		calc:        calc,
		pdf:         pdf,
		excel:       excel,
		horizonDays: horizonDays,
		now:         nowFn,
	}
}

// estadoProducto clasifica el producto para la columna Estado del reporte,
// en el mismo orden de prioridad que el dashboard: vencido, próximo a
// vencer, bajo stock, normal.
func (uc *ReportUseCase) estadoProducto(p *entity.Product, stock int64, now time.Time) string {
	switch {
	case p.Vencido(now):
		return "Vencido"
	case p.DiasParaVencer(now) <= uc.horizonDays:
		return "Próximo a vencer"
	case stock <= p.StockMinimo:
		return "Bajo stock"
	default:
		return "Normal"
	}
}

func boolSiNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// buildInventoryTable tabla del reporte de inventario completo.
func (uc *ReportUseCase) buildInventoryTable(ctx context.Context) (ReportTable, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return ReportTable{}, err
	}
	stocks, err := uc.calc.ComputeAll(ctx, products)
	if err != nil {
		return ReportTable{}, err
	}

	now := uc.now()
	table := ReportTable{
		Title: "Inventario Completo",
		Headers: []string{
			"Nombre", "Laboratorio", "Proveedor", "Lote", "Stock Actual",
			"Presentación", "Ubicación", "Vencimiento", "Stock Mínimo",
			"Refrigeración", "Estado",
		},
		GeneratedAt: now,
	}
	for _, p := range products {
		stock := stocks[p.ID]
		table.Rows = append(table.Rows, []string{
			p.Nombre,
			p.Laboratorio,
			p.Proveedor,
			p.Lote,
			strconv.FormatInt(stock, 10),
			p.Presentacion,
			p.Ubicacion,
			p.FechaVencimiento.Format(dateLayout),
			strconv.FormatInt(p.StockMinimo, 10),
			boolSiNo(p.NecesitaRefrigeracion),
			uc.estadoProducto(p, stock, now),
		})
	}
	return table, nil
}

// buildMovementsTable tabla del reporte de movimientos en un rango de fechas.
func (uc *ReportUseCase) buildMovementsTable(ctx context.Context, desde, hasta *time.Time) (ReportTable, error) {
	movements, err := uc.movRepo.List(ctx, repository.MovementFilter{
		FechaDesde: desde,
		FechaHasta: hasta,
	})
	if err != nil {
		return ReportTable{}, err
	}
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return ReportTable{}, err
	}
	nombres := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		nombres[p.ID] = p
	}

	table := ReportTable{
		Title:       "Movimientos de Inventario",
		Headers:     []string{"Fecha", "Tipo", "Producto", "Laboratorio", "Cantidad", "Usuario", "Motivo"},
		GeneratedAt: uc.now(),
	}
	var entradas, salidas int
	var unidadesEntrada, unidadesSalida int64
	for _, m := range movements {
		nombre, laboratorio := "N/A", "N/A"
		if p := nombres[m.ProductID]; p != nil {
			nombre, laboratorio = p.Nombre, p.Laboratorio
		}
		tipo := "Entrada"
		if m.Tipo == entity.MovementTypeSalida {
			tipo = "Salida"
			salidas++
			unidadesSalida += m.Cantidad
		} else {
			entradas++
			unidadesEntrada += m.Cantidad
		}
		motivo := m.Motivo
		if motivo == "" {
			motivo = "No especificado"
		}
		table.Rows = append(table.Rows, []string{
			m.Fecha.Format("2006-01-02 15:04"),
			tipo,
			nombre,
			laboratorio,
			strconv.FormatInt(m.Cantidad, 10),
			m.CreatedBy,
			motivo,
		})
	}
	table.Summary = [][]string{
		{"Total de movimientos", strconv.Itoa(len(movements))},
		{"Total entradas", strconv.Itoa(entradas)},
		{"Total salidas", strconv.Itoa(salidas)},
		{"Unidades ingresadas", strconv.FormatInt(unidadesEntrada, 10)},
		{"Unidades retiradas", strconv.FormatInt(unidadesSalida, 10)},
	}
	return table, nil
}

// buildAlertsTable tabla del reporte de alertas: vencidos, próximos a vencer
// y bajo stock, en ese orden, con la clasificación del evaluador de alertas.
func (uc *ReportUseCase) buildAlertsTable(ctx context.Context) (ReportTable, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return ReportTable{}, err
	}
	stocks, err := uc.calc.ComputeAll(ctx, products)
	if err != nil {
		return ReportTable{}, err
	}

	now := uc.now()
	report := inventory.Evaluate(products, stocks, uc.horizonDays, now)

	table := ReportTable{
		Title: "Alertas de Inventario",
		Headers: []string{
			"Alerta", "Producto", "Laboratorio", "Lote", "Stock Actual",
			"Stock Mínimo", "Vencimiento", "Días para vencer", "Ubicación",
		},
		GeneratedAt: now,
	}
	appendAlerts := func(categoria string, alerts []entity.ProductAlert) {
		for _, a := range alerts {
			table.Rows = append(table.Rows, []string{
				categoria,
				a.Product.Nombre,
				a.Product.Laboratorio,
				a.Product.Lote,
				strconv.FormatInt(a.EffectiveStock, 10),
				strconv.FormatInt(a.Product.StockMinimo, 10),
				a.Product.FechaVencimiento.Format(dateLayout),
				strconv.Itoa(a.DaysToExpiry),
				a.Product.Ubicacion,
			})
		}
	}
	appendAlerts("Vencido", report.Expired)
	appendAlerts("Próximo a vencer", report.NearExpiry)
	appendAlerts("Bajo stock", report.LowStock)

	table.Summary = [][]string{
		{"Productos vencidos", strconv.Itoa(len(report.Expired))},
		{"Próximos a vencer", strconv.Itoa(len(report.NearExpiry))},
		{"Bajo stock", strconv.Itoa(len(report.LowStock))},
	}
	return table, nil
}

// InventoryReport exporta el inventario completo en el formato pedido.
func (uc *ReportUseCase) InventoryReport(ctx context.Context, format string) (*ReportFile, error) {
	table, err := uc.buildInventoryTable(ctx)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, table, "Inventario_Completo", format)
}

// MovementsReport exporta los movimientos del rango en el formato pedido.
func (uc *ReportUseCase) MovementsReport(ctx context.Context, desde, hasta *time.Time, format string) (*ReportFile, error) {
	table, err := uc.buildMovementsTable(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, table, "Movimientos", format)
}

// AlertsReport exporta el estado de alertas del inventario en el formato
// pedido.
func (uc *ReportUseCase) AlertsReport(ctx context.Context, format string) (*ReportFile, error) {
	table, err := uc.buildAlertsTable(ctx)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, table, "Alertas", format)
}

func (uc *ReportUseCase) render(ctx context.Context, table ReportTable, baseName, format string) (*ReportFile, error) {
	stamp := table.GeneratedAt.Format(dateLayout)
	switch format {
	case FormatCSV:
		data, err := renderCSV(table, true)
		if err != nil {
			return nil, err
		}
		return &ReportFile{
			Filename:    fmt.Sprintf("%s_%s.csv", baseName, stamp),
			ContentType: "text/csv; charset=windows-1252",
			Data:        data,
		}, nil
	case FormatPDF:
		data, err := uc.pdf.Generate(ctx, table)
		if err != nil {
			return nil, err
		}
		return &ReportFile{
			Filename:    fmt.Sprintf("%s_%s.pdf", baseName, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	case FormatXLSX:
		data, err := uc.excel.Generate(ctx, table)
		if err != nil {
			return nil, err
		}
		return &ReportFile{
			Filename:    fmt.Sprintf("%s_%s.xlsx", baseName, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
