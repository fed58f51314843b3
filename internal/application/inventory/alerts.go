package inventory

import (
	"context"
	"time"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// DefaultAlertHorizonDays ventana por defecto de "próximos a vencer".
const DefaultAlertHorizonDays = 30

// Evaluate clasifica productos en categorías de alerta. Función pura de sus
// entradas más el reloj inyectado en now (nunca lee el reloj del sistema):
//
//   - NearExpiry: vence dentro del horizonte y aún no venció.
//   - Expired: la fecha de vencimiento ya pasó. Excluye NearExpiry.
//   - LowStock: stock efectivo <= stock mínimo. Puede solaparse con las otras.
func Evaluate(products []*entity.Product, stocks map[string]int64, horizonDays int, now time.Time) entity.AlertReport {
	if horizonDays <= 0 {
		horizonDays = DefaultAlertHorizonDays
	}
	var report entity.AlertReport
	for _, p := range products {
		stock := stocks[p.ID]
		days := p.DiasParaVencer(now)

		switch {
		case p.Vencido(now):
			report.Expired = append(report.Expired, entity.ProductAlert{
				Product: p, EffectiveStock: stock, DaysToExpiry: days,
			})
		case days <= horizonDays:
			report.NearExpiry = append(report.NearExpiry, entity.ProductAlert{
				Product: p, EffectiveStock: stock, DaysToExpiry: days,
			})
		}

		if stock <= p.StockMinimo {
			report.LowStock = append(report.LowStock, entity.ProductAlert{
				Product: p, EffectiveStock: stock, DaysToExpiry: days,
			})
		}
	}
	return report
}

// AlertUseCase orquesta la evaluación de alertas sobre el catálogo completo.
type AlertUseCase struct {
	productRepo repository.ProductRepository
	calc        *StockCalculator
	now         func() time.Time
}

// NewAlertUseCase construye el caso de uso. nowFn permite inyectar el reloj
// en tests; nil usa time.Now.
func NewAlertUseCase(productRepo repository.ProductRepository, calc *StockCalculator, nowFn func() time.Time) *AlertUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &AlertUseCase{productRepo: productRepo, calc: calc, now: nowFn}
}

// GetAlerts evalúa las alertas de todo el catálogo. El stock de todos los
// productos se obtiene con UNA consulta agrupada al ledger, no una por
// producto.
func (uc *AlertUseCase) GetAlerts(ctx context.Context, horizonDays int) (entity.AlertReport, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return entity.AlertReport{}, err
	}
	stocks, err := uc.calc.ComputeAll(ctx, products)
	if err != nil {
		return entity.AlertReport{}, err
	}
	return Evaluate(products, stocks, horizonDays, uc.now()), nil
}

// DashboardStats métricas agregadas para el dashboard.
type DashboardStats struct {
	TotalProducts int
	LowStock      int
	NearExpiry    int
	Expired       int
	Refrigeration int
}

// GetDashboardStats cuenta productos por categoría para las tarjetas del
// dashboard.
func (uc *AlertUseCase) GetDashboardStats(ctx context.Context, horizonDays int) (DashboardStats, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	stocks, err := uc.calc.ComputeAll(ctx, products)
	if err != nil {
		return DashboardStats{}, err
	}
	report := Evaluate(products, stocks, horizonDays, uc.now())

	stats := DashboardStats{
		TotalProducts: len(products),
		LowStock:      len(report.LowStock),
		NearExpiry:    len(report.NearExpiry),
		Expired:       len(report.Expired),
	}
	for _, p := range products {
		if p.NecesitaRefrigeracion {
			stats.Refrigeration++
		}
	}
	return stats, nil
}
