package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/pkg/logger"
)

// Reloj fijo para que la clasificación no dependa del reloj del sistema.
var alertNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func alertIDs(alerts []entity.ProductAlert) []string {
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.Product.ID)
	}
	return ids
}

// Caso concreto: vence en 10 días, stock mínimo 20, base 15, sin movimientos.
// Debe estar en lowStock (15 <= 20) y en nearExpiry (10 <= 30), no en expired.
func TestEvaluate_BajoStockYProximoAVencer(t *testing.T) {
	p := testProduct("prod-1", 15, 20, alertNow.AddDate(0, 0, 10))

	report := inventory.Evaluate(
		[]*entity.Product{p},
		map[string]int64{"prod-1": 15},
		30,
		alertNow,
	)

	assert.Contains(t, alertIDs(report.LowStock), "prod-1")
	assert.Contains(t, alertIDs(report.NearExpiry), "prod-1")
	assert.Empty(t, report.Expired)
}

// Un producto vencido sale de nearExpiry: expired es excluyente.
func TestEvaluate_VencidoExcluyeProximoAVencer(t *testing.T) {
	vencido := testProduct("vencido", 50, 5, alertNow.AddDate(0, 0, -3))
	porVencer := testProduct("por-vencer", 50, 5, alertNow.AddDate(0, 0, 29))
	lejano := testProduct("lejano", 50, 5, alertNow.AddDate(1, 0, 0))

	report := inventory.Evaluate(
		[]*entity.Product{vencido, porVencer, lejano},
		map[string]int64{"vencido": 50, "por-vencer": 50, "lejano": 50},
		30,
		alertNow,
	)

	assert.Equal(t, []string{"vencido"}, alertIDs(report.Expired))
	assert.Equal(t, []string{"por-vencer"}, alertIDs(report.NearExpiry))
	assert.Empty(t, report.LowStock)
}

// El horizonte es configurable: con 7 días un producto a 10 días no alerta.
func TestEvaluate_HorizonteConfigurable(t *testing.T) {
	p := testProduct("prod-1", 100, 5, alertNow.AddDate(0, 0, 10))
	stocks := map[string]int64{"prod-1": 100}

	corto := inventory.Evaluate([]*entity.Product{p}, stocks, 7, alertNow)
	assert.Empty(t, corto.NearExpiry)

	amplio := inventory.Evaluate([]*entity.Product{p}, stocks, 30, alertNow)
	assert.Len(t, amplio.NearExpiry, 1)
}

// Stock exactamente en el mínimo también cuenta como bajo stock (<=).
func TestEvaluate_StockIgualAlMinimo(t *testing.T) {
	p := testProduct("prod-1", 20, 20, alertNow.AddDate(1, 0, 0))

	report := inventory.Evaluate([]*entity.Product{p}, map[string]int64{"prod-1": 20}, 30, alertNow)
	assert.Len(t, report.LowStock, 1)
	assert.Equal(t, int64(20), report.LowStock[0].EffectiveStock)
}

// El caso de uso usa el stock derivado del ledger y el reloj inyectado.
func TestAlertUseCase_GetAlerts(t *testing.T) {
	p := testProduct("prod-1", 15, 20, alertNow.AddDate(0, 0, 10))
	prodRepo := newFakeProductRepo(p)
	movRepo := &fakeMovementRepo{}
	calc := inventory.NewStockCalculator(prodRepo, movRepo, logger.Nop())
	uc := inventory.NewAlertUseCase(prodRepo, calc, func() time.Time { return alertNow })
	ctx := context.Background()

	// Una entrada de 10 sube el stock a 25 > 20: deja de ser bajo stock.
	require.NoError(t, movRepo.Create(ctx, &entity.Movement{
		ID: "m1", ProductID: "prod-1", Tipo: entity.MovementTypeEntrada, Cantidad: 10, Fecha: alertNow,
	}))

	report, err := uc.GetAlerts(ctx, 30)
	require.NoError(t, err)
	assert.Empty(t, report.LowStock)
	require.Len(t, report.NearExpiry, 1)
	assert.Equal(t, int64(25), report.NearExpiry[0].EffectiveStock)
	assert.Equal(t, 10, report.NearExpiry[0].DaysToExpiry)
}

func TestAlertUseCase_DashboardStats(t *testing.T) {
	refrigerado := testProduct("refri", 5, 10, alertNow.AddDate(0, 0, 5))
	refrigerado.NecesitaRefrigeracion = true
	vencido := testProduct("vencido", 50, 5, alertNow.AddDate(0, 0, -1))
	normal := testProduct("normal", 100, 5, alertNow.AddDate(2, 0, 0))

	prodRepo := newFakeProductRepo(refrigerado, vencido, normal)
	movRepo := &fakeMovementRepo{}
	calc := inventory.NewStockCalculator(prodRepo, movRepo, logger.Nop())
	uc := inventory.NewAlertUseCase(prodRepo, calc, func() time.Time { return alertNow })

	stats, err := uc.GetDashboardStats(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStock, "solo el refrigerado está bajo el mínimo")
	assert.Equal(t, 1, stats.NearExpiry)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.Refrigeration)
}
