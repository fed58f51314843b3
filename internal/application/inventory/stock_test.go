package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/pkg/logger"
)

// Invariante: stock = cantidad_inicial + Σentradas − Σsalidas, siempre >= 0.
func TestComputeStock_PliegueDelLedger(t *testing.T) {
	_, calc, movRepo, _ := newEngine(testProduct(testProductID, 20, 5, time.Now().AddDate(1, 0, 0)))
	ctx := context.Background()

	for _, m := range []struct {
		tipo     string
		cantidad int64
	}{
		{entity.MovementTypeEntrada, 30},
		{entity.MovementTypeSalida, 12},
		{entity.MovementTypeEntrada, 7},
		{entity.MovementTypeSalida, 5},
	} {
		require.NoError(t, movRepo.Create(ctx, &entity.Movement{
			ID: m.tipo, ProductID: testProductID, Tipo: m.tipo, Cantidad: m.cantidad, Fecha: time.Now(),
		}))
	}

	stock, err := calc.ComputeStock(ctx, testProductID)
	require.NoError(t, err)
	// 20 + (30+7) − (12+5) = 40
	assert.Equal(t, int64(40), stock)
}

// Lectura idempotente: dos cómputos sin submits intermedios dan lo mismo.
func TestComputeStock_LecturaIdempotente(t *testing.T) {
	uc, calc, _, _ := newEngine(testProduct(testProductID, 100, 10, time.Now().AddDate(1, 0, 0)))
	ctx := context.Background()

	_, err := uc.Submit(ctx, inventory.SubmitMovementInput{
		ProductID: testProductID, Tipo: entity.MovementTypeSalida, Cantidad: 25, UserID: testUserID,
	})
	require.NoError(t, err)

	first, err := calc.ComputeStock(ctx, testProductID)
	require.NoError(t, err)
	second, err := calc.ComputeStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(75), first)
}

func TestComputeStock_ProductoInexistente(t *testing.T) {
	_, calc, _, _ := newEngine()

	_, err := calc.ComputeStock(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// Un ledger corrupto (salidas que exceden base + entradas, imposible por la
// vía del validador) produce un clamp en 0 y dispara la advertencia de
// consistencia, nunca un valor negativo ni un error al usuario.
func TestComputeStock_ClampYAdvertenciaDeConsistencia(t *testing.T) {
	prodRepo := newFakeProductRepo(testProduct(testProductID, 10, 2, time.Now().AddDate(1, 0, 0)))
	movRepo := &fakeMovementRepo{}
	calc := inventory.NewStockCalculator(prodRepo, movRepo, logger.Nop())

	var warnedProduct string
	var warnedValue int64
	calc.OnConsistencyWarning = func(productID string, computed int64) {
		warnedProduct = productID
		warnedValue = computed
	}

	ctx := context.Background()
	// Escritura directa al fake, saltándose el validador a propósito.
	require.NoError(t, movRepo.Create(ctx, &entity.Movement{
		ID: "m1", ProductID: testProductID, Tipo: entity.MovementTypeSalida, Cantidad: 25, Fecha: time.Now(),
	}))

	stock, err := calc.ComputeStock(ctx, testProductID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock, "el clamp defensivo fija el piso en 0")
	assert.Equal(t, testProductID, warnedProduct)
	assert.Equal(t, int64(-15), warnedValue)
}

// ComputeAll entrega el mismo resultado que ComputeStock producto a producto,
// usando la consulta agrupada.
func TestComputeAll_CoincideConComputeStock(t *testing.T) {
	pA := testProduct("prod-a", 50, 5, time.Now().AddDate(1, 0, 0))
	pB := testProduct("prod-b", 0, 5, time.Now().AddDate(1, 0, 0))
	uc, calc, _, prodRepo := newEngine(pA, pB)
	ctx := context.Background()

	_, err := uc.Submit(ctx, inventory.SubmitMovementInput{
		ProductID: "prod-a", Tipo: entity.MovementTypeSalida, Cantidad: 20, UserID: testUserID,
	})
	require.NoError(t, err)
	_, err = uc.Submit(ctx, inventory.SubmitMovementInput{
		ProductID: "prod-b", Tipo: entity.MovementTypeEntrada, Cantidad: 8, UserID: testUserID,
	})
	require.NoError(t, err)

	products, err := prodRepo.ListAll(ctx)
	require.NoError(t, err)
	stocks, err := calc.ComputeAll(ctx, products)
	require.NoError(t, err)

	assert.Equal(t, int64(30), stocks["prod-a"])
	assert.Equal(t, int64(8), stocks["prod-b"])

	for _, p := range products {
		one, err := calc.ComputeStock(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, one, stocks[p.ID], "bulk y por-producto deben coincidir para %s", p.ID)
	}
}
