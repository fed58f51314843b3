package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el motor de inventario. Reproducen el contrato de los
// puertos: ledger append-only y serialización por transacción (el mutex del
// fakeTxRunner juega el papel del SELECT FOR UPDATE de PostgreSQL).
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return r.all(), nil
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	return r.all(), nil
}

func (r *fakeProductRepo) all() []*entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	return list
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Movement
	// Más reciente primero: el slice se llena en orden de inserción.
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		if f.FechaDesde != nil && m.Fecha.Before(*f.FechaDesde) {
			continue
		}
		if f.FechaHasta != nil && m.Fecha.After(*f.FechaHasta) {
			continue
		}
		out = append(out, m)
	}
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) SumByProduct(_ context.Context, productID string) (repository.StockDelta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var d repository.StockDelta
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		if m.Tipo == entity.MovementTypeSalida {
			d.Salidas += m.Cantidad
		} else {
			d.Entradas += m.Cantidad
		}
	}
	return d, nil
}

func (r *fakeMovementRepo) SumAll(_ context.Context) (map[string]repository.StockDelta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deltas := make(map[string]repository.StockDelta)
	for _, m := range r.movements {
		d := deltas[m.ProductID]
		if m.Tipo == entity.MovementTypeSalida {
			d.Salidas += m.Cantidad
		} else {
			d.Entradas += m.Cantidad
		}
		deltas[m.ProductID] = d
	}
	return deltas, nil
}

func (r *fakeMovementRepo) CountByProduct(_ context.Context, productID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, m := range r.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.movements)
}

// fakeTxRunner serializa los submits con un mutex, como lo haría el bloqueo
// de fila de PostgreSQL dentro de la transacción real.
type fakeTxRunner struct {
	mu   sync.Mutex
	mov  *fakeMovementRepo
	prod *fakeProductRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.mov, t.prod)
}

// producto de prueba con fechas razonables.
func testProduct(id string, baseline, stockMinimo int64, expiry time.Time) *entity.Product {
	return &entity.Product{
		ID:               id,
		Nombre:           "Acetaminofén 500mg",
		Laboratorio:      "Genfar",
		Proveedor:        "Distribuidora Central",
		Lote:             "L-2024-001",
		Presentacion:     "Caja x 30 tabletas",
		Ubicacion:        "Estante A1",
		FechaFabricacion: expiry.AddDate(-2, 0, 0),
		FechaVencimiento: expiry,
		StockMinimo:      stockMinimo,
		CantidadInicial:  baseline,
	}
}
