package postgres

import (
	"context"
	"fmt"

	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo persistencia del ledger de movimientos sobre PostgreSQL
// (usable con pool o tx). Append-only: no expone UPDATE ni DELETE, y la
// tabla movimientos tampoco debería aceptar ninguno fuera de migraciones.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega un movimiento al ledger.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, fecha, motivo, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	motivo := (*string)(nil)
	if m.Motivo != "" {
		motivo = &m.Motivo
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Tipo, m.Cantidad, m.Fecha, motivo, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// List devuelve movimientos que cumplen el filtro, el más reciente primero.
// Filtro explícito combinado con AND; campos vacíos no filtran.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT id, producto_id, tipo, cantidad, fecha, motivo, created_by, created_at
		FROM movimientos WHERE 1=1`
	args := []any{}
	i := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(` AND producto_id = $%d`, i)
		args = append(args, filter.ProductID)
		i++
	}
	if filter.Tipo != "" {
		query += fmt.Sprintf(` AND tipo = $%d`, i)
		args = append(args, filter.Tipo)
		i++
	}
	if filter.FechaDesde != nil {
		query += fmt.Sprintf(` AND fecha >= $%d`, i)
		args = append(args, *filter.FechaDesde)
		i++
	}
	if filter.FechaHasta != nil {
		query += fmt.Sprintf(` AND fecha <= $%d`, i)
		args = append(args, *filter.FechaHasta)
		i++
	}
	// Orden estable para auditoría: fecha y, a igual fecha, orden de inserción.
	query += ` ORDER BY fecha DESC, created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, i, i+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var motivo *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Tipo, &m.Cantidad, &m.Fecha, &motivo, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		if motivo != nil {
			m.Motivo = *motivo
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumByProduct suma entradas y salidas de un producto sobre todo su historial.
func (r *MovementRepo) SumByProduct(ctx context.Context, productID string) (repository.StockDelta, error) {
	query := `
		SELECT
			COALESCE(SUM(cantidad) FILTER (WHERE tipo = 'entrada'), 0),
			COALESCE(SUM(cantidad) FILTER (WHERE tipo = 'salida'), 0)
		FROM movimientos WHERE producto_id = $1`
	var d repository.StockDelta
	if err := r.q.QueryRow(ctx, query, productID).Scan(&d.Entradas, &d.Salidas); err != nil {
		return repository.StockDelta{}, fmt.Errorf("sum movimientos: %w", err)
	}
	return d, nil
}

// SumAll suma entradas y salidas agrupadas por producto en una sola consulta.
func (r *MovementRepo) SumAll(ctx context.Context) (map[string]repository.StockDelta, error) {
	query := `
		SELECT producto_id,
			COALESCE(SUM(cantidad) FILTER (WHERE tipo = 'entrada'), 0),
			COALESCE(SUM(cantidad) FILTER (WHERE tipo = 'salida'), 0)
		FROM movimientos GROUP BY producto_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sum movimientos agrupado: %w", err)
	}
	defer rows.Close()

	deltas := make(map[string]repository.StockDelta)
	for rows.Next() {
		var productID string
		var d repository.StockDelta
		if err := rows.Scan(&productID, &d.Entradas, &d.Salidas); err != nil {
			return nil, fmt.Errorf("scan suma: %w", err)
		}
		deltas[productID] = d
	}
	return deltas, rows.Err()
}

// CountByProduct número de movimientos que referencian al producto.
func (r *MovementRepo) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos WHERE producto_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movimientos: %w", err)
	}
	return n, nil
}
