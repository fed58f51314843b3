package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/entity"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, laboratorio, proveedor, lote, presentacion, ubicacion,
	necesita_refrigeracion, fecha_fabricacion, fecha_vencimiento, stock_minimo, cantidad_inicial,
	created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (id, nombre, laboratorio, proveedor, lote, presentacion, ubicacion,
			necesita_refrigeracion, fecha_fabricacion, fecha_vencimiento, stock_minimo, cantidad_inicial,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Laboratorio, p.Proveedor, p.Lote, p.Presentacion, p.Ubicacion,
		p.NecesitaRefrigeracion, p.FechaFabricacion, p.FechaVencimiento, p.StockMinimo, p.CantidadInicial,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Laboratorio, &p.Proveedor, &p.Lote, &p.Presentacion, &p.Ubicacion,
		&p.NecesitaRefrigeracion, &p.FechaFabricacion, &p.FechaVencimiento, &p.StockMinimo, &p.CantidadInicial,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan producto: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByIDForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Es el punto de serialización por producto del motor de movimientos: debe
// llamarse con un Querier atado a una transacción.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// Update actualiza campos descriptivos y stock mínimo. cantidad_inicial no
// se toca: el stock actual vive en el ledger de movimientos.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $2, laboratorio = $3, proveedor = $4, lote = $5,
			presentacion = $6, ubicacion = $7, necesita_refrigeracion = $8,
			fecha_fabricacion = $9, fecha_vencimiento = $10, stock_minimo = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Laboratorio, p.Proveedor, p.Lote,
		p.Presentacion, p.Ubicacion, p.NecesitaRefrigeracion,
		p.FechaFabricacion, p.FechaVencimiento, p.StockMinimo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto por ID. La restricción referencial de la tabla
// movimientos impide borrar productos con historial.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductHasMovements
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// List lista productos con filtros opcionales combinados con AND.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE 1=1`
	args := []any{}
	i := 1
	if filter.Search != "" {
		query += fmt.Sprintf(` AND (nombre ILIKE $%d OR laboratorio ILIKE $%d OR lote ILIKE $%d)`, i, i, i)
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	if filter.Refrigeracion != nil {
		query += fmt.Sprintf(` AND necesita_refrigeracion = $%d`, i)
		args = append(args, *filter.Refrigeracion)
		i++
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, i, i+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListAll devuelve el catálogo completo (alertas, reportes).
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *ProductRepo) scanAll(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Laboratorio, &p.Proveedor, &p.Lote, &p.Presentacion, &p.Ubicacion,
			&p.NecesitaRefrigeracion, &p.FechaFabricacion, &p.FechaVencimiento, &p.StockMinimo, &p.CantidadInicial,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
