package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `code, description, group_name, company, weight`

// ProductRepo implementación de ProductRepository.
type ProductRepo struct {
	q  Querier
	tx *TxRunner
}

// NewProductRepository construye el adaptador.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{q: pool, tx: NewTxRunner(pool)}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.Code, &p.Description, &p.Group, &p.Company, &p.Weight); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto. Weight nil se guarda como NULL.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		p.Code, p.Description, p.Group, p.Company, p.Weight)
	return translateError("insert product", err)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(ctx context.Context, code int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE code = $1`, code))
	return noRows(p, "get product", err)
}

// List página de productos por código descendente.
func (r *ProductRepo) List(ctx context.Context, page repository.Page) ([]*entity.Product, int, error) {
	return listPage(ctx, r.tx, "products", productColumns, "code", page, scanProduct)
}

// ListAll catálogo completo.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return listAll(ctx, r.q, "products", productColumns, "code", scanProduct)
}

// Update reescribe descripción, grupo, empresa y peso.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET description = $2, group_name = $3, company = $4, weight = $5 WHERE code = $1`,
		p.Code, p.Description, p.Group, p.Company, p.Weight)
	return translateError("update product", err)
}

// Delete elimina un producto; ErrReferenced si hay registros mensales.
func (r *ProductRepo) Delete(ctx context.Context, code int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE code = $1`, code)
	return translateError("delete product", err)
}

// Count total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "products")
}
