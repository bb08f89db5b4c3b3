package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `code, legal_name, fantasy_name, tax_id, state_registration, state,
	neighborhood, street, postal_code, corporate_network, email, phone, payment_method`

// CustomerRepo implementación de CustomerRepository; code es la clave natural.
type CustomerRepo struct {
	q  Querier
	tx *TxRunner
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{q: pool, tx: NewTxRunner(pool)}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.Code, &c.LegalName, &c.FantasyName, &c.TaxID, &c.StateRegistration, &c.State,
		&c.Neighborhood, &c.Street, &c.PostalCode, &c.CorporateNetwork, &c.Email, &c.Phone, &c.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	const query = `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.Code, c.LegalName, c.FantasyName, c.TaxID, c.StateRegistration, c.State,
		c.Neighborhood, c.Street, c.PostalCode, c.CorporateNetwork, c.Email, c.Phone, c.PaymentMethod,
	)
	return translateError("insert customer", err)
}

// GetByCode obtiene un cliente por código.
func (r *CustomerRepo) GetByCode(ctx context.Context, code int64) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE code = $1`, code))
	return noRows(c, "get customer", err)
}

// GetByCodeOrTaxID primer cliente con ese código o ese CNPJ/CPF.
func (r *CustomerRepo) GetByCodeOrTaxID(ctx context.Context, code int64, taxID string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE code = $1 OR tax_id = $2 LIMIT 1`, code, taxID))
	return noRows(c, "get customer by code or tax id", err)
}

// List página de clientes por código descendente.
func (r *CustomerRepo) List(ctx context.Context, page repository.Page) ([]*entity.Customer, int, error) {
	return listPage(ctx, r.tx, "customers", customerColumns, "code", page, scanCustomer)
}

// ListAll todos los clientes.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	return listAll(ctx, r.q, "customers", customerColumns, "code", scanCustomer)
}

// Update reescribe todos los campos salvo el código.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	const query = `
		UPDATE customers SET
			legal_name = $2, fantasy_name = $3, tax_id = $4, state_registration = $5, state = $6,
			neighborhood = $7, street = $8, postal_code = $9, corporate_network = $10,
			email = $11, phone = $12, payment_method = $13
		WHERE code = $1`
	_, err := r.q.Exec(ctx, query,
		c.Code, c.LegalName, c.FantasyName, c.TaxID, c.StateRegistration, c.State,
		c.Neighborhood, c.Street, c.PostalCode, c.CorporateNetwork, c.Email, c.Phone, c.PaymentMethod,
	)
	return translateError("update customer", err)
}

// Delete elimina un cliente; ErrReferenced si algún relatório lo usa.
func (r *CustomerRepo) Delete(ctx context.Context, code int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE code = $1`, code)
	return translateError("delete customer", err)
}

// Count total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "customers")
}
