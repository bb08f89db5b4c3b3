package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, username, password, role, active, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q  Querier
	tx *TxRunner
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{q: pool, tx: NewTxRunner(pool)}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario y completa su ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
		INSERT INTO users (name, username, password, role, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, user.Name, user.Username, user.PasswordHash, user.Role, user.Active).
		Scan(&user.ID, &user.CreatedAt)
	return translateError("insert user", err)
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return noRows(u, "get user by id", err)
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	return noRows(u, "get user by username", err)
}

// Update reescribe nombre, username, password, rol y estado.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
		UPDATE users SET name = $2, username = $3, password = $4, role = $5, active = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, user.ID, user.Name, user.Username, user.PasswordHash, user.Role, user.Active)
	return translateError("update user", err)
}

// List página de usuarios por id descendente.
func (r *UserRepo) List(ctx context.Context, page repository.Page) ([]*entity.User, int, error) {
	return listPage(ctx, r.tx, "users", userColumns, "id", page, scanUser)
}

// ListAll todos los usuarios.
func (r *UserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	return listAll(ctx, r.q, "users", userColumns, "id", scanUser)
}

// Delete elimina un usuario; ErrReferenced si tiene relatórios.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return translateError("delete user", err)
}
