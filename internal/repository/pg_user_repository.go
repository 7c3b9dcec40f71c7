package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kipkirui63/all-in-one/internal/model"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	if err := scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, pgErr(err)
	}
	return &u, nil
}

const userSelectCols = `id, username, password_hash, created_at`

// Get は ID でユーザーを取得する
func (r *PgUserRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	return scanUser(row.Scan)
}

// GetByUsername はユーザー名でユーザーを取得する
func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE username = $1`, username)
	return scanUser(row.Scan)
}

// Create はユーザーを作成する
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)
		 RETURNING id, created_at`,
		user.Username, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	return pgErr(err)
}
