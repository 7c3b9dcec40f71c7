package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kipkirui63/all-in-one/internal/model"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and CreatedAt
// from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, phone, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, model.StringValue(msg.Phone), msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// List returns contact messages oldest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, created_at
		 FROM contact_messages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
