package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kipkirui63/all-in-one/internal/model"
)

// PgNewsletterRepository is the PostgreSQL implementation of NewsletterRepository.
// Uniqueness of email is enforced by the newsletter_subscriptions_email_key constraint.
type PgNewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewPgNewsletterRepository creates a PgNewsletterRepository backed by the given pool.
func NewPgNewsletterRepository(pool *pgxpool.Pool) *PgNewsletterRepository {
	return &PgNewsletterRepository{pool: pool}
}

var _ NewsletterRepository = (*PgNewsletterRepository)(nil)

const newsletterSelectCols = `id, email, first_name, last_name, subscribed_at`

func scanSubscription(scan func(...any) error) (*model.NewsletterSubscription, error) {
	var s model.NewsletterSubscription
	if err := scan(&s.ID, &s.Email, &s.FirstName, &s.LastName, &s.SubscribedAt); err != nil {
		return nil, pgErr(err)
	}
	return &s, nil
}

// Create inserts a row and populates sub.ID and sub.SubscribedAt from RETURNING.
func (r *PgNewsletterRepository) Create(ctx context.Context, sub *model.NewsletterSubscription) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO newsletter_subscriptions (email, first_name, last_name)
		 VALUES ($1, $2, $3)
		 RETURNING id, subscribed_at`,
		sub.Email, sub.FirstName, sub.LastName,
	).Scan(&sub.ID, &sub.SubscribedAt)
	return pgErr(err)
}

func (r *PgNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+newsletterSelectCols+` FROM newsletter_subscriptions WHERE email = $1`, email)
	return scanSubscription(row.Scan)
}

func (r *PgNewsletterRepository) List(ctx context.Context) ([]*model.NewsletterSubscription, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+newsletterSelectCols+` FROM newsletter_subscriptions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.NewsletterSubscription
	for rows.Next() {
		s, err := scanSubscription(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
