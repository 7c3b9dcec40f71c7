package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage backends selectable through configuration.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Store bundles the record repositories of one backend.
type Store struct {
	Backend    string
	Users      UserRepository
	Newsletter NewsletterRepository
	Contacts   ContactRepository
	Meetings   MeetingRepository
	DB         DB

	closeFn func(ctx context.Context) error
}

// Close releases the backend's connections.
func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// Options selects and configures a backend.
type Options struct {
	Backend       string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
}

// Open connects to the configured backend.
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendPostgres:
		pool, err := NewPool(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return NewPgStore(pool), nil
	case BackendMongo:
		st, err := OpenMongoStore(ctx, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// NewPool は PostgreSQL 接続プールを生成する
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// NewPgStore wires the PostgreSQL repositories around pool.
func NewPgStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Backend:    BackendPostgres,
		Users:      NewPgUserRepository(pool),
		Newsletter: NewPgNewsletterRepository(pool),
		Contacts:   NewPgContactRepository(pool),
		Meetings:   NewPgMeetingRepository(pool),
		DB:         pool,
		closeFn: func(context.Context) error {
			pool.Close()
			return nil
		},
	}
}
