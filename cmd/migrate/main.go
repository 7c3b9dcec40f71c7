package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kipkirui63/all-in-one/internal/config"
	"github.com/kipkirui63/all-in-one/internal/logging"
)

const (
	upSuffix          = ".up.sql"
	dropAllFile       = "000_drop_all.sql"
	consolidatedFile  = "000_consolidated.sql"
	createVersionsSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
	name       TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
)

const usageText = `Usage: migrate [command]

Commands:
  (default)   未適用のマイグレーションを適用
  reset       全テーブルを DROP し、集約スキーマで再作成
  fresh       全テーブルを DROP し、全マイグレーションを順番に適用
  status      適用済み / 未適用のマイグレーションを一覧表示`

// migrator applies the numbered *.up.sql files of dir and records each one
// in schema_migrations.
type migrator struct {
	pool *pgxpool.Pool
	dir  string
	out  io.Writer
}

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if !slices.Contains([]string{"", "reset", "fresh", "status"}, cmd) {
		fmt.Fprintln(os.Stderr, usageText)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	m := &migrator{pool: pool, dir: migrationDir(), out: os.Stdout}
	if err := m.run(ctx, cmd); err != nil {
		logging.Fatal("migrate failed", "command", cmd, "error", err)
	}
}

func (m *migrator) run(ctx context.Context, cmd string) error {
	switch cmd {
	case "reset":
		if err := m.dropAll(ctx); err != nil {
			return err
		}
		return m.consolidated(ctx)
	case "fresh":
		if err := m.dropAll(ctx); err != nil {
			return err
		}
		return m.up(ctx)
	case "status":
		return m.status(ctx)
	default:
		return m.up(ctx)
	}
}

// migrationDir は cmd/migrate から実行された場合も考慮する
func migrationDir() string {
	if _, err := os.Stat("migrations"); errors.Is(err, os.ErrNotExist) {
		return "../migrations"
	}
	return "migrations"
}

// upMigrations returns the migration names (file name minus .up.sql) in
// apply order.
func upMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), upSuffix); ok && !e.IsDir() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// pending keeps the names that are not in applied, preserving order.
func pending(names []string, applied map[string]bool) []string {
	var out []string
	for _, n := range names {
		if !applied[n] {
			out = append(out, n)
		}
	}
	return out
}

func (m *migrator) readSQL(file string) (string, error) {
	b, err := os.ReadFile(filepath.Join(m.dir, file))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(b), nil
}

// applied ensures schema_migrations exists and returns its names.
func (m *migrator) applied(ctx context.Context) (map[string]bool, error) {
	if _, err := m.pool.Exec(ctx, createVersionsSQL); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}
	rows, err := m.pool.Query(ctx, "SELECT name FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("query schema_migrations: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan schema_migrations: %w", err)
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set, nil
}

// up applies every pending migration. Each file and its schema_migrations
// row commit together.
func (m *migrator) up(ctx context.Context) error {
	names, err := upMigrations(m.dir)
	if err != nil {
		return err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return err
	}
	todo := pending(names, done)
	if len(todo) == 0 {
		slog.Info("all migrations already applied")
		return nil
	}
	for _, name := range todo {
		sql, err := m.readSQL(name + upSuffix)
		if err != nil {
			return err
		}
		err = pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, sql); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		slog.Info("migration applied", "migration", name)
	}
	slog.Info("migrations completed", "count", len(todo))
	return nil
}

func (m *migrator) dropAll(ctx context.Context) error {
	sql, err := m.readSQL(dropAllFile)
	if err != nil {
		return err
	}
	if _, err := m.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	slog.Info("all tables dropped")
	return nil
}

// consolidated creates the final schema in one step and marks every
// numbered migration as applied.
func (m *migrator) consolidated(ctx context.Context) error {
	sql, err := m.readSQL(consolidatedFile)
	if err != nil {
		return err
	}
	names, err := upMigrations(m.dir)
	if err != nil {
		return err
	}
	err = pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sql); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, createVersionsSQL); err != nil {
			return err
		}
		for _, name := range names {
			if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", name); err != nil {
				return fmt.Errorf("mark %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("consolidated schema: %w", err)
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(names))
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	names, err := upMigrations(m.dir)
	if err != nil {
		return err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return err
	}
	writeStatus(m.out, names, done)
	slog.Info("migration status", "pending", len(pending(names, done)))
	return nil
}

func writeStatus(w io.Writer, names []string, applied map[string]bool) {
	for _, n := range names {
		state := "applied"
		if !applied[n] {
			state = "pending"
		}
		fmt.Fprintf(w, "%-8s %s\n", state, n)
	}
}
