package psql

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	databaseerrors "labshop/internal/database"
	"labshop/internal/models"
	"labshop/pkg/lib/logger/sl"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	selectCartQuery = `
		SELECT product_id AS name, quantity AS price
		FROM cart;
	`
	insertCartQuery = `
		INSERT INTO cart (product_id, quantity)
		VALUES ($1, $2);
	`
)

type Storage struct {
	log *slog.Logger
	db  *sqlx.DB
}

// New prepares a connection pool without dialing, so bad settings show up
// as failed requests rather than a failed start. With migrate set the cart
// table is created first, which does dial.
func New(log *slog.Logger, connStr string, migrate bool) (*Storage, error) {
	const op = "database.psql.New"

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		log.With("op", op).Error("Error opening database", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if migrate {
		if err := Migrate(db); err != nil {
			log.With("op", op).Error("Error applying migrations", sl.Err(err))
			db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &Storage{
		log: log,
		db:  db,
	}, nil
}

func NewWithParams(log *slog.Logger, db *sqlx.DB) *Storage {
	return &Storage{
		log: log,
		db:  db,
	}
}

func Migrate(db *sqlx.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.Up(db.DB, "migrations")
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ViewCart(ctx context.Context) ([]models.CartRow, error) {
	const op = "database.psql.ViewCart"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		log.Error("Failed to acquire connection", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, databaseerrors.ErrConnection, err)
	}
	defer conn.Close()

	rows, err := selectCart(ctx, conn)
	if err != nil {
		log.Error("Failed to select cart rows", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

// AddToCart inserts row and commits, then reads the whole table back on the
// same connection.
func (s *Storage) AddToCart(ctx context.Context, row models.NewCartRow) ([]models.CartRow, error) {
	const op = "database.psql.AddToCart"
	log := s.log.With(
		"op", op,
	)

	select {
	case <-ctx.Done():
		log.Error("Context is over", sl.Err(ctx.Err()))
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		log.Error("Failed to acquire connection", sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, databaseerrors.ErrConnection, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		log.Error("Failed to begin transaction", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertCartQuery, row.ProductId, row.Quantity); err != nil {
		log.Error("Failed to insert cart row", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := selectCart(ctx, conn)
	if err != nil {
		log.Error("Failed to select cart rows", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rows, nil
}

func selectCart(ctx context.Context, conn *sqlx.Conn) ([]models.CartRow, error) {
	rows := make([]models.CartRow, 0, 10)
	if err := conn.SelectContext(ctx, &rows, selectCartQuery); err != nil {
		return nil, err
	}

	return rows, nil
}
