package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/charcreate/internal/model"
)

// DB wraps a pgx connection pool for account operations.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool returns the underlying pgx pool.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// GetAccount retrieves an account by login.
// Returns nil, nil if the account does not exist.
func (d *DB) GetAccount(ctx context.Context, login string) (*model.Account, error) {
	login = strings.ToLower(login)
	acc := model.Account{Login: login}
	var accessLevel int32
	err := d.pool.QueryRow(ctx,
		`SELECT access_level, young, char_limit FROM accounts WHERE login = $1`, login,
	).Scan(&accessLevel, &acc.Young, &acc.CharLimit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying account %q: %w", login, err)
	}
	acc.AccessLevel = model.AccessLevel(accessLevel)
	return &acc, nil
}

// CreateAccount inserts a new account.
func (d *DB) CreateAccount(ctx context.Context, acc model.Account) error {
	login := strings.ToLower(acc.Login)
	if acc.CharLimit <= 0 {
		acc.CharLimit = model.DefaultCharLimit
	}
	_, err := d.pool.Exec(ctx,
		`INSERT INTO accounts (login, access_level, young, char_limit)
		 VALUES ($1, $2, $3, $4)`,
		login, int32(acc.AccessLevel), acc.Young, acc.CharLimit,
	)
	if err != nil {
		return fmt.Errorf("creating account %q: %w", login, err)
	}
	slog.Info("created account", "login", login)
	return nil
}
