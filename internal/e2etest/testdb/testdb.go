// Package testdb points end-to-end tests at a disposable Postgres database.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dsnEnv = "TEST_DATABASE_URI"

var ErrNoDatabase = errors.New(dsnEnv + " is not set")

type TestDBInstance struct {
	DSN string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		return nil, ErrNoDatabase
	}
	return &TestDBInstance{DSN: dsn}, nil
}

// Down removes the rows written by the tests.
func (i *TestDBInstance) Down() error {
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, i.DSN)
	if err != nil {
		return fmt.Errorf("connect test db: %w", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, "TRUNCATE TABLE order_items, orders RESTART IDENTITY")
	if err != nil && !isUndefinedTable(err) {
		return fmt.Errorf("truncate test db: %w", err)
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable
}
