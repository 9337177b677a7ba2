package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"

	"github.com/btmxh/folio/internal/errs"
	_ "github.com/lib/pq"
)

var DB *sql.DB
var GenericError = errors.New("Unable to access database.")

//go:embed schema.sql
var schema string

type Tx struct {
	ctx         context.Context
	transaction *sql.Tx
	handler     errs.ErrorHandler
}

func (tx *Tx) PublicError(statusCode int, err error) {
	tx.handler.PublicError(statusCode, err)
}

func (tx *Tx) PrivateError(err error) {
	tx.handler.PrivateError(err)
}

type QueryRow struct {
	row *sql.Row
	tx  *Tx
}

func InitDB(connStr string) error {
	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	return DB.Ping()
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context) error {
	_, err := DB.ExecContext(ctx, schema)
	return err
}

func DatabaseError(handler errs.ErrorHandler, err error) {
	handler.PrivateError(err)
	handler.PublicError(http.StatusInternalServerError, GenericError)
}

func BeginTx(ctx context.Context, handler errs.ErrorHandler) *Tx {
	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		DatabaseError(handler, err)
		return nil
	}

	return &Tx{ctx: ctx, transaction: tx, handler: handler}
}

func (tx *Tx) Exec(result *sql.Result, query string, args ...any) (hasErr bool) {
	res, err := tx.transaction.ExecContext(tx.ctx, query, args...)
	if err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	if result != nil {
		*result = res
	}

	return false
}

// ExecAffected runs query and reports whether any row was touched.
func (tx *Tx) ExecAffected(query string, args ...any) (affected bool, hasErr bool) {
	var result sql.Result
	if tx.Exec(&result, query, args...) {
		return false, true
	}

	count, err := result.RowsAffected()
	if err != nil {
		DatabaseError(tx.handler, err)
		return false, true
	}

	return count > 0, false
}

func (tx *Tx) Query(rows **sql.Rows, query string, args ...any) (hasErr bool) {
	r, err := tx.transaction.QueryContext(tx.ctx, query, args...)
	if err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	if rows != nil {
		*rows = r
	}

	return false
}

// ScanRows calls scan for every row and closes rows.
func (tx *Tx) ScanRows(rows *sql.Rows, scan func(rows *sql.Rows) error) (hasErr bool) {
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			DatabaseError(tx.handler, err)
			return true
		}
	}

	if err := rows.Err(); err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	return false
}

func (tx *Tx) QueryRow(query string, args ...any) *QueryRow {
	return &QueryRow{row: tx.transaction.QueryRowContext(tx.ctx, query, args...), tx: tx}
}

func (row *QueryRow) Scan(hasRow *bool, dest ...any) (hasErr bool) {
	err := row.row.Scan(dest...)
	hasErr = err != nil && (hasRow == nil || err != sql.ErrNoRows)
	if hasErr {
		DatabaseError(row.tx.handler, err)
	}
	if hasRow != nil {
		*hasRow = err == nil
	}
	return hasErr
}

func (tx *Tx) Rollback() {
	tx.transaction.Rollback()
}

func (tx *Tx) Commit() (hasErr bool) {
	err := tx.transaction.Commit()
	if err != nil {
		DatabaseError(tx.handler, err)
		return true
	}

	return false
}

func CloseDB() {
	if err := DB.Close(); err != nil {
		slog.Warn("error while closing database", "err", err)
	}
}
