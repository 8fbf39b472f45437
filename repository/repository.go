package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hackhub/models"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqInvalidTextEncoding = "22P02"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) PostgresRepository {
	return PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// storageErr translates driver errors into the shared storage sentinels.
// A malformed uuid can never match a row, so it is reported as missing.
func storageErr(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", models.ErrDuplicate, pqErr.Constraint)
	case pqInvalidTextEncoding:
		return sql.ErrNoRows
	}
	return err
}

func (r PostgresRepository) inTx(
	ctx context.Context,
	fn func(tx *sql.Tx) error,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// conditions accumulates WHERE clauses with numbered placeholders. Each "?"
// in a clause is bound to the same argument.
type conditions struct {
	clauses []string
	args    []interface{}
}

func (c *conditions) add(clause string, arg interface{}) {
	c.args = append(c.args, arg)
	c.clauses = append(c.clauses, strings.ReplaceAll(clause, "?", "$"+strconv.Itoa(len(c.args))))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// bind appends an argument outside the WHERE clause and returns its placeholder.
func (c *conditions) bind(arg interface{}) string {
	c.args = append(c.args, arg)
	return "$" + strconv.Itoa(len(c.args))
}

func textArray(v []string) interface{} {
	if v == nil {
		v = []string{}
	}
	return pq.Array(v)
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
