package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

// MySQL server error numbers
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrNoReferenced   = 1452
	mysqlErrDeadlock       = 1213
	mysqlErrLockWait       = 1205
)

// Querier is satisfied by *sql.DB and *sql.Tx
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func mysqlErrNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

func isDuplicateKey(err error) bool {
	return mysqlErrNumber(err) == mysqlErrDuplicateEntry
}

func isMissingReference(err error) bool {
	return mysqlErrNumber(err) == mysqlErrNoReferenced
}

// dbError wraps a driver failure. Duplicate keys become conflicts on the
// given unique field; everything else is a DatabaseError.
func dbError(op, resource, field, value string, err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return appErrors.NewConflictError(resource, field, value)
	}
	if isMissingReference(err) {
		return appErrors.NewValidationError(field, "referenced object does not exist")
	}
	return appErrors.NewDatabaseError(op, err)
}

// rowError maps sql.ErrNoRows to a NotFoundError
func rowError(op, resource string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NewNotFoundError(resource, strconv.FormatInt(id, 10))
	}
	return appErrors.NewDatabaseError(op, err)
}

// affectedOrNotFound turns a zero-row UPDATE/DELETE into a NotFoundError
func affectedOrNotFound(res sql.Result, op, resource string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return appErrors.NewDatabaseError(op, err)
	}
	if n == 0 {
		return appErrors.NewNotFoundError(resource, strconv.FormatInt(id, 10))
	}
	return nil
}

// placeholders returns "?, ?, ?" for n arguments
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// columns joins column names for a SELECT list
func columns(cols ...string) string {
	return strings.Join(cols, ", ")
}

// setClause builds "a = ?, b = ?" for an UPDATE
func setClause(cols ...string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c + " = ?"
	}
	return strings.Join(out, ", ")
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
