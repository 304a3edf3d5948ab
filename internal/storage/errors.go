package storage

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error classes surfaced to callers so handlers can distinguish
// constraint violations from plain failures.
const (
	pqUniqueViolation = "23505"
	pqCheckViolation  = "23514"
	pqNumericOverflow = "22003"
)

// IsUniqueViolation reports whether err is a unique-constraint violation,
// e.g. a duplicate (owner, name) account pair or a duplicate box name.
func IsUniqueViolation(err error) bool {
	return hasPQCode(err, pqUniqueViolation)
}

// IsCheckViolation reports whether err is a check-constraint violation,
// e.g. a zero transaction amount or a negative transfer amount reaching
// the database.
func IsCheckViolation(err error) bool {
	return hasPQCode(err, pqCheckViolation)
}

// IsNumericOverflow reports whether err means a balance or amount exceeded
// the numeric(13,2) storage precision. The prior stored value is intact;
// in-memory state should be reloaded before retrying.
func IsNumericOverflow(err error) bool {
	return hasPQCode(err, pqNumericOverflow)
}

func hasPQCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
