package repository

import (
	"errors"
	"math"

	"github.com/lib/pq"
)

// integrityConstraintViolation is SQLSTATE class 23 (not null, unique,
// foreign key and check violations).
const integrityConstraintViolation = "23"

// IsConstraintViolation reports whether err carries a PostgreSQL integrity
// constraint error. Such failures are caused by the submitted data rather
// than by the database being unavailable.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Class() == integrityConstraintViolation
}

// storableID reports whether id fits the SERIAL (int4) key columns. Larger
// values can never match a row and would fail the query with SQLSTATE 22003.
func storableID(id int) bool {
	return id > 0 && id <= math.MaxInt32
}
