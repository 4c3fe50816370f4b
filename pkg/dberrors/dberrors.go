// Package dberrors отделяет недоступность базы данных от дефектных запросов.
// Репозитории используют его, чтобы поднять наверх отдельный вид ошибки,
// который HTTP слой превращает в 503 вместо 500.
package dberrors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

// SQLSTATE classes that mean the store is unusable right now rather than the
// query being wrong: connection exceptions (08), transaction rollbacks such
// as serialization failures (40), insufficient resources (53), operator
// intervention (57) and system errors (58).
var unavailableClasses = map[pq.ErrorClass]struct{}{
	"08": {},
	"40": {},
	"53": {},
	"57": {},
	"58": {},
}

// Unavailable reports whether err stems from the database being unreachable,
// shutting down, out of resources or aborting the transaction. These are
// conditions a retry can fix, unlike a malformed query or a constraint
// violation.
func Unavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		_, ok := unavailableClasses[pqErr.Code.Class()]
		return ok
	}

	return false
}
