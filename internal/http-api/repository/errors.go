package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for duplicate key violations.
const uniqueViolation = "23505"

// ErrTokenNotFound is returned when a refresh token is absent from the session store.
var ErrTokenNotFound = errors.New("refresh token not found")

// translateError maps driver-level errors onto gorm sentinels so the service
// layer can errors.Is on them without importing pgx.
// Uniqueness is checked by the services before insert; the constraint error
// only surfaces if two requests race past the check.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return gorm.ErrDuplicatedKey
	}
	return err
}
