package postgres

import (
	"context"
	"errors"

	"github.com/Iqura-Alam/HireUp/internal/domain"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the core cares about. Everything else is either a
// transient failure or an internal one; raw codes never reach the caller.
const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
)

// isUniqueViolation reports whether err is a unique-constraint hit.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// translate maps a storage error onto the domain taxonomy. Conflicts get the
// supplied message so callers can surface "already exists" wording.
func translate(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if isUniqueViolation(err) {
		return apperror.Conflict(conflictMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeFKViolation {
		return apperror.BadRequest("Referenced record does not exist")
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.Unavailable(err)
	}
	return err
}
