package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Outcome is the closed set of store-error shapes repositories translate.
// Anything that is not one of the recognized variants is OutcomeOther and
// propagates unchanged.
type Outcome int

const (
	OutcomeOther Outcome = iota
	OutcomeNoRows
	OutcomeUniqueViolation
	OutcomeForeignKeyViolation
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// ClassifyError maps a pgx error to an Outcome. Repositories switch on the
// result instead of sniffing error strings.
func ClassifyError(err error) Outcome {
	if errors.Is(err, pgx.ErrNoRows) {
		return OutcomeNoRows
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return OutcomeUniqueViolation
		case codeForeignKeyViolation:
			return OutcomeForeignKeyViolation
		}
	}
	return OutcomeOther
}
