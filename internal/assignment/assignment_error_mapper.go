package assignment

import (
	"errors"
	"strings"

	assignmenterrors "go-onboarding/internal/assignment/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return assignmenterrors.ErrTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return assignmenterrors.ErrAlreadyAssigned
		case "23503":
			return assignmenterrors.ErrEmployeeNotFound
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "unique constraint failed") {
		return assignmenterrors.ErrAlreadyAssigned
	}

	return err
}
