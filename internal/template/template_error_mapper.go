package template

import (
	"errors"
	"strings"

	templateerrors "go-onboarding/internal/template/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return templateerrors.ErrTemplateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "department") {
				return templateerrors.ErrDepartmentNotFound
			}
			return templateerrors.ErrTemplateAssigned
		}
	}

	return err
}

func mapTaskError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return templateerrors.ErrTaskNotFound
	}
	return mapRepositoryError(err)
}
