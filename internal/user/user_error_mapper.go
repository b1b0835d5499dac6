package user

import (
	"errors"
	"strings"

	usererrors "go-onboarding/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError dipakai juga oleh modul auth dan employee yang menulis ke tabel users.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_email":
			return usererrors.ErrEmailAlreadyRegistered
		case "uq_users_employee_code":
			return usererrors.ErrEmployeeCodeExists
		}
	}

	// sqlite: "UNIQUE constraint failed: users.email"
	errMsg := strings.ToLower(err.Error())
	if isUniqueViolation(errMsg) && strings.Contains(errMsg, "email") {
		return usererrors.ErrEmailAlreadyRegistered
	}
	if isUniqueViolation(errMsg) && strings.Contains(errMsg, "employee_code") {
		return usererrors.ErrEmployeeCodeExists
	}

	return err
}

func isUniqueViolation(msg string) bool {
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed")
}
