package employee

import (
	"errors"

	employeeerrors "go-onboarding/internal/employee/errors"
	"go-onboarding/internal/user"
	usererrors "go-onboarding/internal/user/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// constraint users dipetakan sekali di modul user
	switch mapped := user.MapRepositoryError(err); mapped {
	case usererrors.ErrEmailAlreadyRegistered:
		return employeeerrors.ErrEmployeeAlreadyExists
	case usererrors.ErrEmployeeCodeExists:
		return employeeerrors.ErrEmployeeCodeExists
	default:
		return mapped
	}
}
