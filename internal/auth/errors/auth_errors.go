package autherrors

import (
	"go-onboarding/internal/shared/apperror"
	"net/http"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Not authorized, no token",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Not authorized, token failed",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeTokenExpired,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeInvalidToken,
		"Invalid or expired refresh token",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to perform this action",
		http.StatusForbidden,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrAccountLocked = apperror.New(
		apperror.CodeForbidden,
		"Account is locked. Please try again later.",
		http.StatusForbidden,
	)
	ErrAccountInactive = apperror.New(
		apperror.CodeForbidden,
		"Your account has been deactivated. Please contact administrator.",
		http.StatusForbidden,
	)
	ErrInvalidOTP = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid or expired OTP",
		http.StatusBadRequest,
	)
	ErrOTPEmailFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to send OTP email",
		http.StatusInternalServerError,
	)
	ErrCurrentPasswordIncorrect = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrSamePassword = apperror.New(
		apperror.CodeInvalidInput,
		"New password must be different from current password",
		http.StatusBadRequest,
	)
	ErrNoProfileFields = apperror.New(
		apperror.CodeValidation,
		"No fields to update",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"Date must use YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrNoProfilePicture = apperror.New(
		apperror.CodeNotFound,
		"No profile picture to delete",
		http.StatusNotFound,
	)
)
