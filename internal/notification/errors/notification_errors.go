package notificationerrors

import (
	"go-onboarding/internal/shared/apperror"
	"net/http"
)

var (
	ErrNotificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Notification not found",
		http.StatusNotFound,
	)
	ErrInvalidNotificationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid notification ID",
		http.StatusBadRequest,
	)
	ErrRecipientNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Recipient user not found",
		http.StatusBadRequest,
	)
)
