package response

import (
	"errors"
	"net/http"

	"go-onboarding/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// Logika pembulatan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// ApiEnvelope is the body of every JSON response the API writes.
type ApiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"`
	Data    any             `json:"data,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
	Errors  any             `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Status: StatusSuccess,
		Data:   data,
		Meta:   meta,
	})
}

func SuccessWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Status:  StatusError,
		Code:    errorCode,
		Message: message,
		Errors:  details,
	})
}

// Abort writes the error envelope and stops the middleware chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ApiEnvelope{
		Status:  StatusError,
		Code:    errorCode,
		Message: message,
	})
}

// ValidationError menulis error 400 untuk kegagalan binding/validasi request.
func ValidationError(c *gin.Context, err error) {
	msg := "Input tidak valid"
	var appErr *apperror.AppError
	if errors.As(apperror.MapValidationError(err), &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	Error(c, http.StatusBadRequest, apperror.CodeValidation, msg, err.Error())
}
