package apperror

import "fmt"

// AppError adalah error domain yang sudah membawa kode dan HTTP status.
// Nilai sentinel dibandingkan per pointer, jadi jangan diubah di tempat: pakai WithDetails.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if _, ok := e.Err.(*AppError); ok {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap juga mengembalikan sentinel asal untuk salinan dari WithDetails.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap mengembalikan nil untuk err nil.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// WithDetails menyalin e dengan detail tambahan (misal daftar field) untuk response.
// errors.Is(copy, e) tetap true.
func (e *AppError) WithDetails(details any) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Details:    details,
		Err:        e,
	}
}
