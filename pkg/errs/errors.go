package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer  = errors.New("Internal server error")
	ErrClient          = errors.New("Bad request")
	ErrValidation      = errors.New("Validation failed")
	ErrNotFound        = errors.New("Product not found")
	ErrInvalidID       = errors.New("Invalid product ID")
	ErrInvalidCategory = errors.New("Invalid category")
	ErrNotAnImage      = errors.New("Uploaded file is not an image")
)

var errorMap = map[error]int{
	ErrInternalServer:  http.StatusInternalServerError,
	ErrClient:          http.StatusBadRequest,
	ErrValidation:      http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidID:       http.StatusBadRequest,
	ErrInvalidCategory: http.StatusBadRequest,
	ErrNotAnImage:      http.StatusBadRequest,
}

// GetErrorStatusCode maps a sentinel error to its HTTP status code.
// Anything unknown is treated as an internal server error.
func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}
	return http.StatusInternalServerError
}
