package response

import (
	"github.com/distromart/product-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Errors  interface{} `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func WriteSuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	return c.JSON(errs.GetErrorStatusCode(err), ErrorResponse{
		Success: false,
		Error:   err.Error(),
		Errors:  errors,
	})
}
